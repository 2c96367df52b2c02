// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uicore

import (
	"image/color"
	"slices"

	"cogentcore.org/uicore/system"
)

// UpdateCtx is given to [ViewListener.Update] to access and replace the
// layers of the view.
type UpdateCtx struct {
	view   *View
	window *Window

	sublayers    []system.Layer
	hasSublayers bool
}

// Window returns the window being updated.
func (ctx *UpdateCtx) Window() *Window {
	return ctx.window
}

// Layers returns the current layers of the view.
func (ctx *UpdateCtx) Layers() []system.Layer {
	return slices.Clone(ctx.view.layers)
}

// SetLayers replaces the layers of the view. If they changed, the
// containing layer group gets a sublayer update in the same pass, or the
// window gets a new root layer if the view is its content view.
func (ctx *UpdateCtx) SetLayers(layers []system.Layer) {
	v := ctx.view
	if slices.Equal(v.layers, layers) {
		return
	}
	v.layers = slices.Clone(layers)
	if sv := v.superviewView(); sv != nil {
		// the layer group is an ancestor, updated later in this walk
		if g := sv.viewWithContainingLayer(); g != nil {
			g.dirty |= dirtySublayers
		}
		return
	}
	if ctx.window != nil && ctx.window.contentView == v {
		ctx.window.dirty |= windowDirtyLayer
	}
}

// Sublayers returns the layers of the descendants of a [LayerGroup] view
// that belong in its layer: the layers of each subview in order, followed
// by its own sublayers unless it is a layer group itself.
func (ctx *UpdateCtx) Sublayers() []system.Layer {
	if !ctx.view.flags.Has(LayerGroup) {
		panic("uicore: Sublayers called on a view without LayerGroup")
	}
	if !ctx.hasSublayers {
		ctx.sublayers = ctx.view.collectSublayers(nil)
		ctx.hasSublayers = true
	}
	return ctx.sublayers
}

func (v *View) collectSublayers(out []system.Layer) []system.Layer {
	for _, sub := range v.layout.Subviews() {
		out = append(out, sub.layers...)
		if !sub.flags.Has(LayerGroup) {
			out = sub.collectSublayers(out)
		}
	}
	return out
}

// GroupListener is a [ViewListener] for [LayerGroup] views. It owns one
// layer covering the view, filled with BgColor, with the sublayers of
// the view on top. It is the listener of the default content view.
type GroupListener struct {
	BgColor color.RGBA

	layer system.Layer
}

func (gl *GroupListener) Mount(wm system.Wm, v *View, w *Window) {
	gl.layer = wm.NewLayer(system.LayerAttrs{})
	v.PendUpdate(wm)
}

func (gl *GroupListener) Unmount(wm system.Wm, v *View) {
	if gl.layer != nil {
		wm.RemoveLayer(gl.layer)
		gl.layer = nil
	}
}

func (gl *GroupListener) Position(wm system.Wm, v *View) {
	v.PendUpdate(wm)
}

func (gl *GroupListener) Update(wm system.Wm, v *View, ctx *UpdateCtx) {
	if gl.layer == nil {
		return
	}
	wm.SetLayerAttrs(gl.layer, system.LayerAttrs{
		Bounds:    system.Ptr(v.GlobalFrame()),
		BgColor:   system.Ptr(gl.BgColor),
		Sublayers: system.Ptr(slices.Clone(ctx.Sublayers())),
	})
	ctx.SetLayers([]system.Layer{gl.layer})
}

// ColorListener is a [ViewListener] that fills the view with a color
// through a layer of its own.
type ColorListener struct {
	Color color.RGBA

	layer system.Layer
}

func (cl *ColorListener) Mount(wm system.Wm, v *View, w *Window) {
	cl.layer = wm.NewLayer(system.LayerAttrs{})
	v.PendUpdate(wm)
}

func (cl *ColorListener) Unmount(wm system.Wm, v *View) {
	if cl.layer != nil {
		wm.RemoveLayer(cl.layer)
		cl.layer = nil
	}
}

func (cl *ColorListener) Position(wm system.Wm, v *View) {
	v.PendUpdate(wm)
}

func (cl *ColorListener) Update(wm system.Wm, v *View, ctx *UpdateCtx) {
	if cl.layer == nil {
		return
	}
	wm.SetLayerAttrs(cl.layer, system.LayerAttrs{
		Bounds:  system.Ptr(v.GlobalFrame()),
		BgColor: system.Ptr(cl.Color),
	})
	ctx.SetLayers([]system.Layer{cl.layer})
}
