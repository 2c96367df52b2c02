// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uicore

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/settings"
	"cogentcore.org/uicore/system"
)

// View is a node of the view tree. Views are created with [NewView] and
// only referenced by pointer.
type View struct {
	// flags are fixed at creation.
	flags ViewFlags

	dirty dirtyFlags

	superview superview

	listener ViewListener

	layout Layout

	sizeTraits SizeTraits

	// frame is in the coordinate space of the superview.
	frame math32.Box2

	// globalFrame is in the coordinate space of the window.
	globalFrame math32.Box2

	// layers are the layers of the view; the first one is
	// conventionally the view's own layer.
	layers []system.Layer
}

// NewView returns a new view with the given flags, a [DefaultViewListener]
// and a [DefaultLayout]. An update is pending on the new view.
func NewView(flags ViewFlags) *View {
	v := &View{
		flags:      flags,
		dirty:      dirtyUpdateEvent,
		listener:   DefaultViewListener{},
		layout:     NewDefaultLayout(),
		sizeTraits: DefaultSizeTraits(),
	}
	if flags.Has(LayerGroup) {
		v.dirty |= dirtySublayers
	}
	return v
}

func (v *View) String() string {
	return fmt.Sprintf("View(%p %T)", v, v.listener)
}

// Flags returns the creation flags of the view.
func (v *View) Flags() ViewFlags {
	return v.flags
}

// Listener returns the current listener of the view.
func (v *View) Listener() ViewListener {
	return v.listener
}

// Layout returns the current layout of the view.
func (v *View) Layout() Layout {
	return v.layout
}

// SizeTraits returns the size traits computed by the last update pass.
func (v *View) SizeTraits() SizeTraits {
	return v.sizeTraits
}

// Frame returns the frame of the view in the coordinate space of its
// superview, as of the last update pass.
func (v *View) Frame() math32.Box2 {
	return v.frame
}

// GlobalFrame returns the frame of the view in the coordinate space of
// its window, as of the last update pass.
func (v *View) GlobalFrame() math32.Box2 {
	return v.globalFrame
}

// Layers returns the layers of the view, as set by [UpdateCtx.SetLayers].
func (v *View) Layers() []system.Layer {
	return slices.Clone(v.layers)
}

// IsMounted returns whether the view is part of a window.
func (v *View) IsMounted() bool {
	return v.dirty.has(dirtyMounted)
}

// Superview returns the parent view, or the window if the view is a
// content view. Both are nil for a detached view.
func (v *View) Superview() (*View, *Window) {
	return v.superview.upgrade()
}

// ContainingWindow returns the window at the root of the view's
// superview chain, or nil.
func (v *View) ContainingWindow() *Window {
	for cur := v; cur != nil; {
		sv, w := cur.superview.upgrade()
		if w != nil {
			return w
		}
		cur = sv
	}
	return nil
}

// superviewView returns the parent view, or nil.
func (v *View) superviewView() *View {
	sv, _ := v.superview.upgrade()
	return sv
}

// isAncestorOf returns whether v is other or one of its ancestors.
func (v *View) isAncestorOf(other *View) bool {
	for cur := other; cur != nil; cur = cur.superviewView() {
		if cur == v {
			return true
		}
	}
	return false
}

// viewWithContainingLayer returns the nearest view, starting with v
// itself, that is a layer group.
func (v *View) viewWithContainingLayer() *View {
	for cur := v; cur != nil; cur = cur.superviewView() {
		if cur.flags.Has(LayerGroup) {
			return cur
		}
	}
	return nil
}

// SetListener replaces the listener of the view. It can be called at any
// time, including from listener callbacks.
func (v *View) SetListener(wm system.Wm, listener ViewListener) {
	v.listener = listener
}

// PendUpdate requests a call to [ViewListener.Update] in the next update
// pass of the view's window.
func (v *View) PendUpdate(wm system.Wm) {
	v.setDirtyFlags(dirtyUpdateEvent)
	v.setDirtyFlagsOnSuperviews(wm, dirtyDescendantUpdateEvent)
}

// SetLayout replaces the layout of the view. New subviews must not have
// a superview. Subviews that are not in the new layout are detached and,
// if the view is mounted, unmounted. It is not allowed to call SetLayout
// from listener callbacks.
func (v *View) SetLayout(wm system.Wm, layout Layout) {
	w := v.ContainingWindow()
	if w != nil && w.callbackDepth > 0 && settings.Debug.CheckCallbacks {
		panic("uicore: SetLayout called from a view listener callback")
	}
	old := v.layout
	changed := !layout.HasSameSubviews(old)

	var newFlags dirtyFlags
	if changed {
		for _, sub := range old.Subviews() {
			if !sub.superview.isView(v) {
				panic("uicore: existing subview's superview is invalid")
			}
			sub.superview = superview{}
		}
		subs := layout.Subviews()
		for _, sub := range subs {
			if !sub.superview.isEmpty() {
				panic("uicore: cannot add a subview already added to another view")
			}
			if sub.isAncestorOf(v) {
				panic("uicore: cannot add a view as a subview of itself or of its descendant")
			}
			sub.superview = superviewOfView(v)
			newFlags |= sub.dirty
		}
		newFlags = newFlags.raiseLevel()
		for _, sub := range subs {
			if !sub.IsMounted() {
				newFlags |= dirtyMount
				break
			}
		}
		if g := v.viewWithContainingLayer(); g != nil {
			g.setDirtyFlags(dirtySublayers)
			g.setDirtyFlagsOnSuperviews(wm, dirtyDescendantSublayers)
		}
	}

	v.setDirtyFlags(dirtySubviewsFrame | dirtySizeTraits | newFlags)
	v.setDirtyFlagsOnSuperviews(wm, dirtyDescendantSubviewsFrame|dirtyDescendantSizeTraits|newFlags)
	v.layout = layout

	if settings.Debug.LayoutTrace {
		slog.Info("uicore: SetLayout", "view", v, "layout", fmt.Sprintf("%T", layout), "subviewsChanged", changed)
	}

	if !v.IsMounted() {
		return
	}
	if changed {
		for _, sub := range old.Subviews() {
			if sub.superview.isEmpty() {
				sub.callUnmount(wm, w)
			}
		}
	}
	// layout flags alone do not schedule the window
	w.pendUpdate(wm)
}

// setDirtyFlags adds the given flags to the view.
func (v *View) setDirtyFlags(flags dirtyFlags) {
	v.dirty |= flags
}

// setDirtyFlagsOnSuperviews adds the given flags to every ancestor of the
// view, stopping at the first one that already has all of them. If the
// chain reaches a window and the flags ask for update callbacks or a
// sublayer change, the window schedules an update pass.
func (v *View) setDirtyFlagsOnSuperviews(wm system.Wm, flags dirtyFlags) {
	for cur := v; ; {
		sv, w := cur.superview.upgrade()
		switch {
		case sv != nil:
			if sv.dirty.has(flags) {
				return
			}
			sv.dirty |= flags
			cur = sv
		case w != nil:
			if flags.hasAny(dirtyDescendantUpdateEvent | dirtyDescendantSublayers) {
				w.pendUpdate(wm)
			}
			return
		default:
			return
		}
	}
}
