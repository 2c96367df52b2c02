// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"image"
	"image/color"

	"golang.org/x/image/math/f32"

	"cogentcore.org/uicore/math32"
)

// Window is a handle to a platform window created by [App.NewWindow].
type Window interface {

	// ID returns a number identifying the window, unique within its [App].
	ID() uint64
}

// Layer is a handle to a compositor layer created by [App.NewLayer].
type Layer interface {

	// ID returns a number identifying the layer, unique within its [App].
	ID() uint64
}

// WindowListener receives the events of a platform window. It is
// implemented by the view tree core and called by the platform on the
// main thread.
type WindowListener interface {

	// CloseRequested is called when the user asked to close the window,
	// for example by clicking its close button.
	CloseRequested(wm Wm, w Window)

	// Close is called when the platform destroyed the window.
	Close(wm Wm, w Window)

	// Resize is called when the size of the client area changed.
	Resize(wm Wm, w Window)

	// DPIScaleChanged is called when the window moved to a screen
	// with a different DPI scale.
	DPIScaleChanged(wm Wm, w Window)

	// FocusChanged is called when the window gained or lost keyboard focus.
	FocusChanged(wm Wm, w Window)

	// UpdateReady is called in response to [App.RequestUpdateReady].
	UpdateReady(wm Wm, w Window)
}

// WindowAttrs are the attributes of a platform window.
// A nil field leaves the corresponding attribute unchanged.
type WindowAttrs struct {
	Size    *math32.Vector2
	MinSize *math32.Vector2
	MaxSize *math32.Vector2
	Caption *string
	Visible *bool
	Flags   *WindowFlags
	Cursor  *CursorShape

	// Layer is the root layer; a pointer to a nil [Layer] removes it.
	Layer *Layer

	Listener WindowListener
}

// Merge sets every attribute that is non-nil in o.
func (wa *WindowAttrs) Merge(o WindowAttrs) {
	mergePtr(&wa.Size, o.Size)
	mergePtr(&wa.MinSize, o.MinSize)
	mergePtr(&wa.MaxSize, o.MaxSize)
	mergePtr(&wa.Caption, o.Caption)
	mergePtr(&wa.Visible, o.Visible)
	mergePtr(&wa.Flags, o.Flags)
	mergePtr(&wa.Cursor, o.Cursor)
	mergePtr(&wa.Layer, o.Layer)
	if o.Listener != nil {
		wa.Listener = o.Listener
	}
}

// LayerAttrs are the attributes of a compositor layer.
// A nil field leaves the corresponding attribute unchanged.
type LayerAttrs struct {

	// Transform maps the layer bounds into the coordinate space of the
	// superlayer.
	Transform *f32.Aff3

	// Bounds is the rectangle covered by the layer, in its own coordinates.
	Bounds *math32.Box2

	// Contents is drawn stretched over the bounds; a pointer to a nil
	// image removes it.
	Contents *image.Image

	// ContentsScale is the ratio of contents pixels to layer units.
	ContentsScale *float32

	Opacity *float32

	BgColor *color.RGBA

	// Sublayers are drawn over the layer, in order.
	Sublayers *[]Layer
}

// Merge sets every attribute that is non-nil in o.
func (la *LayerAttrs) Merge(o LayerAttrs) {
	mergePtr(&la.Transform, o.Transform)
	mergePtr(&la.Bounds, o.Bounds)
	mergePtr(&la.Contents, o.Contents)
	mergePtr(&la.ContentsScale, o.ContentsScale)
	mergePtr(&la.Opacity, o.Opacity)
	mergePtr(&la.BgColor, o.BgColor)
	mergePtr(&la.Sublayers, o.Sublayers)
}

// Ptr returns a pointer to a copy of v, for filling in attributes.
func Ptr[T any](v T) *T {
	return &v
}

func mergePtr[T any](dst **T, src *T) {
	if src != nil {
		*dst = Ptr(*src)
	}
}
