// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// based on golang.org/x/exp/shiny:
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides the narrow platform interface consumed by the
// view tree core: windows, compositor layers, the frame clock, and the
// main thread capability token [Wm].
package system

import "cogentcore.org/uicore/math32"

var (
	// TheApp is the current [App]; only one is ever in effect.
	TheApp App

	// AppVersion is the version of the current app.
	// It is set by a linker flag.
	AppVersion = "dev"
)

// App represents the platform windowing and compositing system. All methods
// except [App.InvokeOnMain] are only called on the main thread, through a [Wm].
type App interface {

	// NewWindow creates a new platform window with the given initial attributes.
	// Nil attributes use the platform defaults.
	NewWindow(attrs WindowAttrs) (Window, error)

	// SetWindowAttrs updates the non-nil attributes of the given window.
	SetWindowAttrs(w Window, attrs WindowAttrs)

	// RemoveWindow destroys the given window and releases its resources.
	RemoveWindow(w Window)

	// UpdateWindow flushes pending layer changes of the given window
	// to the screen.
	UpdateWindow(w Window)

	// RequestUpdateReady asks the platform to call [WindowListener.UpdateReady]
	// on the listener of the given window soon. Requests made before the
	// pending one is delivered are coalesced into it.
	RequestUpdateReady(w Window)

	// WindowSize returns the size of the client area of the given window
	// in device independent pixels.
	WindowSize(w Window) math32.Vector2

	// WindowDPIScale returns the ratio of physical to device
	// independent pixels of the given window.
	WindowDPIScale(w Window) float32

	// IsWindowFocused returns whether the given window has keyboard focus.
	IsWindowFocused(w Window) bool

	// NewLayer creates a new compositor layer with the given attributes.
	NewLayer(attrs LayerAttrs) Layer

	// SetLayerAttrs updates the non-nil attributes of the given layer.
	SetLayerAttrs(l Layer, attrs LayerAttrs)

	// RemoveLayer destroys the given layer.
	RemoveLayer(l Layer)

	// InvokeOnMain queues the given function to run on the main thread.
	// It can be called from any goroutine and never blocks on the function.
	InvokeOnMain(f func())
}
