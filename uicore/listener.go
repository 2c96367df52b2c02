// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uicore

import "cogentcore.org/uicore/system"

// ViewListener receives the lifecycle and update events of a [View].
type ViewListener interface {

	// Mount is called when the view is added to the given window.
	// It is not allowed to change the layout of any view here.
	// A view that owns layers should call [View.PendUpdate] here.
	Mount(wm system.Wm, v *View, w *Window)

	// Unmount is called when the view is removed from its window.
	// The layers of the view are cleared right after it returns, so the
	// listener should remove the layers it created.
	Unmount(wm system.Wm, v *View)

	// Position is called when [View.GlobalFrame] changed.
	// A view that owns layers should call [View.PendUpdate] here.
	Position(wm system.Wm, v *View)

	// Update is called after [View.PendUpdate] or when the view is added
	// to a window for the first time. It is the place to update the
	// attributes of the view's layers; they are flushed to the screen
	// once every pending view has been updated.
	Update(wm system.Wm, v *View, ctx *UpdateCtx)
}

// DefaultViewListener is a [ViewListener] that does nothing.
type DefaultViewListener struct{}

func (DefaultViewListener) Mount(wm system.Wm, v *View, w *Window)       {}
func (DefaultViewListener) Unmount(wm system.Wm, v *View)                {}
func (DefaultViewListener) Position(wm system.Wm, v *View)               {}
func (DefaultViewListener) Update(wm system.Wm, v *View, ctx *UpdateCtx) {}

// WindowListener receives the events of a [Window].
type WindowListener interface {

	// CloseRequested is called when the user attempts to close the window.
	// The window is closed if it returns true.
	CloseRequested(wm system.Wm, w *Window) bool

	// Close is called after the window has been closed.
	Close(wm system.Wm, w *Window)

	// Resize is called after the size of the window changed.
	Resize(wm system.Wm, w *Window)

	// DPIScaleChanged is called after the DPI scale of the window changed.
	DPIScaleChanged(wm system.Wm, w *Window)

	// FocusChanged is called after the window gained or lost focus.
	FocusChanged(wm system.Wm, w *Window)
}

// DefaultWindowListener is a [WindowListener] that allows closing and
// otherwise does nothing.
type DefaultWindowListener struct{}

func (DefaultWindowListener) CloseRequested(wm system.Wm, w *Window) bool { return true }
func (DefaultWindowListener) Close(wm system.Wm, w *Window)               {}
func (DefaultWindowListener) Resize(wm system.Wm, w *Window)              {}
func (DefaultWindowListener) DPIScaleChanged(wm system.Wm, w *Window)     {}
func (DefaultWindowListener) FocusChanged(wm system.Wm, w *Window)        {}
