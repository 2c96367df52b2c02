// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uicore

import (
	"log/slog"

	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/settings"
	"cogentcore.org/uicore/system"
)

// windowDirty records which attributes of a window must be pushed to
// the platform window.
type windowDirty uint8

const (
	// windowDirtyLayer means the root layer changed.
	windowDirtyLayer windowDirty = 1 << iota
	windowDirtyVisible
	windowDirtyCaption
	windowDirtyFlags
	windowDirtyCursor
)

// styleAttrs are the window attributes set by the application.
type styleAttrs struct {
	visible bool
	caption string
	flags   system.WindowFlags
	cursor  system.CursorShape
}

// Window is a top-level window showing a content view. The platform
// window is created by the first update pass, which is scheduled by
// making the window visible or by any change to its view tree.
// The application must keep a reference to a window while it is open.
type Window struct {
	pal system.Window

	listener WindowListener

	// contentView is nil only after the window is closed.
	contentView *View

	style styleAttrs

	dirty windowDirty

	// closed is permanent once set.
	closed bool

	// updating is set during the update pass.
	updating bool

	// updatePending is set from the moment an update pass is requested
	// until the request is delivered.
	updatePending bool

	// callbackDepth is the number of view listener callbacks running.
	callbackDepth int

	// sizeInitialized is set once the initial size has been pushed.
	sizeInitialized bool

	// minSize and maxSize are the size limits last pushed.
	minSize, maxSize math32.Vector2

	// rootLayer is the root layer last pushed.
	rootLayer system.Layer
}

// NewWindow returns a new, invisible window with a default content view,
// a [GroupListener] layer group with no subviews.
func NewWindow(wm system.Wm) *Window {
	w := &Window{
		listener: DefaultWindowListener{},
		style:    styleAttrs{flags: system.DefaultWindowFlags},
	}
	cv := NewView(LayerGroup)
	cv.listener = &GroupListener{}
	cv.dirty |= dirtyMount
	cv.superview = superviewOfWindow(w)
	w.contentView = cv
	return w
}

// Platform returns the platform window, which is nil until the first
// update pass and after the window is closed.
func (w *Window) Platform() system.Window {
	return w.pal
}

// ContentView returns the content view, which is nil after the window is closed.
func (w *Window) ContentView() *View {
	return w.contentView
}

// IsClosed returns whether the window has been closed.
func (w *Window) IsClosed() bool {
	return w.closed
}

// Listener returns the listener of the window.
func (w *Window) Listener() WindowListener {
	return w.listener
}

// SetListener replaces the listener of the window.
func (w *Window) SetListener(wm system.Wm, listener WindowListener) {
	w.listener = listener
}

// Visibility returns whether the window is visible.
func (w *Window) Visibility() bool {
	return w.style.visible
}

// Caption returns the caption of the window.
func (w *Window) Caption() string {
	return w.style.caption
}

// StyleFlags returns the style flags of the window.
func (w *Window) StyleFlags() system.WindowFlags {
	return w.style.flags
}

// CursorShape returns the cursor shape of the window.
func (w *Window) CursorShape() system.CursorShape {
	return w.style.cursor
}

// Size returns the size of the client area of the window, or the
// preferred size of the content view before the platform window exists.
func (w *Window) Size(wm system.Wm) math32.Vector2 {
	if w.pal != nil {
		return wm.WindowSize(w.pal)
	}
	if w.contentView != nil {
		return w.contentView.sizeTraits.Preferred
	}
	return math32.Vector2{}
}

// DPIScale returns the DPI scale of the window, which is 1 before the
// platform window exists.
func (w *Window) DPIScale(wm system.Wm) float32 {
	if w.pal != nil {
		return wm.WindowDPIScale(w.pal)
	}
	return 1
}

// IsFocused returns whether the window has keyboard focus.
func (w *Window) IsFocused(wm system.Wm) bool {
	return w.pal != nil && wm.IsWindowFocused(w.pal)
}

// SetContentView replaces the content view of the window. The view must
// be a [LayerGroup] without a superview, and its listener must set exactly
// one layer, which becomes the root layer of the window. The old content
// view is unmounted and detached.
func (w *Window) SetContentView(wm system.Wm, v *View) {
	if !v.flags.Has(LayerGroup) {
		panic("uicore: the content view must have LayerGroup")
	}
	if w.closed {
		panic("uicore: the window has already been closed")
	}
	if v == w.contentView {
		return
	}
	if !v.superview.isEmpty() {
		panic("uicore: the content view already has a superview")
	}
	v.dirty |= dirtyMount
	old := w.contentView
	w.contentView = v
	v.superview = superviewOfWindow(w)
	old.superview = superview{}
	w.dirty |= windowDirtyLayer

	old.callUnmount(wm, w)
	w.pendUpdate(wm)
}

// SetVisibility sets whether the window is visible. Windows are invisible
// by default. Hiding a window does not release its resources.
func (w *Window) SetVisibility(wm system.Wm, visible bool) {
	if w.style.visible == visible {
		return
	}
	w.style.visible = visible
	w.dirty |= windowDirtyVisible
	w.pendUpdate(wm)
}

// SetCaption sets the caption of the window.
func (w *Window) SetCaption(wm system.Wm, caption string) {
	if w.style.caption == caption {
		return
	}
	w.style.caption = caption
	w.dirty |= windowDirtyCaption
	w.pendUpdate(wm)
}

// SetStyleFlags sets the style flags of the window, which are
// [system.DefaultWindowFlags] by default.
func (w *Window) SetStyleFlags(wm system.Wm, flags system.WindowFlags) {
	if w.style.flags == flags {
		return
	}
	w.style.flags = flags
	w.dirty |= windowDirtyFlags
	w.pendUpdate(wm)
}

// SetCursorShape sets the shape of the mouse cursor over the window.
func (w *Window) SetCursorShape(wm system.Wm, cursor system.CursorShape) {
	if w.style.cursor == cursor {
		return
	}
	w.style.cursor = cursor
	w.dirty |= windowDirtyCursor
	w.pendUpdate(wm)
}

// Close closes the window: the content view is unmounted and detached,
// the platform window is removed, and [WindowListener.Close] is called.
// Closing a closed window does nothing.
func (w *Window) Close(wm system.Wm) {
	if w.closed {
		return
	}
	w.closed = true
	if settings.Debug.WindowTrace {
		slog.Info("uicore: close window", "window", w.pal)
	}
	cv := w.contentView
	w.contentView = nil
	cv.superview = superview{}
	cv.callUnmount(wm, w)

	if w.pal != nil {
		wm.RemoveWindow(w.pal)
		w.pal = nil
	}
	w.rootLayer = nil
	w.listener.Close(wm, w)
}

// pendUpdate schedules an update pass. Requests made during the pass are
// dropped, since the pass reschedules itself if it leaves work behind.
func (w *Window) pendUpdate(wm system.Wm) {
	if w.closed || w.updating || w.updatePending {
		return
	}
	w.updatePending = true
	if settings.Debug.UpdateTrace {
		slog.Info("uicore: update requested", "window", w.pal)
	}
	if w.pal == nil {
		wm.InvokeOnMain(w.updateReady)
		return
	}
	wm.RequestUpdateReady(w.pal)
}

// updateReady runs a requested update pass.
func (w *Window) updateReady(wm system.Wm) {
	w.updatePending = false
	w.update(wm)
}

// callback runs a view listener callback.
func (w *Window) callback(f func()) {
	w.callbackDepth++
	defer func() { w.callbackDepth-- }()
	f()
}

// pendUpdateAll requests an update of every view of the window.
func (w *Window) pendUpdateAll(wm system.Wm) {
	if w.contentView == nil {
		return
	}
	w.contentView.markUpdateAll()
	w.pendUpdate(wm)
}

func (v *View) markUpdateAll() {
	v.dirty |= dirtyUpdateEvent | dirtyDescendantUpdateEvent
	for _, sub := range v.layout.Subviews() {
		sub.markUpdateAll()
	}
}

// platformListener delivers the events of the platform window.
type platformListener struct {
	w *Window
}

func (pl *platformListener) CloseRequested(wm system.Wm, _ system.Window) {
	w := pl.w
	if w.closed {
		return
	}
	if w.listener.CloseRequested(wm, w) {
		w.Close(wm)
	}
}

func (pl *platformListener) Close(wm system.Wm, _ system.Window) {
	// the platform window is already gone
	pl.w.pal = nil
	pl.w.Close(wm)
}

func (pl *platformListener) Resize(wm system.Wm, _ system.Window) {
	w := pl.w
	if w.closed {
		return
	}
	w.listener.Resize(wm, w)
	w.pendUpdate(wm)
}

func (pl *platformListener) DPIScaleChanged(wm system.Wm, _ system.Window) {
	w := pl.w
	if w.closed {
		return
	}
	w.listener.DPIScaleChanged(wm, w)
	w.pendUpdateAll(wm)
}

func (pl *platformListener) FocusChanged(wm system.Wm, _ system.Window) {
	w := pl.w
	if w.closed {
		return
	}
	w.listener.FocusChanged(wm, w)
}

func (pl *platformListener) UpdateReady(wm system.Wm, _ system.Window) {
	pl.w.updateReady(wm)
}
