// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uicore

import (
	"log/slog"

	"cogentcore.org/uicore/base/errors"
	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/settings"
	"cogentcore.org/uicore/system"
)

// update runs one update pass: mount, layout, position and update
// callbacks, and the push of layers and attributes to the platform.
func (w *Window) update(wm system.Wm) {
	if w.closed || w.updating {
		return
	}
	w.updating = true
	defer func() { w.updating = false }()
	if settings.Debug.UpdateTrace {
		slog.Info("uicore: update pass", "window", w.pal)
	}

	w.materialize(wm)
	cv := w.contentView

	cv.callPendingMountIfDirty(wm, w)

	cv.updateSizeTraits(wm)
	w.updateSizeLimits(wm)

	size := cv.sizeTraits.Clamp(wm.WindowSize(w.pal))
	moved := cv.setRootFrame(math32.B2FromSize(size))
	cv.updateFrames(wm, moved)

	cv.callPositionEvents(wm, w)
	cv.callUpdateEvents(wm, w)
	if w.closed {
		return
	}

	w.flushAttrs(wm, cv)
	wm.UpdateWindow(w.pal)

	if cv.dirty.isDirty() || w.dirty != 0 {
		w.updating = false
		w.pendUpdate(wm)
	}
}

// materialize creates the platform window with the current attributes.
func (w *Window) materialize(wm system.Wm) {
	if w.pal != nil {
		return
	}
	attrs := system.WindowAttrs{
		Caption:  system.Ptr(w.style.caption),
		Visible:  system.Ptr(w.style.visible),
		Flags:    system.Ptr(w.style.flags),
		Cursor:   system.Ptr(w.style.cursor),
		Listener: &platformListener{w: w},
	}
	w.pal = errors.Must1(wm.NewWindow(attrs))
	w.dirty &^= windowDirtyVisible | windowDirtyCaption | windowDirtyFlags | windowDirtyCursor
	if settings.Debug.WindowTrace {
		slog.Info("uicore: window created", "window", w.pal)
	}
}

// updateSizeLimits pushes the size limits of the content view to the
// platform window, along with its preferred size the first time.
func (w *Window) updateSizeLimits(wm system.Wm) {
	st := w.contentView.sizeTraits
	var attrs system.WindowAttrs
	changed := false
	if !w.sizeInitialized {
		w.sizeInitialized = true
		pref := st.Clamp(st.Preferred)
		if pref.X > 0 && pref.Y > 0 && !math32.IsInf(pref.X, 0) && !math32.IsInf(pref.Y, 0) {
			attrs.Size = &pref
			changed = true
		}
	}
	if st.Min != w.minSize || st.Max != w.maxSize {
		w.minSize, w.maxSize = st.Min, st.Max
		attrs.MinSize = system.Ptr(st.Min)
		attrs.MaxSize = system.Ptr(st.Max)
		changed = true
	}
	if changed {
		if settings.Debug.WindowTrace {
			slog.Info("uicore: window size limits", "window", w.pal, "min", st.Min, "max", st.Max)
		}
		wm.SetWindowAttrs(w.pal, attrs)
	}
}

// flushAttrs pushes the root layer and the changed style attributes.
func (w *Window) flushAttrs(wm system.Wm, cv *View) {
	if w.dirty == 0 {
		return
	}
	var attrs system.WindowAttrs
	if w.dirty&windowDirtyLayer != 0 {
		var root system.Layer
		switch len(cv.layers) {
		case 0:
		case 1:
			root = cv.layers[0]
		default:
			slog.Warn("uicore: the content view has more than one layer; using the first one", "view", cv, "layers", len(cv.layers))
			root = cv.layers[0]
		}
		if root != w.rootLayer {
			w.rootLayer = root
			attrs.Layer = &root
		}
	}
	if w.dirty&windowDirtyVisible != 0 {
		attrs.Visible = system.Ptr(w.style.visible)
	}
	if w.dirty&windowDirtyCaption != 0 {
		attrs.Caption = system.Ptr(w.style.caption)
	}
	if w.dirty&windowDirtyFlags != 0 {
		attrs.Flags = system.Ptr(w.style.flags)
	}
	if w.dirty&windowDirtyCursor != 0 {
		attrs.Cursor = system.Ptr(w.style.cursor)
	}
	w.dirty = 0
	if settings.Debug.WindowTrace {
		slog.Info("uicore: window attributes", "window", w.pal, "attrs", attrs)
	}
	wm.SetWindowAttrs(w.pal, attrs)
}

// updateSizeTraits is the up phase of layout: it recomputes the size
// traits of every view under v that needs it, children first.
func (v *View) updateSizeTraits(wm system.Wm) {
	if v.dirty.has(dirtyDescendantSizeTraits) {
		v.dirty &^= dirtyDescendantSizeTraits
		for _, sub := range v.layout.Subviews() {
			if sub.dirty.hasAny(dirtySizeTraits | dirtyDescendantSizeTraits) {
				sub.updateSizeTraits(wm)
			}
		}
	}
	if !v.dirty.has(dirtySizeTraits) {
		return
	}
	v.dirty &^= dirtySizeTraits
	st := v.layout.SizeTraits(&LayoutCtx{view: v})
	if st == v.sizeTraits {
		return
	}
	v.sizeTraits = st
	if settings.Debug.LayoutTrace {
		slog.Info("uicore: size traits", "view", v, "traits", st)
	}
	// the superview is later in this walk
	if sv := v.superviewView(); sv != nil {
		sv.dirty |= dirtySizeTraits | dirtySubviewsFrame
		sv.setDirtyFlagsOnSuperviews(wm, dirtyDescendantSubviewsFrame)
	}
}

// setRootFrame sets the frame of a content view, and returns whether its
// global frame changed.
func (v *View) setRootFrame(frame math32.Box2) bool {
	if v.frame.Size() != frame.Size() {
		v.dirty |= dirtySubviewsFrame
	}
	v.frame = frame
	if v.globalFrame == frame {
		return false
	}
	v.globalFrame = frame
	v.dirty |= dirtyPositionEvent
	return true
}

// updateFrames is the down phase of layout: it arranges the subviews of
// every view under v that needs it and updates global frames. moved is
// set when the global frame of v changed, which moves every descendant.
func (v *View) updateFrames(wm system.Wm, moved bool) {
	arranged := false
	if v.dirty.has(dirtySubviewsFrame) {
		v.dirty &^= dirtySubviewsFrame
		v.layout.Arrange(&LayoutCtx{view: v, arranging: true}, v.frame.Size())
		arranged = true
	}
	descend := moved || arranged || v.dirty.has(dirtyDescendantSubviewsFrame)
	v.dirty &^= dirtyDescendantSubviewsFrame
	if !descend {
		return
	}
	for _, sub := range v.layout.Subviews() {
		gf := sub.frame.Translate(v.globalFrame.Min)
		subMoved := gf != sub.globalFrame
		if subMoved {
			sub.globalFrame = gf
			sub.setDirtyFlags(dirtyPositionEvent)
			sub.setDirtyFlagsOnSuperviews(wm, dirtyDescendantPositionEvent)
		}
		if subMoved || sub.dirty.hasAny(dirtySubviewsFrame|dirtyDescendantSubviewsFrame) {
			sub.updateFrames(wm, subMoved)
		}
	}
}

// callPositionEvents calls [ViewListener.Position] on every view under v
// whose global frame changed, parents first.
func (v *View) callPositionEvents(wm system.Wm, w *Window) {
	if v.dirty.has(dirtyPositionEvent) {
		v.dirty &^= dirtyPositionEvent
		v.listener.Position(wm, v)
	}
	if !v.dirty.has(dirtyDescendantPositionEvent) {
		return
	}
	v.dirty &^= dirtyDescendantPositionEvent
	for _, sub := range v.layout.Subviews() {
		if sub.dirty.hasAny(dirtyPositionEvent | dirtyDescendantPositionEvent) {
			sub.callPositionEvents(wm, w)
		}
	}
}

// callUpdateEvents calls [ViewListener.Update] on every view under v with a
// pending update or sublayer change, children first, so that a layer group
// sees the final layers of its descendants.
func (v *View) callUpdateEvents(wm system.Wm, w *Window) {
	const descendant = dirtyDescendantUpdateEvent | dirtyDescendantSublayers
	const local = dirtyUpdateEvent | dirtySublayers
	if v.dirty.hasAny(descendant) {
		v.dirty &^= descendant
		for _, sub := range v.layout.Subviews() {
			if sub.dirty.hasAny(local | descendant) {
				sub.callUpdateEvents(wm, w)
			}
		}
	}
	if !v.dirty.hasAny(local) || !v.IsMounted() {
		return
	}
	v.dirty &^= local
	if settings.Debug.UpdateTrace {
		slog.Info("uicore: update", "view", v)
	}
	ctx := &UpdateCtx{view: v, window: w}
	w.callback(func() {
		v.listener.Update(wm, v, ctx)
	})
}
