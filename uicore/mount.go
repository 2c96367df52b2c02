// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uicore

import (
	"log/slog"

	"cogentcore.org/uicore/settings"
	"cogentcore.org/uicore/system"
)

// callPendingMountIfDirty mounts the views under v that are owed a mount,
// skipping subtrees without a pending dirtyMount.
func (v *View) callPendingMountIfDirty(wm system.Wm, w *Window) {
	if !v.dirty.has(dirtyMounted) {
		v.callPendingMount(wm, w)
		return
	}
	if !v.dirty.has(dirtyMount) {
		return
	}
	v.dirty &^= dirtyMount
	for _, sub := range v.layout.Subviews() {
		sub.callPendingMountIfDirty(wm, w)
	}
}

// callPendingMount mounts v if needed and then every subview, top-down.
func (v *View) callPendingMount(wm system.Wm, w *Window) {
	v.dirty &^= dirtyMount
	if !v.dirty.has(dirtyMounted) {
		v.dirty |= dirtyMounted
		if settings.Debug.MountTrace {
			slog.Info("uicore: mount", "view", v)
		}
		w.callback(func() {
			v.listener.Mount(wm, v, w)
		})
	}
	for _, sub := range v.layout.Subviews() {
		sub.callPendingMount(wm, w)
	}
}

// callUnmount unmounts v and every subview, top-down, and clears their
// layers. It does nothing if v is not mounted.
func (v *View) callUnmount(wm system.Wm, w *Window) {
	if !v.dirty.has(dirtyMounted) {
		return
	}
	v.dirty &^= dirtyMounted
	if settings.Debug.MountTrace {
		slog.Info("uicore: unmount", "view", v)
	}
	w.callback(func() {
		v.listener.Unmount(wm, v)
	})
	v.layers = nil
	for _, sub := range v.layout.Subviews() {
		sub.callUnmount(wm, w)
	}
}
