// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"sync/atomic"

	"github.com/petermattis/goid"

	"cogentcore.org/uicore/math32"
)

// Wm is the main thread capability token. Holding one proves that the
// caller runs on the main thread, which exclusively owns all windows,
// layers and views. It can only be obtained through [GlobalWm],
// [TryGlobalWm], or a function passed to [Invoke]. The zero Wm is not a
// valid token: its methods panic.
type Wm struct {
	app App
}

// mainGoroutine is the id of the goroutine that called [SetMainThread].
var mainGoroutine atomic.Int64

// SetMainThread marks the calling goroutine as the main thread.
// Platform run loops call it before processing any events.
func SetMainThread() {
	mainGoroutine.Store(goid.Get())
}

// IsMainThread returns whether the calling goroutine is the main thread.
func IsMainThread() bool {
	id := mainGoroutine.Load()
	return id != 0 && id == goid.Get()
}

// TryGlobalWm returns the capability token if called on the main thread
// with an installed [TheApp].
func TryGlobalWm() (Wm, bool) {
	if TheApp == nil || !IsMainThread() {
		return Wm{}, false
	}
	return Wm{app: TheApp}, true
}

// GlobalWm returns the capability token. It panics if not called on the
// main thread or if there is no [TheApp].
func GlobalWm() Wm {
	wm, ok := TryGlobalWm()
	if !ok {
		if TheApp == nil {
			panic("system: no App has been installed")
		}
		panic("system: GlobalWm called off the main thread")
	}
	return wm
}

// Invoke runs the given function later on the main thread with the
// capability token. It can be called from any goroutine.
func Invoke(f func(wm Wm)) {
	app := TheApp
	if app == nil {
		panic("system: no App has been installed")
	}
	app.InvokeOnMain(func() {
		f(Wm{app: app})
	})
}

// checked returns the app of the token, and panics for the zero Wm.
func (wm Wm) checked() App {
	if wm.app == nil {
		panic("system: invalid Wm; use GlobalWm or Invoke to get one")
	}
	return wm.app
}

// App returns the app the token gives access to.
func (wm Wm) App() App {
	return wm.checked()
}

func (wm Wm) NewWindow(attrs WindowAttrs) (Window, error) {
	return wm.checked().NewWindow(attrs)
}

func (wm Wm) SetWindowAttrs(w Window, attrs WindowAttrs) {
	wm.checked().SetWindowAttrs(w, attrs)
}

func (wm Wm) RemoveWindow(w Window) {
	wm.checked().RemoveWindow(w)
}

func (wm Wm) UpdateWindow(w Window) {
	wm.checked().UpdateWindow(w)
}

func (wm Wm) RequestUpdateReady(w Window) {
	wm.checked().RequestUpdateReady(w)
}

func (wm Wm) WindowSize(w Window) math32.Vector2 {
	return wm.checked().WindowSize(w)
}

func (wm Wm) WindowDPIScale(w Window) float32 {
	return wm.checked().WindowDPIScale(w)
}

func (wm Wm) IsWindowFocused(w Window) bool {
	return wm.checked().IsWindowFocused(w)
}

func (wm Wm) NewLayer(attrs LayerAttrs) Layer {
	return wm.checked().NewLayer(attrs)
}

func (wm Wm) SetLayerAttrs(l Layer, attrs LayerAttrs) {
	wm.checked().SetLayerAttrs(l, attrs)
}

func (wm Wm) RemoveLayer(l Layer) {
	wm.checked().RemoveLayer(l)
}

// InvokeOnMain queues the given function to run on the main thread
// after the current callback returns.
func (wm Wm) InvokeOnMain(f func(wm Wm)) {
	wm.checked().InvokeOnMain(func() {
		f(wm)
	})
}
