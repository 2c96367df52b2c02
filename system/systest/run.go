// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package systest

import (
	"fmt"
	"testing"

	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/system"
)

// MaxSteps is the number of steps after which [App.Settle] gives up.
var MaxSteps = 100

// Install makes the app [system.TheApp] and the calling goroutine the main
// thread. The returned function restores the previous app.
func (a *App) Install() (system.Wm, func()) {
	prev := system.TheApp
	system.TheApp = a
	system.SetMainThread()
	return system.GlobalWm(), func() {
		system.TheApp = prev
	}
}

// Run installs a new app for the duration of the test and calls f on the
// test goroutine, which becomes the main thread. Tests using Run must not
// be parallel.
func Run(t testing.TB, f func(app *App, wm system.Wm)) {
	t.Helper()
	a := NewApp()
	wm, restore := a.Install()
	t.Cleanup(restore)
	f(a, wm)
}

// Step runs the queued invoked functions and then delivers the pending
// update-ready requests, each in order. It must be called on the main
// thread. It returns whether anything was run.
func (a *App) Step() bool {
	wm := system.GlobalWm()

	a.Mu.Lock()
	queue := a.queue
	a.queue = nil
	a.Mu.Unlock()
	for _, f := range queue {
		f()
	}

	pending := a.pending
	a.pending = nil
	for _, w := range pending {
		if !w.updatePending {
			continue
		}
		w.updatePending = false
		if ls := w.Listener(); ls != nil {
			ls.UpdateReady(wm, w)
		}
	}
	return len(queue) > 0 || len(pending) > 0
}

// Settle steps until nothing is left to run, and returns the number of
// steps taken. It panics after [MaxSteps], since that means the windows
// keep requesting updates.
func (a *App) Settle() int {
	for i := 0; i < MaxSteps; i++ {
		if !a.Step() {
			return i
		}
	}
	panic(fmt.Sprintf("systest: still busy after %d steps", MaxSteps))
}

// Resize sets the size of the window and notifies its listener.
func (a *App) Resize(w *Window, size math32.Vector2) {
	w.Attrs.Size = &size
	if ls := w.Listener(); ls != nil {
		ls.Resize(system.GlobalWm(), w)
	}
}

// SetDPIScale sets the DPI scale of the window and notifies its listener.
func (a *App) SetDPIScale(w *Window, scale float32) {
	w.DPIScale = scale
	if ls := w.Listener(); ls != nil {
		ls.DPIScaleChanged(system.GlobalWm(), w)
	}
}

// SetFocus sets whether the window has focus and notifies its listener.
func (a *App) SetFocus(w *Window, focused bool) {
	w.Focused = focused
	if ls := w.Listener(); ls != nil {
		ls.FocusChanged(system.GlobalWm(), w)
	}
}

// RequestClose simulates the user clicking the close button of the window.
func (a *App) RequestClose(w *Window) {
	if ls := w.Listener(); ls != nil {
		ls.CloseRequested(system.GlobalWm(), w)
	}
}

// Destroy simulates the platform destroying the window.
func (a *App) Destroy(w *Window) {
	ls := w.Listener()
	a.RemoveWindow(w)
	if ls != nil {
		ls.Close(system.GlobalWm(), w)
	}
}
