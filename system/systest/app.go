// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package systest provides a headless [system.App] for tests and tools.
// It records every window and layer with their attributes, coalesces
// update-ready requests like a real frame clock, and delivers them, along
// with invoked functions and injected window events, when stepped.
package systest

import (
	"slices"
	"sync"

	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/system"
)

// DefaultSize is the size of a window created without a size attribute.
var DefaultSize = math32.Vec2(640, 480)

// App is a headless implementation of [system.App].
type App struct {

	// Mu protects the invoke queue, which may be appended to from any goroutine.
	Mu sync.Mutex

	// Windows are the live windows, in creation order.
	Windows []*Window

	// Layers are the live layers by id.
	Layers map[uint64]*Layer

	// UpdateRequests is the total number of [App.RequestUpdateReady] calls.
	UpdateRequests int

	nextID  uint64
	queue   []func()
	pending []*Window
}

// Window is a headless platform window.
type Window struct {
	id uint64

	// Attrs are the current attributes, with every set field merged in.
	Attrs system.WindowAttrs

	// AttrsHistory has every attribute update, in order.
	AttrsHistory []system.WindowAttrs

	// DPIScale is the ratio of physical to device independent pixels.
	DPIScale float32

	Focused bool

	// Removed is set once the window has been removed.
	Removed bool

	// Updates is the number of [App.UpdateWindow] calls.
	Updates int

	// UpdateRequests is the number of [App.RequestUpdateReady] calls.
	UpdateRequests int

	updatePending bool
}

// Layer is a headless compositor layer.
type Layer struct {
	id uint64

	// Attrs are the current attributes, with every set field merged in.
	Attrs system.LayerAttrs

	// SetCalls is the number of [App.SetLayerAttrs] calls.
	SetCalls int

	// Removed is set once the layer has been removed.
	Removed bool
}

// NewApp returns a new headless app.
func NewApp() *App {
	return &App{Layers: map[uint64]*Layer{}}
}

func (w *Window) ID() uint64 { return w.id }

func (l *Layer) ID() uint64 { return l.id }

// Size returns the current size of the window.
func (w *Window) Size() math32.Vector2 {
	if w.Attrs.Size == nil {
		return DefaultSize
	}
	return *w.Attrs.Size
}

// Listener returns the current listener of the window.
func (w *Window) Listener() system.WindowListener {
	return w.Attrs.Listener
}

// Visible returns whether the window is visible.
func (w *Window) Visible() bool {
	return w.Attrs.Visible != nil && *w.Attrs.Visible
}

// Caption returns the caption of the window.
func (w *Window) Caption() string {
	if w.Attrs.Caption == nil {
		return ""
	}
	return *w.Attrs.Caption
}

// RootLayer returns the root layer of the window, or nil.
func (w *Window) RootLayer() *Layer {
	if w.Attrs.Layer == nil || *w.Attrs.Layer == nil {
		return nil
	}
	return (*w.Attrs.Layer).(*Layer)
}

// UpdatePending returns whether an update-ready request is waiting for delivery.
func (w *Window) UpdatePending() bool {
	return w.updatePending
}

// Sublayers returns the sublayers of the layer.
func (l *Layer) Sublayers() []*Layer {
	if l.Attrs.Sublayers == nil {
		return nil
	}
	sls := make([]*Layer, len(*l.Attrs.Sublayers))
	for i, sl := range *l.Attrs.Sublayers {
		sls[i] = sl.(*Layer)
	}
	return sls
}

// Bounds returns the bounds of the layer.
func (l *Layer) Bounds() math32.Box2 {
	if l.Attrs.Bounds == nil {
		return math32.Box2{}
	}
	return *l.Attrs.Bounds
}

func (a *App) newID() uint64 {
	a.nextID++
	return a.nextID
}

func (a *App) NewWindow(attrs system.WindowAttrs) (system.Window, error) {
	w := &Window{id: a.newID(), DPIScale: 1}
	w.Attrs.Merge(attrs)
	w.AttrsHistory = append(w.AttrsHistory, attrs)
	a.Windows = append(a.Windows, w)
	return w, nil
}

func (a *App) SetWindowAttrs(win system.Window, attrs system.WindowAttrs) {
	w := win.(*Window)
	w.Attrs.Merge(attrs)
	w.AttrsHistory = append(w.AttrsHistory, attrs)
}

// RemoveWindow removes the given Window from the app's list of windows.
func (a *App) RemoveWindow(win system.Window) {
	w := win.(*Window)
	w.Removed = true
	w.updatePending = false
	a.Windows = slices.DeleteFunc(a.Windows, func(ew *Window) bool {
		return ew == w
	})
	a.pending = slices.DeleteFunc(a.pending, func(ew *Window) bool {
		return ew == w
	})
}

func (a *App) UpdateWindow(win system.Window) {
	win.(*Window).Updates++
}

func (a *App) RequestUpdateReady(win system.Window) {
	w := win.(*Window)
	a.UpdateRequests++
	w.UpdateRequests++
	if w.updatePending || w.Removed {
		return
	}
	w.updatePending = true
	a.pending = append(a.pending, w)
}

func (a *App) WindowSize(win system.Window) math32.Vector2 {
	return win.(*Window).Size()
}

func (a *App) WindowDPIScale(win system.Window) float32 {
	return win.(*Window).DPIScale
}

func (a *App) IsWindowFocused(win system.Window) bool {
	return win.(*Window).Focused
}

func (a *App) NewLayer(attrs system.LayerAttrs) system.Layer {
	l := &Layer{id: a.newID()}
	l.Attrs.Merge(attrs)
	a.Layers[l.id] = l
	return l
}

func (a *App) SetLayerAttrs(layer system.Layer, attrs system.LayerAttrs) {
	l := layer.(*Layer)
	l.Attrs.Merge(attrs)
	l.SetCalls++
}

func (a *App) RemoveLayer(layer system.Layer) {
	l := layer.(*Layer)
	l.Removed = true
	delete(a.Layers, l.id)
}

func (a *App) InvokeOnMain(f func()) {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	a.queue = append(a.queue, f)
}
