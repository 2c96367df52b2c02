// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uicore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/system"
	"cogentcore.org/uicore/system/systest"
)

func TestNewWindow(t *testing.T) {
	systest.Run(t, func(app *systest.App, wm system.Wm) {
		win := NewWindow(wm)
		cv := win.ContentView()
		require.NotNil(t, cv)
		assert.True(t, cv.Flags().Has(LayerGroup))
		assert.True(t, cv.dirty.has(dirtyMount))
		assert.IsType(t, &GroupListener{}, cv.Listener())
		_, w := cv.Superview()
		assert.Equal(t, win, w)
		assert.Nil(t, win.Platform())
		assert.False(t, win.Visibility())
		assert.Equal(t, system.DefaultWindowFlags, win.StyleFlags())
		assert.Equal(t, float32(1), win.DPIScale(wm))
		assert.False(t, win.IsFocused(wm))

		// nothing happens until the window is shown
		assert.Zero(t, app.Settle())
		assert.Empty(t, app.Windows)

		win.SetVisibility(wm, true)
		app.Settle()
		require.Len(t, app.Windows, 1)
		pal := app.Windows[0]
		assert.Equal(t, pal, win.Platform())
		assert.True(t, pal.Visible())
		assert.True(t, cv.IsMounted())
		root := pal.RootLayer()
		require.NotNil(t, root)
		assert.Equal(t, cv.Layers()[0], root)
	})
}

func TestSetVisibilityTwice(t *testing.T) {
	systest.Run(t, func(app *systest.App, wm system.Wm) {
		win := NewWindow(wm)
		win.SetCaption(wm, "main")
		app.Settle()
		pal := win.Platform().(*systest.Window)
		history := len(pal.AttrsHistory)

		win.SetVisibility(wm, true)
		dirty := win.dirty
		win.SetVisibility(wm, true)
		assert.Equal(t, dirty, win.dirty)
		assert.Equal(t, 1, pal.UpdateRequests)

		assert.Equal(t, 1, app.Settle())
		require.Len(t, pal.AttrsHistory, history+1)
		attrs := pal.AttrsHistory[history]
		require.NotNil(t, attrs.Visible)
		assert.True(t, *attrs.Visible)
		assert.Nil(t, attrs.Caption)
		assert.Equal(t, "main", pal.Caption())
	})
}

func TestStyleAttrs(t *testing.T) {
	systest.Run(t, func(app *systest.App, wm system.Wm) {
		win := NewWindow(wm)
		win.SetCaption(wm, "one")
		win.SetStyleFlags(wm, system.Borderless|system.Transparent)
		win.SetCursorShape(wm, system.CursorHand)
		app.Settle()
		pal := win.Platform().(*systest.Window)
		assert.Equal(t, "one", pal.Caption())
		assert.Equal(t, system.Borderless|system.Transparent, *pal.Attrs.Flags)
		assert.Equal(t, system.CursorHand, *pal.Attrs.Cursor)
		assert.Equal(t, "one", win.Caption())
		assert.Equal(t, system.CursorHand, win.CursorShape())

		win.SetCaption(wm, "two")
		win.SetCursorShape(wm, system.CursorText)
		app.Settle()
		caption, ok := lastAttr(pal.AttrsHistory, func(a system.WindowAttrs) *string { return a.Caption })
		assert.True(t, ok)
		assert.Equal(t, "two", caption)
		assert.Equal(t, system.CursorText, *pal.Attrs.Cursor)
	})
}

func TestSetContentView(t *testing.T) {
	systest.Run(t, func(app *systest.App, wm system.Wm) {
		rec := &recorder{}
		win := NewWindow(wm)
		win.SetVisibility(wm, true)
		app.Settle()
		pal := win.Platform().(*systest.Window)
		oldRoot := pal.RootLayer()
		old := win.ContentView()

		a := newGroupView(wm, rec, "A")
		win.SetContentView(wm, a)
		win.SetContentView(wm, a)
		assert.False(t, old.IsMounted())
		sv, w := old.Superview()
		assert.Nil(t, sv)
		assert.Nil(t, w)
		assert.True(t, oldRoot.Removed)

		app.Settle()
		assert.Equal(t, 1, rec.count("mount", "A"))
		root := pal.RootLayer()
		require.NotNil(t, root)
		assert.NotEqual(t, oldRoot, root)
		assert.Equal(t, a.Layers()[0], root)

		assert.Panics(t, func() { win.SetContentView(wm, NewView(0)) })
	})
}

func TestClose(t *testing.T) {
	systest.Run(t, func(app *systest.App, wm system.Wm) {
		rec := &recorder{}
		a := newGroupView(wm, rec, "A")
		b := newLeafView(wm, rec, "B", math32.Vec2(10, 10))
		a.SetLayout(wm, newRow(b))
		win := NewWindow(wm)
		wl := &recordingWindowListener{closeOK: true}
		win.SetListener(wm, wl)
		win.SetContentView(wm, a)
		app.Settle()
		pal := win.Platform().(*systest.Window)

		win.Close(wm)
		win.Close(wm)
		assert.True(t, win.IsClosed())
		assert.Nil(t, win.ContentView())
		assert.Nil(t, win.Platform())
		assert.True(t, pal.Removed)
		assert.Equal(t, []string{"unmount A", "unmount B"}, rec.filter("unmount"))
		assert.Equal(t, 1, wl.closes)
		assert.Empty(t, app.Layers)
		sv, w := a.Superview()
		assert.Nil(t, sv)
		assert.Nil(t, w)

		assert.Panics(t, func() { win.SetContentView(wm, NewView(LayerGroup)) })
		// pending work on a closed window is dropped
		b.PendUpdate(wm)
		assert.Zero(t, app.Settle())
	})
}

func TestCloseRequested(t *testing.T) {
	systest.Run(t, func(app *systest.App, wm system.Wm) {
		win := NewWindow(wm)
		wl := &recordingWindowListener{}
		win.SetListener(wm, wl)
		win.SetVisibility(wm, true)
		app.Settle()
		pal := win.Platform().(*systest.Window)

		app.RequestClose(pal)
		assert.Equal(t, 1, wl.closeRequests)
		assert.False(t, win.IsClosed())

		wl.closeOK = true
		app.RequestClose(pal)
		assert.True(t, win.IsClosed())
		assert.True(t, pal.Removed)
		assert.Equal(t, 1, wl.closes)
	})
}

func TestPlatformDestroy(t *testing.T) {
	systest.Run(t, func(app *systest.App, wm system.Wm) {
		win := NewWindow(wm)
		wl := &recordingWindowListener{}
		win.SetListener(wm, wl)
		win.SetVisibility(wm, true)
		app.Settle()

		app.Destroy(win.Platform().(*systest.Window))
		assert.True(t, win.IsClosed())
		assert.Equal(t, 1, wl.closes)
		assert.Empty(t, app.Windows)
	})
}

func TestWindowEvents(t *testing.T) {
	systest.Run(t, func(app *systest.App, wm system.Wm) {
		rec := &recorder{}
		a := newGroupView(wm, rec, "A")
		b := newLeafView(wm, rec, "B", math32.Vec2(10, 10))
		a.SetLayout(wm, newRow(b))
		win := NewWindow(wm)
		wl := &recordingWindowListener{}
		win.SetListener(wm, wl)
		win.SetContentView(wm, a)
		app.Settle()
		pal := win.Platform().(*systest.Window)

		app.SetFocus(pal, true)
		assert.Equal(t, 1, wl.focusChanges)
		assert.True(t, win.IsFocused(wm))

		rec.reset()
		app.SetDPIScale(pal, 2)
		assert.Equal(t, 1, wl.dpiChanges)
		assert.Equal(t, float32(2), win.DPIScale(wm))
		app.Settle()
		assert.Equal(t, []string{"update B", "update A"}, rec.filter("update"))
	})
}

type recordingWindowListener struct {
	DefaultWindowListener
	closeOK       bool
	closeRequests int
	closes        int
	resizes       int
	dpiChanges    int
	focusChanges  int
}

func (wl *recordingWindowListener) CloseRequested(wm system.Wm, w *Window) bool {
	wl.closeRequests++
	return wl.closeOK
}

func (wl *recordingWindowListener) Close(wm system.Wm, w *Window) {
	wl.closes++
}

func (wl *recordingWindowListener) Resize(wm system.Wm, w *Window) {
	wl.resizes++
}

func (wl *recordingWindowListener) DPIScaleChanged(wm system.Wm, w *Window) {
	wl.dpiChanges++
}

func (wl *recordingWindowListener) FocusChanged(wm system.Wm, w *Window) {
	wl.focusChanges++
}
