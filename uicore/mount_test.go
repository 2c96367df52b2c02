// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uicore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/settings"
	"cogentcore.org/uicore/system"
	"cogentcore.org/uicore/system/systest"
)

func TestMountScenario(t *testing.T) {
	systest.Run(t, func(app *systest.App, wm system.Wm) {
		rec := &recorder{}
		a := newGroupView(wm, rec, "A")
		b := newLeafView(wm, rec, "B", math32.Vec2(10, 20))
		c := newLeafView(wm, rec, "C", math32.Vec2(30, 20))
		a.SetLayout(wm, newRow(b, c))

		win := NewWindow(wm)
		win.SetContentView(wm, a)
		app.Settle()
		assert.Equal(t, []string{"mount A", "mount B", "mount C"}, rec.filter("mount"))
		assert.Empty(t, rec.filter("unmount"))
		require.Len(t, c.Layers(), 1)
		cLayer := c.Layers()[0].(*systest.Layer)

		rec.reset()
		a.SetLayout(wm, newRow(b))
		assert.Equal(t, []string{"unmount C"}, rec.filter("unmount"))
		app.Settle()
		assert.Equal(t, 1, rec.count("unmount", "C"))
		assert.Zero(t, rec.count("unmount", "B"))
		assert.Empty(t, rec.filter("mount"))
		assert.False(t, c.IsMounted())
		assert.True(t, b.IsMounted())

		// layer cleanup
		assert.Empty(t, c.Layers())
		assert.True(t, cLayer.Removed)
		root := win.Platform().(*systest.Window).RootLayer()
		require.NotNil(t, root)
		assert.Len(t, root.Sublayers(), 1)
	})
}

func TestMountOrder(t *testing.T) {
	systest.Run(t, func(app *systest.App, wm system.Wm) {
		rec := &recorder{}
		a := newGroupView(wm, rec, "A")
		b := newGroupView(wm, rec, "B")
		c := newLeafView(wm, rec, "C", math32.Vec2(5, 5))
		d := newLeafView(wm, rec, "D", math32.Vec2(5, 5))
		e := newLeafView(wm, rec, "E", math32.Vec2(5, 5))
		b.SetLayout(wm, newRow(c, d))
		a.SetLayout(wm, newRow(b, e))

		win := NewWindow(wm)
		win.SetContentView(wm, a)
		app.Settle()
		assert.Equal(t, []string{"mount A", "mount B", "mount C", "mount D", "mount E"}, rec.filter("mount"))

		rec.reset()
		win.Close(wm)
		assert.Equal(t, []string{"unmount A", "unmount B", "unmount C", "unmount D", "unmount E"}, rec.filter("unmount"))
	})
}

func TestMountSkipsStableSubtrees(t *testing.T) {
	systest.Run(t, func(app *systest.App, wm system.Wm) {
		rec := &recorder{}
		a := newGroupView(wm, rec, "A")
		b := newGroupView(wm, rec, "B")
		c := newLeafView(wm, rec, "C", math32.Vec2(5, 5))
		b.SetLayout(wm, newRow(c))
		a.SetLayout(wm, newRow(b))
		win := NewWindow(wm)
		win.SetContentView(wm, a)
		app.Settle()
		rec.reset()

		// a new view deep in the tree is mounted through dirtyMount
		d := newLeafView(wm, rec, "D", math32.Vec2(5, 5))
		b.SetLayout(wm, newRow(c, d))
		assert.True(t, a.dirty.has(dirtyMount))
		assert.True(t, b.dirty.has(dirtyMount))
		app.Settle()
		assert.Equal(t, []string{"mount D"}, rec.filter("mount"))
		assert.False(t, a.dirty.has(dirtyMount))
		assert.False(t, b.dirty.has(dirtyMount))
		assert.True(t, d.IsMounted())
	})
}

func TestMountPairing(t *testing.T) {
	systest.Run(t, func(app *systest.App, wm system.Wm) {
		rec := &recorder{}
		names := []string{"A", "B", "C", "D", "E"}
		a := newGroupView(wm, rec, "A")
		b := newLeafView(wm, rec, "B", math32.Vec2(5, 5))
		c := newLeafView(wm, rec, "C", math32.Vec2(5, 5))
		d := newGroupView(wm, rec, "D")
		e := newLeafView(wm, rec, "E", math32.Vec2(5, 5))

		win := NewWindow(wm)
		a.SetLayout(wm, newRow(b, c))
		win.SetContentView(wm, a)
		app.Settle()

		a.SetLayout(wm, newRow(c))
		app.Settle()
		a.SetLayout(wm, newRow(c, b))
		app.Settle()
		d.SetLayout(wm, newRow(e))
		win.SetContentView(wm, d)
		app.Settle()
		a.SetLayout(wm, newRow())
		win.SetContentView(wm, a)
		app.Settle()
		d.SetLayout(wm, newRow())
		a.SetLayout(wm, newRow(e))
		app.Settle()
		win.Close(wm)

		// mounts and unmounts alternate, starting with a mount
		for _, nm := range names {
			mounted := false
			for _, ev := range rec.events {
				switch ev {
				case "mount " + nm:
					assert.False(t, mounted, "double mount of %s", nm)
					mounted = true
				case "unmount " + nm:
					assert.True(t, mounted, "unmount of unmounted %s", nm)
					mounted = false
				}
			}
			assert.False(t, mounted, "%s still mounted after close", nm)
			assert.Equal(t, rec.count("mount", nm), rec.count("unmount", nm), nm)
		}
		assert.Equal(t, 2, rec.count("mount", "B"))
		assert.Empty(t, app.Layers)
	})
}

func TestUnmountIsIdempotent(t *testing.T) {
	systest.Run(t, func(app *systest.App, wm system.Wm) {
		rec := &recorder{}
		a := newGroupView(wm, rec, "A")
		win := NewWindow(wm)
		win.SetContentView(wm, a)
		app.Settle()
		require.True(t, a.IsMounted())

		a.callUnmount(wm, win)
		a.callUnmount(wm, win)
		assert.Equal(t, 1, rec.count("unmount", "A"))
		assert.Empty(t, a.Layers())
	})
}

func TestSetLayoutFromCallback(t *testing.T) {
	systest.Run(t, func(app *systest.App, wm system.Wm) {
		require.True(t, settings.Debug.CheckCallbacks)
		a := NewView(LayerGroup)
		a.SetListener(wm, &layoutChangingListener{})
		win := NewWindow(wm)
		win.SetContentView(wm, a)
		assert.PanicsWithValue(t, "uicore: SetLayout called from a view listener callback", func() {
			app.Settle()
		})
	})
}

// layoutChangingListener breaks the rules by changing a layout on mount.
type layoutChangingListener struct {
	GroupListener
}

func (l *layoutChangingListener) Mount(wm system.Wm, v *View, w *Window) {
	v.SetLayout(wm, newRow())
}
