// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layouts

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/system"
	"cogentcore.org/uicore/system/systest"
	"cogentcore.org/uicore/uicore"
)

func leaf(wm system.Wm, c color.RGBA, traits uicore.SizeTraits) *uicore.View {
	v := uicore.NewView(0)
	v.SetListener(wm, &uicore.ColorListener{Color: c})
	v.SetLayout(wm, NewEmpty(traits))
	return v
}

func show(wm system.Wm, layout uicore.Layout) (*uicore.Window, *uicore.View) {
	root := uicore.NewView(uicore.LayerGroup)
	root.SetListener(wm, &uicore.GroupListener{})
	root.SetLayout(wm, layout)
	win := uicore.NewWindow(wm)
	win.SetContentView(wm, root)
	win.SetVisibility(wm, true)
	return win, root
}

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

func TestRow(t *testing.T) {
	systest.Run(t, func(app *systest.App, wm system.Wm) {
		a := leaf(wm, red, Fixed(math32.Vec2(10, 20)))
		b := leaf(wm, blue, Flexible(math32.Vec2(5, 5), math32.Vec2(10, 20)))
		win, root := show(wm, NewRow(a, b).SetSpacing(2).SetMargin(SidesAll(1)))
		app.Settle()
		pal := win.Platform().(*systest.Window)

		st := root.SizeTraits()
		assert.Equal(t, math32.Vec2(19, 22), st.Min)
		assert.Equal(t, math32.Vec2(24, 22), st.Preferred)
		assert.True(t, math32.IsInf(st.Max.X, 1))
		assert.Equal(t, math32.Vec2(24, 22), pal.Size())

		assert.Equal(t, math32.B2(1, 1, 11, 21), a.Frame())
		assert.Equal(t, math32.B2(13, 1, 23, 21), b.Frame())

		// only b can grow
		app.Resize(pal, math32.Vec2(50, 30))
		app.Settle()
		assert.Equal(t, math32.B2(1, 1, 11, 21), a.Frame())
		assert.Equal(t, math32.B2(13, 1, 49, 29), b.Frame())

		img := app.Render(pal)
		assert.Equal(t, red, img.RGBAAt(5, 5))
		assert.Equal(t, blue, img.RGBAAt(30, 20))
	})
}

func TestColumn(t *testing.T) {
	systest.Run(t, func(app *systest.App, wm system.Wm) {
		a := leaf(wm, red, Flexible(math32.Vec2(10, 5), math32.Vec2(10, 10)))
		b := leaf(wm, blue, Flexible(math32.Vec2(10, 5), math32.Vec2(10, 10)))
		win, root := show(wm, NewColumn(a, b))
		app.Settle()

		assert.Equal(t, math32.Vec2(10, 20), root.SizeTraits().Preferred)
		assert.Equal(t, math32.B2(0, 0, 10, 10), a.Frame())
		assert.Equal(t, math32.B2(0, 10, 10, 20), b.Frame())

		// both grow equally
		app.Resize(win.Platform().(*systest.Window), math32.Vec2(10, 40))
		app.Settle()
		assert.Equal(t, math32.B2(0, 0, 10, 20), a.Frame())
		assert.Equal(t, math32.B2(0, 20, 10, 40), b.Frame())
	})
}

func TestFill(t *testing.T) {
	systest.Run(t, func(app *systest.App, wm system.Wm) {
		sub := leaf(wm, red, Flexible(math32.Vector2{}, math32.Vec2(10, 10)))
		win, root := show(wm, NewFill(sub).SetMargin(SidesAll(4)))
		app.Settle()

		assert.Equal(t, math32.Vec2(18, 18), root.SizeTraits().Preferred)
		assert.Equal(t, math32.B2(4, 4, 14, 14), sub.Frame())

		app.Resize(win.Platform().(*systest.Window), math32.Vec2(40, 30))
		app.Settle()
		assert.Equal(t, math32.B2(4, 4, 36, 26), sub.Frame())
	})
}

func TestAbs(t *testing.T) {
	systest.Run(t, func(app *systest.App, wm system.Wm) {
		a := leaf(wm, red, Fixed(math32.Vec2(1, 1)))
		b := leaf(wm, blue, Fixed(math32.Vec2(1, 1)))
		_, root := show(wm, NewAbs(
			AbsItem{View: a, Frame: math32.B2(0, 0, 10, 10)},
			AbsItem{View: b, Frame: math32.B2(20, 5, 30, 25)},
		))
		app.Settle()

		assert.Equal(t, Fixed(math32.Vec2(30, 25)), root.SizeTraits())
		assert.Equal(t, math32.B2(0, 0, 10, 10), a.Frame())
		assert.Equal(t, math32.B2(20, 5, 30, 25), b.Frame())
	})
}

func TestHasSameSubviews(t *testing.T) {
	a, b := uicore.NewView(0), uicore.NewView(0)
	assert.True(t, NewRow(a, b).HasSameSubviews(NewColumn(a, b)))
	assert.True(t, NewRow(a).HasSameSubviews(NewFill(a)))
	assert.False(t, NewRow(b, a).HasSameSubviews(NewRow(a, b)))
	assert.True(t, NewEmpty(uicore.DefaultSizeTraits()).HasSameSubviews(NewRow()))
}

func TestDistribute(t *testing.T) {
	traits := []uicore.SizeTraits{
		{Preferred: math32.Vec2(10, 0), Max: math32.Vec2(20, 0)},
		{Min: math32.Vec2(5, 0), Preferred: math32.Vec2(10, 0), Max: math32.Vec2(40, 0)},
	}
	assert.Equal(t, []float32{10, 10}, distribute(traits, math32.X, 20))
	// extra space in proportion to the room to grow
	assert.Equal(t, []float32{15, 25}, distribute(traits, math32.X, 40))
	// never beyond the maximum
	assert.Equal(t, []float32{20, 40}, distribute(traits, math32.X, 100))

	// shortfall in proportion to the room to shrink
	sizes := distribute(traits, math32.X, 10)
	assert.InDelta(t, 10.0/3, sizes[0], 1e-4)
	assert.InDelta(t, 20.0/3, sizes[1], 1e-4)
	sizes = distribute(traits, math32.X, 0)
	assert.Equal(t, []float32{0, 5}, sizes)
}
