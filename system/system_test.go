// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cogentcore.org/uicore/math32"
)

func TestMainThread(t *testing.T) {
	SetMainThread()
	assert.True(t, IsMainThread())
	done := make(chan bool)
	go func() {
		done <- IsMainThread()
	}()
	assert.False(t, <-done)

	// another goroutine taking over the main thread
	go func() {
		SetMainThread()
		done <- IsMainThread()
	}()
	assert.True(t, <-done)
	assert.False(t, IsMainThread())
	SetMainThread()
}

func TestZeroWm(t *testing.T) {
	msg := "system: invalid Wm; use GlobalWm or Invoke to get one"
	var wm Wm
	assert.PanicsWithValue(t, msg, func() { wm.NewLayer(LayerAttrs{}) })
	assert.PanicsWithValue(t, msg, func() { wm.InvokeOnMain(func(Wm) {}) })
	assert.PanicsWithValue(t, msg, func() { wm.App() })
}

func TestGlobalWmWithoutApp(t *testing.T) {
	prev := TheApp
	TheApp = nil
	defer func() { TheApp = prev }()
	SetMainThread()
	_, ok := TryGlobalWm()
	assert.False(t, ok)
	assert.Panics(t, func() { GlobalWm() })
}

func TestWindowAttrsMerge(t *testing.T) {
	var wa WindowAttrs
	wa.Merge(WindowAttrs{Caption: Ptr("a"), Size: Ptr(math32.Vec2(1, 2))})
	wa.Merge(WindowAttrs{Caption: Ptr("b")})
	assert.Equal(t, "b", *wa.Caption)
	assert.Equal(t, math32.Vec2(1, 2), *wa.Size)
	assert.Nil(t, wa.Visible)
}

func TestLayerAttrsMerge(t *testing.T) {
	var la LayerAttrs
	op := float32(0.25)
	la.Merge(LayerAttrs{Opacity: &op})
	op = 1
	assert.Equal(t, float32(0.25), *la.Opacity)
	la.Merge(LayerAttrs{Sublayers: &[]Layer{}})
	assert.NotNil(t, la.Sublayers)
	assert.Equal(t, float32(0.25), *la.Opacity)
}

func TestFlagsString(t *testing.T) {
	assert.Equal(t, "Resizable", DefaultWindowFlags.String())
	assert.Equal(t, "Resizable|Transparent", (Resizable | Transparent).String())
	assert.Equal(t, "0", WindowFlags(0).String())
	assert.True(t, (Resizable | Borderless).Has(Borderless))
	assert.False(t, Resizable.Has(Resizable|Borderless))
	assert.Equal(t, "Hand", CursorHand.String())
	assert.Equal(t, "CursorShape(99)", CursorShape(99).String())
}
