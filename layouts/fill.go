// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layouts

import (
	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/uicore"
)

// FillLayout makes its one subview fill the view, inside the margins.
type FillLayout struct {
	subview *uicore.View

	// Margin is the space around the subview.
	Margin Sides
}

// NewFill returns a new [FillLayout] with the given subview.
func NewFill(subview *uicore.View) *FillLayout {
	return &FillLayout{subview: subview}
}

// SetMargin sets the [FillLayout.Margin].
func (l *FillLayout) SetMargin(m Sides) *FillLayout {
	l.Margin = m
	return l
}

func (l *FillLayout) Subviews() []*uicore.View {
	return []*uicore.View{l.subview}
}

func (l *FillLayout) SizeTraits(ctx *uicore.LayoutCtx) uicore.SizeTraits {
	return l.Margin.grow(ctx.SubviewSizeTraits(l.subview))
}

func (l *FillLayout) Arrange(ctx *uicore.LayoutCtx, size math32.Vector2) {
	st := ctx.SubviewSizeTraits(l.subview)
	inner := st.Clamp(size.Sub(l.Margin.Size()))
	min := math32.Vec2(l.Margin.Left, l.Margin.Top)
	ctx.SetSubviewFrame(l.subview, math32.Box2{Min: min, Max: min.Add(inner)})
}

func (l *FillLayout) HasSameSubviews(other uicore.Layout) bool {
	return uicore.SameSubviews(l, other)
}
