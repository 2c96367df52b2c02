// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layouts

import (
	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/uicore"
)

// StackLayout arranges its subviews in a row or a column.
//
// Along the main axis, the sizes of the subviews add up; along the cross
// axis, the view is as large as the largest subview. Space beyond the
// preferred sizes is shared in proportion to how far each subview can
// grow toward its maximum, and a shortfall is taken in proportion to how
// far each can shrink toward its minimum.
type StackLayout struct {
	subviews []*uicore.View

	// Dim is the main axis: X for a row, Y for a column.
	Dim math32.Dims

	// Spacing is the gap between adjacent subviews.
	Spacing float32

	// Margin is the space around the subviews.
	Margin Sides
}

// NewStack returns a new [StackLayout] along the given axis.
func NewStack(dim math32.Dims, subviews ...*uicore.View) *StackLayout {
	return &StackLayout{subviews: subviews, Dim: dim}
}

// NewRow returns a new horizontal [StackLayout].
func NewRow(subviews ...*uicore.View) *StackLayout {
	return NewStack(math32.X, subviews...)
}

// NewColumn returns a new vertical [StackLayout].
func NewColumn(subviews ...*uicore.View) *StackLayout {
	return NewStack(math32.Y, subviews...)
}

// SetSpacing sets the [StackLayout.Spacing].
func (l *StackLayout) SetSpacing(s float32) *StackLayout {
	l.Spacing = s
	return l
}

// SetMargin sets the [StackLayout.Margin].
func (l *StackLayout) SetMargin(m Sides) *StackLayout {
	l.Margin = m
	return l
}

func (l *StackLayout) Subviews() []*uicore.View {
	return l.subviews
}

func (l *StackLayout) gaps() float32 {
	if len(l.subviews) < 2 {
		return 0
	}
	return l.Spacing * float32(len(l.subviews)-1)
}

func (l *StackLayout) SizeTraits(ctx *uicore.LayoutCtx) uicore.SizeTraits {
	main, cross := l.Dim, l.Dim.Other()
	var st uicore.SizeTraits
	st.Max.SetDim(cross, math32.Infinity)
	for _, sv := range l.subviews {
		ss := ctx.SubviewSizeTraits(sv)
		st.Min.SetDim(main, st.Min.Dim(main)+ss.Min.Dim(main))
		st.Max.SetDim(main, st.Max.Dim(main)+ss.Max.Dim(main))
		st.Preferred.SetDim(main, st.Preferred.Dim(main)+ss.Preferred.Dim(main))
		st.Min.SetDim(cross, math32.Max(st.Min.Dim(cross), ss.Min.Dim(cross)))
		st.Preferred.SetDim(cross, math32.Max(st.Preferred.Dim(cross), ss.Preferred.Dim(cross)))
	}
	g := l.gaps()
	st.Min.SetDim(main, st.Min.Dim(main)+g)
	st.Max.SetDim(main, st.Max.Dim(main)+g)
	st.Preferred.SetDim(main, st.Preferred.Dim(main)+g)
	return l.Margin.grow(st)
}

func (l *StackLayout) Arrange(ctx *uicore.LayoutCtx, size math32.Vector2) {
	if len(l.subviews) == 0 {
		return
	}
	main, cross := l.Dim, l.Dim.Other()
	inner := size.Sub(l.Margin.Size())
	traits := make([]uicore.SizeTraits, len(l.subviews))
	for i, sv := range l.subviews {
		traits[i] = ctx.SubviewSizeTraits(sv)
	}
	sizes := distribute(traits, main, inner.Dim(main)-l.gaps())

	pos := math32.Vec2(l.Margin.Left, l.Margin.Top)
	for i, sv := range l.subviews {
		var sz math32.Vector2
		sz.SetDim(main, sizes[i])
		sz.SetDim(cross, math32.Clamp(inner.Dim(cross), traits[i].Min.Dim(cross), traits[i].Max.Dim(cross)))
		ctx.SetSubviewFrame(sv, math32.Box2{Min: pos, Max: pos.Add(sz)})
		pos.SetDim(main, pos.Dim(main)+sizes[i]+l.Spacing)
	}
}

func (l *StackLayout) HasSameSubviews(other uicore.Layout) bool {
	return uicore.SameSubviews(l, other)
}

// distribute returns the main axis sizes of items with the given size
// traits sharing the given total. Every size lies within its traits.
func distribute(traits []uicore.SizeTraits, dim math32.Dims, total float32) []float32 {
	sizes := make([]float32, len(traits))
	var pref float32
	for i, st := range traits {
		sizes[i] = st.Preferred.Dim(dim)
		pref += sizes[i]
	}
	extra := total - pref
	switch {
	case extra > 0:
		// Items that can grow without limit take all of the extra space.
		var unbounded int
		var room float32
		for _, st := range traits {
			r := st.Max.Dim(dim) - st.Preferred.Dim(dim)
			if math32.IsInf(r, 1) {
				unbounded++
			} else {
				room += r
			}
		}
		for i, st := range traits {
			r := st.Max.Dim(dim) - st.Preferred.Dim(dim)
			switch {
			case unbounded > 0:
				if math32.IsInf(r, 1) {
					sizes[i] += extra / float32(unbounded)
				}
			case room > 0:
				sizes[i] += math32.Min(r, extra*r/room)
			}
		}
	case extra < 0:
		var room float32
		for _, st := range traits {
			room += st.Preferred.Dim(dim) - st.Min.Dim(dim)
		}
		if room <= 0 {
			break
		}
		for i, st := range traits {
			r := st.Preferred.Dim(dim) - st.Min.Dim(dim)
			sizes[i] -= math32.Min(r, -extra*r/room)
		}
	}
	return sizes
}
