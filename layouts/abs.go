// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layouts

import (
	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/uicore"
)

// AbsItem is a subview of an [AbsLayout] with its frame.
type AbsItem struct {
	View  *uicore.View
	Frame math32.Box2
}

// AbsLayout places each subview at an explicit frame, regardless of the
// size of the view.
type AbsLayout struct {
	items []AbsItem

	// Traits are the size traits of the view.
	Traits uicore.SizeTraits
}

// NewAbs returns a new [AbsLayout] with the given items. The size traits
// fix the size to the union of the item frames.
func NewAbs(items ...AbsItem) *AbsLayout {
	var size math32.Vector2
	for _, it := range items {
		size.SetMax(it.Frame.Max)
	}
	return &AbsLayout{items: items, Traits: Fixed(size)}
}

// SetTraits sets the [AbsLayout.Traits].
func (l *AbsLayout) SetTraits(traits uicore.SizeTraits) *AbsLayout {
	l.Traits = traits
	return l
}

func (l *AbsLayout) Subviews() []*uicore.View {
	views := make([]*uicore.View, len(l.items))
	for i, it := range l.items {
		views[i] = it.View
	}
	return views
}

func (l *AbsLayout) SizeTraits(ctx *uicore.LayoutCtx) uicore.SizeTraits {
	return l.Traits
}

func (l *AbsLayout) Arrange(ctx *uicore.LayoutCtx, size math32.Vector2) {
	for _, it := range l.items {
		ctx.SetSubviewFrame(it.View, it.Frame)
	}
}

func (l *AbsLayout) HasSameSubviews(other uicore.Layout) bool {
	return uicore.SameSubviews(l, other)
}
