// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layouts

import (
	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/uicore"
)

// EmptyLayout is a layout without subviews, for leaf views with an
// intrinsic size.
type EmptyLayout struct {
	Traits uicore.SizeTraits
}

// NewEmpty returns a new [EmptyLayout] with the given size traits.
func NewEmpty(traits uicore.SizeTraits) *EmptyLayout {
	return &EmptyLayout{Traits: traits}
}

func (l *EmptyLayout) Subviews() []*uicore.View { return nil }

func (l *EmptyLayout) SizeTraits(ctx *uicore.LayoutCtx) uicore.SizeTraits { return l.Traits }

func (l *EmptyLayout) Arrange(ctx *uicore.LayoutCtx, size math32.Vector2) {}

func (l *EmptyLayout) HasSameSubviews(other uicore.Layout) bool {
	return uicore.SameSubviews(l, other)
}
