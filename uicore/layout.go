// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uicore

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/settings"
)

// SizeTraits are the size constraints of a view: each dimension of
// Preferred should lie between the same dimension of Min and Max.
type SizeTraits struct {
	Min       math32.Vector2
	Max       math32.Vector2
	Preferred math32.Vector2
}

// DefaultSizeTraits returns size traits with no minimum, no maximum,
// and a zero preferred size.
func DefaultSizeTraits() SizeTraits {
	return SizeTraits{Max: math32.Vector2Scalar(math32.Infinity)}
}

// Clamp returns the given size limited to the range of the size traits.
func (st SizeTraits) Clamp(size math32.Vector2) math32.Vector2 {
	size.Clamp(st.Min, st.Max)
	return size
}

func (st SizeTraits) String() string {
	return fmt.Sprintf("min %v, max %v, preferred %v", st.Min, st.Max, st.Preferred)
}

// Layout owns the subviews of a view and decides their size traits and
// frames. A layout is immutable once it is given to [View.SetLayout];
// changing it means setting a new one.
type Layout interface {

	// Subviews returns the subviews, in drawing order. It must return
	// the same views every time.
	Subviews() []*View

	// SizeTraits computes the size traits of the view from those of
	// the subviews, available through ctx.
	SizeTraits(ctx *LayoutCtx) SizeTraits

	// Arrange sets the frame of every subview through ctx, given the
	// size of the view.
	Arrange(ctx *LayoutCtx, size math32.Vector2)

	// HasSameSubviews returns whether the other layout has the same
	// subviews in the same order. It may conservatively return false.
	HasSameSubviews(other Layout) bool
}

// SameSubviews implements [Layout.HasSameSubviews] by comparing the subview lists.
func SameSubviews(a, b Layout) bool {
	return slices.Equal(a.Subviews(), b.Subviews())
}

// DefaultLayout is the [Layout] of a new view: no subviews, and the
// given size traits.
type DefaultLayout struct {
	Traits SizeTraits
}

// NewDefaultLayout returns a [DefaultLayout] with [DefaultSizeTraits].
func NewDefaultLayout() *DefaultLayout {
	return &DefaultLayout{Traits: DefaultSizeTraits()}
}

func (l *DefaultLayout) Subviews() []*View                           { return nil }
func (l *DefaultLayout) SizeTraits(ctx *LayoutCtx) SizeTraits        { return l.Traits }
func (l *DefaultLayout) Arrange(ctx *LayoutCtx, size math32.Vector2) {}
func (l *DefaultLayout) HasSameSubviews(other Layout) bool           { return SameSubviews(l, other) }

// LayoutCtx gives a [Layout] access to its subviews during layout.
type LayoutCtx struct {
	view      *View
	arranging bool
}

func (ctx *LayoutCtx) checkSubview(sub *View) {
	if !sub.superview.isView(ctx.view) {
		panic("uicore: the view is not a subview of the view being laid out")
	}
}

// View returns the view being laid out.
func (ctx *LayoutCtx) View() *View {
	return ctx.view
}

// SubviewSizeTraits returns the size traits of the given subview.
func (ctx *LayoutCtx) SubviewSizeTraits(sub *View) SizeTraits {
	ctx.checkSubview(sub)
	return sub.sizeTraits
}

// SetSubviewFrame sets the frame of the given subview, in the coordinate
// space of the view being laid out. It can only be called from
// [Layout.Arrange].
func (ctx *LayoutCtx) SetSubviewFrame(sub *View, frame math32.Box2) {
	if !ctx.arranging {
		panic("uicore: SetSubviewFrame called outside of Layout.Arrange")
	}
	ctx.checkSubview(sub)
	if sub.frame == frame {
		return
	}
	if sub.frame.Size() != frame.Size() {
		sub.dirty |= dirtySubviewsFrame
	}
	sub.frame = frame
	if settings.Debug.LayoutTrace {
		slog.Info("uicore: subview frame", "view", sub, "frame", frame)
	}
}
