// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uicore

import (
	"slices"
	"strings"

	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/system"
)

// recorder collects the listener events of a test tree.
type recorder struct {
	events []string
}

func (r *recorder) add(kind, name string) {
	r.events = append(r.events, kind+" "+name)
}

func (r *recorder) count(kind, name string) int {
	return r.countEvent(kind + " " + name)
}

func (r *recorder) countEvent(ev string) int {
	n := 0
	for _, e := range r.events {
		if e == ev {
			n++
		}
	}
	return n
}

// filter returns the events of the given kind.
func (r *recorder) filter(kind string) []string {
	var evs []string
	for _, e := range r.events {
		if strings.HasPrefix(e, kind+" ") {
			evs = append(evs, e)
		}
	}
	return evs
}

func (r *recorder) reset() {
	r.events = nil
}

// testListener records events and delegates them to inner.
type testListener struct {
	name  string
	rec   *recorder
	inner ViewListener
}

func (tl *testListener) Mount(wm system.Wm, v *View, w *Window) {
	tl.rec.add("mount", tl.name)
	tl.inner.Mount(wm, v, w)
}

func (tl *testListener) Unmount(wm system.Wm, v *View) {
	tl.rec.add("unmount", tl.name)
	tl.inner.Unmount(wm, v)
}

func (tl *testListener) Position(wm system.Wm, v *View) {
	tl.rec.add("position", tl.name)
	tl.inner.Position(wm, v)
}

func (tl *testListener) Update(wm system.Wm, v *View, ctx *UpdateCtx) {
	tl.rec.add("update", tl.name)
	tl.inner.Update(wm, v, ctx)
}

// newGroupView returns a layer group view with a recording [GroupListener].
func newGroupView(wm system.Wm, rec *recorder, name string) *View {
	v := NewView(LayerGroup)
	v.SetListener(wm, &testListener{name: name, rec: rec, inner: &GroupListener{}})
	return v
}

// newLeafView returns a view with a recording [ColorListener] and the
// given preferred size, which is also its minimum.
func newLeafView(wm system.Wm, rec *recorder, name string, pref math32.Vector2) *View {
	v := NewView(0)
	v.SetListener(wm, &testListener{name: name, rec: rec, inner: &ColorListener{}})
	v.SetLayout(wm, leafLayout(pref))
	return v
}

func leafLayout(pref math32.Vector2) *DefaultLayout {
	return &DefaultLayout{Traits: SizeTraits{
		Min:       pref,
		Max:       math32.Vector2Scalar(math32.Infinity),
		Preferred: pref,
	}}
}

// rowLayout places the subviews left to right at their preferred width
// and the full height.
type rowLayout struct {
	subviews []*View
}

func newRow(subviews ...*View) *rowLayout {
	return &rowLayout{subviews: subviews}
}

func (l *rowLayout) Subviews() []*View { return l.subviews }

func (l *rowLayout) SizeTraits(ctx *LayoutCtx) SizeTraits {
	st := DefaultSizeTraits()
	for _, sub := range l.subviews {
		sst := ctx.SubviewSizeTraits(sub)
		st.Min.X += sst.Min.X
		st.Min.Y = max(st.Min.Y, sst.Min.Y)
		st.Preferred.X += sst.Preferred.X
		st.Preferred.Y = max(st.Preferred.Y, sst.Preferred.Y)
	}
	return st
}

func (l *rowLayout) Arrange(ctx *LayoutCtx, size math32.Vector2) {
	x := float32(0)
	for _, sub := range l.subviews {
		w := ctx.SubviewSizeTraits(sub).Preferred.X
		ctx.SetSubviewFrame(sub, math32.B2(x, 0, x+w, size.Y))
		x += w
	}
}

func (l *rowLayout) HasSameSubviews(other Layout) bool {
	return SameSubviews(l, other)
}

// lastAttr returns the most recent non-nil value of an attribute.
func lastAttr[T any](history []system.WindowAttrs, get func(system.WindowAttrs) *T) (T, bool) {
	for _, attrs := range slices.Backward(history) {
		if p := get(attrs); p != nil {
			return *p, true
		}
	}
	var zero T
	return zero, false
}
