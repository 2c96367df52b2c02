// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layouts provides stock implementations of [uicore.Layout].
package layouts

import (
	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/uicore"
)

// Sides are the margins on the four sides of a box.
type Sides struct {
	Top, Right, Bottom, Left float32
}

// SidesAll returns sides that are all the given value.
func SidesAll(v float32) Sides {
	return Sides{v, v, v, v}
}

// Size returns the total horizontal and vertical extent of the sides.
func (s Sides) Size() math32.Vector2 {
	return math32.Vec2(s.Left+s.Right, s.Top+s.Bottom)
}

// Inset returns the given box shrunk by the sides.
func (s Sides) Inset(b math32.Box2) math32.Box2 {
	return b.Inset(math32.Vec2(s.Left, s.Top), math32.Vec2(s.Right, s.Bottom))
}

// Fixed returns size traits that only allow the given size.
func Fixed(size math32.Vector2) uicore.SizeTraits {
	return uicore.SizeTraits{Min: size, Max: size, Preferred: size}
}

// Flexible returns size traits with the given minimum and preferred size
// and no maximum.
func Flexible(min, preferred math32.Vector2) uicore.SizeTraits {
	return uicore.SizeTraits{Min: min, Max: math32.Vector2Scalar(math32.Infinity), Preferred: preferred}
}

// grow adds the sides to the size traits; infinite maximums stay infinite.
func (s Sides) grow(st uicore.SizeTraits) uicore.SizeTraits {
	m := s.Size()
	st.Min = st.Min.Add(m)
	st.Max = st.Max.Add(m)
	st.Preferred = st.Preferred.Add(m)
	return st
}
