// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "golang.org/x/image/math/f32"

// Aff3 helpers operate on [f32.Aff3], the row-major 2x3 affine
// matrix used for layer transforms:
//
//	[a b c]
//	[d e f]
//
// maps (x, y) to (a*x + b*y + c, d*x + e*y + f).

// Scale2D returns a transform that scales by the given factors.
func Scale2D(x, y float32) f32.Aff3 {
	return f32.Aff3{x, 0, 0, 0, y, 0}
}

// MulAff3 returns the composition a*b, which applies b first and then a.
func MulAff3(a, b f32.Aff3) f32.Aff3 {
	return f32.Aff3{
		a[0]*b[0] + a[1]*b[3],
		a[0]*b[1] + a[1]*b[4],
		a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3],
		a[3]*b[1] + a[4]*b[4],
		a[3]*b[2] + a[4]*b[5] + a[5],
	}
}

// MulAff3Point transforms the given point by the given matrix.
func MulAff3Point(m f32.Aff3, p Vector2) Vector2 {
	return Vec2(m[0]*p.X+m[1]*p.Y+m[2], m[3]*p.X+m[4]*p.Y+m[5])
}
