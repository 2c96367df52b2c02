// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package systest

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f32"

	"cogentcore.org/uicore/math32"
)

// Render composites the layer tree of the window into a new image of its
// physical size. Layers are drawn in tree order: background color, then
// contents, then sublayers, with transforms and opacity accumulated
// down the tree.
func (a *App) Render(w *Window) *image.RGBA {
	scale := w.DPIScale
	size := w.Size().MulScalar(scale).ToPointCeil()
	img := image.NewRGBA(image.Rectangle{Max: size})
	if root := w.RootLayer(); root != nil {
		renderLayer(img, root, math32.Scale2D(scale, scale), 1)
	}
	return img
}

func renderLayer(dst *image.RGBA, l *Layer, parent f32.Aff3, opacity float32) {
	xf := parent
	if l.Attrs.Transform != nil {
		xf = math32.MulAff3(parent, *l.Attrs.Transform)
	}
	if l.Attrs.Opacity != nil {
		opacity *= *l.Attrs.Opacity
	}
	// r may extend past dst, which clips the drawing
	r := l.Bounds().MulAff3(xf).ToRect()
	visible := !r.Intersect(dst.Bounds()).Empty()
	mask := image.NewUniform(color.Alpha{A: uint8(math32.Clamp(opacity, 0, 1) * 255)})

	if l.Attrs.BgColor != nil && visible {
		draw.DrawMask(dst, r, image.NewUniform(*l.Attrs.BgColor), image.Point{}, mask, image.Point{}, draw.Over)
	}
	if l.Attrs.Contents != nil && *l.Attrs.Contents != nil && visible {
		src := *l.Attrs.Contents
		draw.ApproxBiLinear.Scale(dst, r, src, src.Bounds(), draw.Over, &draw.Options{SrcMask: mask})
	}
	for _, sl := range l.Sublayers() {
		renderLayer(dst, sl, xf, opacity)
	}
}
