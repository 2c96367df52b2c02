// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uicore

import "weak"

// superview is the weak link from a view to its parent view or, for a
// content view, its window. At most one of the two is set.
type superview struct {
	view   weak.Pointer[View]
	window weak.Pointer[Window]
}

func superviewOfView(v *View) superview {
	return superview{view: weak.Make(v)}
}

func superviewOfWindow(w *Window) superview {
	return superview{window: weak.Make(w)}
}

// isEmpty returns whether the link is unset. A set link whose target has
// been collected is not empty.
func (s superview) isEmpty() bool {
	return s == superview{}
}

// isView returns whether the link points to the given view.
func (s superview) isView(v *View) bool {
	return s.view == weak.Make(v)
}

// upgrade returns the strong target of the link; both are nil if the link
// is empty or the target is gone.
func (s superview) upgrade() (*View, *Window) {
	return s.view.Value(), s.window.Value()
}
