// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"strconv"
	"strings"
)

// WindowFlags are the style flags of a platform window.
type WindowFlags uint32

const (
	// Resizable makes the window resizable by the user.
	Resizable WindowFlags = 1 << iota

	// Borderless removes the title bar and frame of the window.
	Borderless

	// Transparent makes the parts of the window not covered by
	// opaque layers see-through.
	Transparent

	// FullSizeContent extends the client area under the title bar.
	FullSizeContent
)

// DefaultWindowFlags are the style flags of a new window.
const DefaultWindowFlags = Resizable

var windowFlagNames = []string{"Resizable", "Borderless", "Transparent", "FullSizeContent"}

// Has returns whether all of the given flags are set.
func (f WindowFlags) Has(flag WindowFlags) bool {
	return f&flag == flag
}

func (f WindowFlags) String() string {
	if f == 0 {
		return "0"
	}
	var names []string
	for i, nm := range windowFlagNames {
		if f&(1<<i) != 0 {
			names = append(names, nm)
		}
	}
	return strings.Join(names, "|")
}

// CursorShape is the shape of the mouse cursor over a window.
type CursorShape int32

const (
	CursorArrow CursorShape = iota
	CursorHand
	CursorText
	CursorCrosshair
	CursorNotAllowed
	CursorResizeNS
	CursorResizeEW
	CursorWait
)

var cursorNames = []string{"Arrow", "Hand", "Text", "Crosshair", "NotAllowed", "ResizeNS", "ResizeEW", "Wait"}

func (c CursorShape) String() string {
	if c < 0 || int(c) >= len(cursorNames) {
		return "CursorShape(" + strconv.Itoa(int(c)) + ")"
	}
	return cursorNames[c]
}
