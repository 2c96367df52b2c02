// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uicore

import "strings"

// ViewFlags are the creation-time flags of a [View].
type ViewFlags uint8

const (
	// LayerGroup indicates that the sublayers of the view are added to
	// the view's own layer, which makes it possible to clip subviews or
	// apply group opacity. The listener of such a view must put
	// [UpdateCtx.Sublayers] into a layer it owns.
	LayerGroup ViewFlags = 1 << iota
)

// Has returns whether all of the given flags are set.
func (f ViewFlags) Has(flag ViewFlags) bool {
	return f&flag == flag
}

func (f ViewFlags) String() string {
	if f.Has(LayerGroup) {
		return "LayerGroup"
	}
	return "0"
}

// dirtyFlags record which cached properties of a view are stale and which
// callbacks are owed. Each local flag is directly followed by its
// descendant counterpart, which is set on ancestors.
type dirtyFlags uint16

const (
	// dirtySizeTraits means the size traits must be recomputed.
	dirtySizeTraits dirtyFlags = 1 << iota
	dirtyDescendantSizeTraits

	// dirtySubviewsFrame means the layout must arrange the subviews again.
	dirtySubviewsFrame
	dirtyDescendantSubviewsFrame

	// dirtyPositionEvent means [ViewListener.Position] is owed.
	dirtyPositionEvent
	dirtyDescendantPositionEvent

	// dirtyUpdateEvent means [ViewListener.Update] is owed.
	dirtyUpdateEvent
	dirtyDescendantUpdateEvent

	// dirtySublayers means the sublayer set of a layer group changed.
	dirtySublayers
	dirtyDescendantSublayers

	// dirtyMounted is the state of being mounted, not a dirty flag.
	dirtyMounted

	// dirtyMount means a mount walk is owed to the subtree.
	dirtyMount
)

const dirtyLocal = dirtySizeTraits | dirtySubviewsFrame | dirtyPositionEvent | dirtyUpdateEvent | dirtySublayers

var dirtyNames = []string{
	"SizeTraits", "DescendantSizeTraits",
	"SubviewsFrame", "DescendantSubviewsFrame",
	"PositionEvent", "DescendantPositionEvent",
	"UpdateEvent", "DescendantUpdateEvent",
	"Sublayers", "DescendantSublayers",
	"Mounted", "Mount",
}

// raiseLevel converts flags of a view into the flags its superview gets:
// local flags become descendant flags, descendant flags and dirtyMount
// stay, and dirtyMounted is dropped.
func (f dirtyFlags) raiseLevel() dirtyFlags {
	return f&^(dirtyLocal|dirtyMounted) | (f&dirtyLocal)<<1
}

// isDirty returns whether any flag other than dirtyMounted is set.
func (f dirtyFlags) isDirty() bool {
	return f&^dirtyMounted != 0
}

func (f dirtyFlags) has(flag dirtyFlags) bool {
	return f&flag == flag
}

func (f dirtyFlags) hasAny(flags dirtyFlags) bool {
	return f&flags != 0
}

func (f dirtyFlags) String() string {
	if f == 0 {
		return "0"
	}
	var names []string
	for i, nm := range dirtyNames {
		if f&(1<<i) != 0 {
			names = append(names, nm)
		}
	}
	return strings.Join(names, "|")
}
