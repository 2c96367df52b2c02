// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import "path/filepath"

// Debug are the currently active debugging settings.
var Debug = &DebugSettingsData{
	SettingsBase: SettingsBase{
		Name: "Debug",
		File: filepath.Join(AppName, "debug-settings.toml"),
	},
}

func init() {
	Debug.Defaults()
}

// DebugSettingsData is the data type for debugging settings.
type DebugSettingsData struct {
	SettingsBase

	// Print a trace of update passes and the views that
	// request them through dirty flag propagation.
	UpdateTrace bool

	// Print a trace of the size traits and frames computed by layouts.
	LayoutTrace bool

	// Print a trace of mount and unmount callbacks.
	MountTrace bool

	// Print a trace of window materialization, attribute
	// pushes and platform window events.
	WindowTrace bool

	// Panic when a view layout is replaced from inside a
	// mount, unmount, or update callback of the same window.
	CheckCallbacks bool
}

func (db *DebugSettingsData) Defaults() {
	db.CheckCallbacks = true
}
