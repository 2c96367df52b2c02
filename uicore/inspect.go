// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uicore

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ViewInfo is a snapshot of the state of a view and its subviews,
// for inspection and debugging.
type ViewInfo struct {
	Listener    string     `yaml:"listener"`
	Layout      string     `yaml:"layout"`
	Flags       string     `yaml:"flags,omitempty"`
	Dirty       string     `yaml:"dirty"`
	Mounted     bool       `yaml:"mounted"`
	Frame       string     `yaml:"frame"`
	GlobalFrame string     `yaml:"globalFrame"`
	SizeTraits  string     `yaml:"sizeTraits"`
	Layers      int        `yaml:"layers"`
	Subviews    []ViewInfo `yaml:"subviews,omitempty"`
}

// WindowInfo is a snapshot of the state of a window and its view tree.
type WindowInfo struct {
	Caption      string    `yaml:"caption"`
	Visible      bool      `yaml:"visible"`
	Flags        string    `yaml:"flags"`
	Cursor       string    `yaml:"cursor"`
	Closed       bool      `yaml:"closed"`
	Materialized bool      `yaml:"materialized"`
	ContentView  *ViewInfo `yaml:"contentView,omitempty"`
}

// Info returns a snapshot of the view and its subviews.
func (v *View) Info() ViewInfo {
	vi := ViewInfo{
		Listener:    fmt.Sprintf("%T", v.listener),
		Layout:      fmt.Sprintf("%T", v.layout),
		Dirty:       (v.dirty &^ dirtyMounted).String(),
		Mounted:     v.IsMounted(),
		Frame:       v.frame.String(),
		GlobalFrame: v.globalFrame.String(),
		SizeTraits:  v.sizeTraits.String(),
		Layers:      len(v.layers),
	}
	if v.flags != 0 {
		vi.Flags = v.flags.String()
	}
	for _, sub := range v.layout.Subviews() {
		vi.Subviews = append(vi.Subviews, sub.Info())
	}
	return vi
}

// Info returns a snapshot of the window and its view tree.
func (w *Window) Info() WindowInfo {
	wi := WindowInfo{
		Caption:      w.style.caption,
		Visible:      w.style.visible,
		Flags:        w.style.flags.String(),
		Cursor:       w.style.cursor.String(),
		Closed:       w.closed,
		Materialized: w.pal != nil,
	}
	if w.contentView != nil {
		cv := w.contentView.Info()
		wi.ContentView = &cv
	}
	return wi
}

// WriteYAML writes [Window.Info] to the given writer in YAML.
func (w *Window) WriteYAML(wr io.Writer) error {
	enc := yaml.NewEncoder(wr)
	enc.SetIndent(2)
	if err := enc.Encode(w.Info()); err != nil {
		return err
	}
	return enc.Close()
}
