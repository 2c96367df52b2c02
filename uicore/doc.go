// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uicore implements the retained view tree: views and their
// layouts, windows hosting a content view, dirty flag propagation, the
// mount lifecycle, and the update pass that computes layout and pushes
// compositor layers to the platform through [system.Wm].
//
// Every view and window is owned by the main thread. Mutating methods
// take a [system.Wm] token to prove it. A view's [Layout] strongly holds
// its subviews, while a view only weakly refers to its superview (a parent
// view or, for a content view, a window), so dropping a detached subtree
// releases it.
//
// Listener callbacks may read views freely and may call [View.PendUpdate]
// and [View.SetListener], but must not call [View.SetLayout]. When
// settings.Debug.CheckCallbacks is on, doing so from a mount, unmount
// or update callback panics.
package uicore
