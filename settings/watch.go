// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"cogentcore.org/uicore/base/errors"
)

// Watch watches the file of the given settings and reopens them whenever
// the file is written or recreated. The reopen runs inside a function passed
// to invoke, which must run it on the thread that owns whatever the settings
// apply to, typically through [system.Invoke]. Call the returned function to
// stop watching.
func Watch(se Settings, invoke func(f func())) (stop func() error, err error) {
	fnm := filepath.Clean(se.Filename())
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// the directory is watched, since editors commonly replace the file
	if err := w.Add(filepath.Dir(fnm)); err != nil {
		w.Close()
		return nil, err
	}
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != fnm {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					invoke(func() {
						errors.Log(Open(se))
					})
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				errors.Log(err)
			}
		}
	}()
	return w.Close, nil
}
