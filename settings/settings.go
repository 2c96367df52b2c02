// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings provides persistent user settings, most importantly
// the [Debug] settings that turn on tracing in the view tree core.
package settings

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime"

	"github.com/jinzhu/copier"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"cogentcore.org/uicore/base/errors"
)

// AppName is the name of the directory under [DataDir]
// in which settings files are stored by default.
var AppName = "uicore"

// Settings is the interface that describes the functionality common to all settings data types.
type Settings interface {

	// Label returns the label text for the settings.
	Label() string

	// Filename returns the full filename/filepath at which the settings are stored.
	Filename() string

	// Defaults sets the default values for all of the settings.
	Defaults()

	// Apply does anything necessary to apply the settings to the app.
	Apply()
}

// SettingsBase contains base settings logic that other settings data types can extend.
type SettingsBase struct {

	// Name is the name of the settings.
	Name string `toml:"-" yaml:"-" copier:"-"`

	// File is the filename/filepath at which the settings are stored relative to [DataDir].
	// An absolute path is used as is.
	File string `toml:"-" yaml:"-" copier:"-"`
}

// Label returns the label text for the settings.
func (sb *SettingsBase) Label() string {
	return sb.Name
}

// Filename returns the full filename/filepath at which the settings are stored.
func (sb *SettingsBase) Filename() string {
	if filepath.IsAbs(sb.File) {
		return sb.File
	}
	return filepath.Join(DataDir(), sb.File)
}

// Defaults does nothing by default and can be extended by other settings data types.
func (sb *SettingsBase) Defaults() {}

// Apply does nothing by default and can be extended by other settings data types.
func (sb *SettingsBase) Apply() {}

// DataDir returns the OS-specific data directory: Mac: ~/Library,
// Linux: ~/.config, Windows: ~/AppData/Roaming.
func DataDir() string {
	home, err := homedir.Dir()
	if errors.Log(err) != nil {
		home = os.TempDir()
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library")
	case "windows":
		return filepath.Join(home, "AppData", "Roaming")
	default:
		return filepath.Join(home, ".config")
	}
}

// isYAML returns whether the given file should be encoded in YAML.
func isYAML(fnm string) bool {
	ext := filepath.Ext(fnm)
	return ext == ".yaml" || ext == ".yml"
}

// Open opens the given settings from their [Settings.Filename] and applies them.
// The settings are assumed to be in TOML unless they have a .yaml or .yml
// file extension.
func Open(se Settings) error {
	fnm := se.Filename()
	b, err := os.ReadFile(fnm)
	if err != nil {
		return err
	}
	if isYAML(fnm) {
		err = yaml.Unmarshal(b, se)
	} else {
		err = toml.Unmarshal(b, se)
	}
	if err != nil {
		return fmt.Errorf("settings.Open %s: %w", fnm, err)
	}
	se.Apply()
	return nil
}

// Save saves the given settings to their [Settings.Filename].
// The settings will be encoded in TOML unless they have a .yaml
// or .yml file extension.
func Save(se Settings) error {
	fnm := se.Filename()
	var buf bytes.Buffer
	var err error
	if isYAML(fnm) {
		enc := yaml.NewEncoder(&buf)
		err = enc.Encode(se)
		enc.Close()
	} else {
		err = toml.NewEncoder(&buf).Encode(se)
	}
	if err != nil {
		return fmt.Errorf("settings.Save %s: %w", fnm, err)
	}
	if err := os.MkdirAll(filepath.Dir(fnm), 0755); err != nil {
		return err
	}
	return os.WriteFile(fnm, buf.Bytes(), 0666)
}

// Reset resets the given settings to their default values, keeping
// their name and file, and applies them.
func Reset(se Settings) error {
	def := reflect.New(reflect.TypeOf(se).Elem()).Interface().(Settings)
	def.Defaults()
	if err := copier.CopyWithOption(se, def, copier.Option{DeepCopy: true}); err != nil {
		return err
	}
	se.Apply()
	return nil
}

// OpenOrDefaults opens the given settings, resetting them to their
// defaults when no settings file exists yet. Other errors are logged.
func OpenOrDefaults(se Settings) {
	err := Open(se)
	if errors.Is(err, os.ErrNotExist) {
		errors.Log(Reset(se))
		return
	}
	errors.Log(err)
}
