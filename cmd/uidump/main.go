// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command uidump builds a small demo view tree on the headless test
// platform, runs it until it settles, and prints the resulting state of
// the window and its views as YAML. With -png it also writes the
// composited window contents. With -watch it keeps running and prints the
// dump again whenever the debug settings file changes, so trace toggles
// can be switched on while it runs.
package main

import (
	"flag"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"cogentcore.org/uicore/base/errors"
	"cogentcore.org/uicore/layouts"
	"cogentcore.org/uicore/logx"
	"cogentcore.org/uicore/math32"
	"cogentcore.org/uicore/settings"
	"cogentcore.org/uicore/system"
	"cogentcore.org/uicore/system/systest"
	"cogentcore.org/uicore/uicore"
)

func main() {
	width := flag.Float64("width", 0, "resize the window to this width after the first update")
	height := flag.Float64("height", 0, "resize the window to this height after the first update")
	pngFile := flag.String("png", "", "write the rendered window to this PNG file")
	watchSettings := flag.Bool("watch", false, "print the dump again whenever the debug settings change, until interrupted")
	flag.Parse()

	logx.SetDefaultLogger()
	settings.OpenOrDefaults(settings.Debug)

	app := systest.NewApp()
	wm, restore := app.Install()
	defer restore()

	win := demo(wm)
	steps := app.Settle()
	pal := win.Platform().(*systest.Window)
	if *width > 0 && *height > 0 {
		app.Resize(pal, math32.Vec2(float32(*width), float32(*height)))
		steps += app.Settle()
	}
	slog.Info("uidump: settled", "steps", steps, "updates", pal.Updates)

	errors.Must(win.WriteYAML(os.Stdout))

	if *pngFile != "" {
		f := errors.Must1(os.Create(*pngFile))
		defer f.Close()
		errors.Must(png.Encode(f, app.Render(pal)))
	}

	if *watchSettings {
		watch(app, wm, win)
	}
}

// watch reloads the debug settings when their file changes, then runs
// another update pass over the window and prints the dump, until
// interrupted.
func watch(app *systest.App, wm system.Wm, win *uicore.Window) {
	fnm := settings.Debug.Filename()
	errors.Must(os.MkdirAll(filepath.Dir(fnm), 0755))
	wake := make(chan struct{}, 1)
	stop, err := settings.Watch(settings.Debug, func(f func()) {
		app.InvokeOnMain(f)
		select {
		case wake <- struct{}{}:
		default:
		}
	})
	errors.Must(err)
	defer stop()
	slog.Info("uidump: watching debug settings", "file", fnm)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	for {
		select {
		case <-interrupt:
			return
		case <-wake:
			app.Settle()
			win.ContentView().PendUpdate(wm)
			app.Settle()
			errors.Log(win.WriteYAML(os.Stdout))
		}
	}
}

// demo returns a window with a title bar above a row of three colored
// panels, the middle one absorbing extra width.
func demo(wm system.Wm) *uicore.Window {
	panel := func(c color.RGBA, traits uicore.SizeTraits) *uicore.View {
		v := uicore.NewView(0)
		v.SetListener(wm, &uicore.ColorListener{Color: c})
		v.SetLayout(wm, layouts.NewEmpty(traits))
		return v
	}
	title := panel(color.RGBA{60, 60, 80, 255}, uicore.SizeTraits{
		Min:       math32.Vec2(40, 24),
		Max:       math32.Vec2(math32.Infinity, 24),
		Preferred: math32.Vec2(200, 24),
	})
	left := panel(color.RGBA{200, 80, 80, 255}, layouts.Fixed(math32.Vec2(60, 100)))
	middle := panel(color.RGBA{80, 200, 80, 255}, layouts.Flexible(math32.Vec2(20, 50), math32.Vec2(80, 100)))
	right := panel(color.RGBA{80, 80, 200, 255}, layouts.Fixed(math32.Vec2(60, 100)))

	body := uicore.NewView(uicore.LayerGroup)
	body.SetListener(wm, &uicore.GroupListener{BgColor: color.RGBA{240, 240, 240, 255}})
	body.SetLayout(wm, layouts.NewRow(left, middle, right).SetSpacing(4).SetMargin(layouts.SidesAll(4)))

	root := uicore.NewView(uicore.LayerGroup)
	root.SetListener(wm, &uicore.GroupListener{BgColor: color.RGBA{255, 255, 255, 255}})
	root.SetLayout(wm, layouts.NewColumn(title, body))

	win := uicore.NewWindow(wm)
	win.SetCaption(wm, "uidump")
	win.SetContentView(wm, root)
	win.SetVisibility(wm, true)
	return win
}
