package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"filechooser.app/filechooser"
	"filechooser.app/filechooser/fynedialog"
	"filechooser.app/filechooser/internal/config"
)

func main() {
	a := app.New()
	w := a.NewWindow("pickfile")

	cfg, err := config.GetAppConfig()
	check(err)
	cfg.ApplyAppConfig()

	chooser := fynedialog.New(w)

	selected := widget.NewLabel("No file selected yet.")
	selected.Wrapping = fyne.TextWrapBreak

	mimeEntry := widget.NewEntry()
	mimeEntry.SetPlaceHolder("MIME pattern, e.g. image/*")

	themeSelect := widget.NewSelect([]string{"Default", "Light", "Dark"}, func(t string) {
		cfg.Theme = t
		cfg.ApplyAppConfig()
		if err := cfg.SaveAppConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Encountered error(s): %s\n", err)
		}
	})
	themeSelect.SetSelected(cfg.Theme)

	// ChooseFile blocks, so dialog runs happen off the event goroutine
	// and results come back through fyne.Do.
	run := func(intent filechooser.Intent) {
		go func() {
			conf := &filechooser.Config{
				Title:      "pickfile",
				Directory:  cfg.LastFolder,
				Intent:     intent,
				MimeFilter: strings.TrimSpace(mimeEntry.Text),
			}

			err := chooser.ChooseFile(conf, filechooser.CallbackFuncs{
				Chosen: func(file *filechooser.FileHandle) {
					// Remember the last file location.
					cfg.LastFolder = filepath.Dir(file.Path())
					if err := cfg.SaveAppConfig(); err != nil {
						fmt.Fprintf(os.Stderr, "Encountered error(s): %s\n", err)
					}

					fyne.Do(func() {
						selected.SetText(file.Path())
					})
				},
				Cancelled: func() {
					fyne.Do(func() {
						selected.SetText("Cancelled.")
					})
				},
			})
			if err != nil {
				fyne.Do(func() {
					selected.SetText(err.Error())
				})
			}
		}()
	}

	openButton := widget.NewButton("Open File...", func() {
		run(filechooser.IntentOpen)
	})
	saveButton := widget.NewButton("Save File...", func() {
		run(filechooser.IntentSave)
	})

	w.SetContent(container.NewVBox(mimeEntry, openButton, saveButton, themeSelect, selected))
	w.Resize(fyne.NewSize(420, 220))
	w.ShowAndRun()
}

func check(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Encountered error(s): %s\n", err)
		os.Exit(1)
	}
}
