// Package fynedialog hosts the file dialog inside a Fyne window.
// Unlike the desktop backends it evaluates the composed filter per
// candidate, through a storage.FileFilter installed on the dialog.
package fynedialog

import (
	"path/filepath"

	"fyne.io/fyne/v2"
	fynedlg "fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/spf13/afero"

	"filechooser.app/filechooser"
)

// New returns a chooser presenting its dialogs on w. ChooseFile blocks
// until the dialog closes, so it must not be called from the Fyne event
// goroutine itself.
func New(w fyne.Window) *filechooser.Chooser {
	return &filechooser.Chooser{
		NewDialog: func() filechooser.Dialog {
			return &fyneDialog{win: w}
		},
		FS: afero.NewOsFs(),
	}
}

type fyneDialog struct {
	win    fyne.Window
	title  string
	dir    string
	filter filechooser.FilenameFilter
}

func (d *fyneDialog) SetTitle(title string) {
	d.title = title
}

func (d *fyneDialog) SetDirectory(dir string) {
	d.dir = dir
}

func (d *fyneDialog) SetFilter(filter filechooser.FilenameFilter, _ filechooser.FilterSpec) {
	d.filter = filter
}

type result struct {
	path string
	err  error
}

func (d *fyneDialog) Show(intent filechooser.Intent) (string, error) {
	done := make(chan result, 1)

	fyne.Do(func() {
		var fd *fynedlg.FileDialog

		if intent == filechooser.IntentSave {
			fd = fynedlg.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
				switch {
				case err != nil:
					done <- result{err: err}
				case writer == nil:
					done <- result{err: filechooser.ErrCancelled}
				default:
					defer writer.Close()
					done <- result{path: writer.URI().Path()}
				}
			}, d.win)
		} else {
			fd = fynedlg.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
				switch {
				case err != nil:
					done <- result{err: err}
				case reader == nil:
					done <- result{err: filechooser.ErrCancelled}
				default:
					defer reader.Close()
					done <- result{path: reader.URI().Path()}
				}
			}, d.win)
		}

		if d.title != "" {
			fd.SetTitleText(d.title)
		}

		if d.filter != nil {
			fd.SetFilter(&predicateFilter{filter: d.filter})
		}

		if d.dir != "" {
			if lister, err := storage.ListerForURI(storage.NewFileURI(d.dir)); err == nil {
				fd.SetLocation(lister)
			}
		}

		fd.Show()
	})

	res := <-done
	return res.path, res.err
}

// predicateFilter adapts a FilenameFilter to the storage.FileFilter the
// dialog widget understands. Fyne never offers directories to file
// filters, so navigation stays unrestricted.
type predicateFilter struct {
	filter filechooser.FilenameFilter
}

func (p *predicateFilter) Matches(uri fyne.URI) bool {
	path := uri.Path()
	return p.filter(filepath.Dir(path), filepath.Base(path))
}
