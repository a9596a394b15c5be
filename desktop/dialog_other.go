//go:build !linux

package desktop

import (
	"strings"

	"github.com/pkg/errors"
	sqdialog "github.com/sqweek/dialog"

	"filechooser.app/filechooser"
)

type nativeDialog struct {
	title  string
	dir    string
	filter filechooser.FilenameFilter
	spec   filechooser.FilterSpec
}

func newPlatformDialog() filechooser.Dialog {
	return &nativeDialog{}
}

func (d *nativeDialog) SetTitle(title string) {
	d.title = title
}

func (d *nativeDialog) SetDirectory(dir string) {
	d.dir = dir
}

func (d *nativeDialog) SetFilter(filter filechooser.FilenameFilter, spec filechooser.FilterSpec) {
	d.filter = filter
	d.spec = spec
}

func (d *nativeDialog) Show(intent filechooser.Intent) (string, error) {
	builder := sqdialog.File()

	if d.title != "" {
		builder = builder.Title(d.title)
	}

	if d.dir != "" {
		builder = builder.SetStartDir(d.dir)
	}

	if len(d.spec.Extensions) > 0 {
		exts := make([]string, len(d.spec.Extensions))
		for i, ext := range d.spec.Extensions {
			exts[i] = strings.TrimPrefix(ext, ".")
		}
		builder = builder.Filter(d.spec.Description, exts...)
	}

	var (
		path string
		err  error
	)

	if intent == filechooser.IntentSave {
		path, err = builder.Save()
	} else {
		path, err = builder.Load()
	}

	if err != nil {
		if errors.Is(err, sqdialog.ErrCancelled) {
			return "", filechooser.ErrCancelled
		}
		return "", errors.Wrap(err, "native file dialog")
	}

	if err := validateSelection(d.filter, path); err != nil {
		return "", err
	}

	return path, nil
}
