// Package desktop provides the native file dialog backend for the
// current platform: the XDG desktop portal on Linux, the toolkit
// dialogs of github.com/sqweek/dialog on Windows and macOS.
package desktop

import (
	"io"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"filechooser.app/filechooser"
)

// ErrRejected reports that a confirmed selection failed the effective
// filter. The native toolkits here only display declarative filters, so
// the Go predicate runs after the user confirmed a file. A rejection
// closes the run through the cancellation path.
var ErrRejected = errors.New("desktop: selection rejected by filter")

// Option customizes the chooser returned by New.
type Option func(*filechooser.Chooser)

// WithLogOutput enables debug logging to w.
func WithLogOutput(w io.Writer) Option {
	return func(c *filechooser.Chooser) {
		c.LogOutput = w
	}
}

// WithFS overrides the filesystem used for content probing and
// directory checks.
func WithFS(fs afero.Fs) Option {
	return func(c *filechooser.Chooser) {
		c.FS = fs
	}
}

// New returns a chooser wired to this platform's native file dialog.
func New(opts ...Option) *filechooser.Chooser {
	c := &filechooser.Chooser{
		NewDialog: newPlatformDialog,
		FS:        afero.NewOsFs(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func validateSelection(filter filechooser.FilenameFilter, path string) error {
	if filter == nil {
		return nil
	}
	if filter(filepath.Dir(path), filepath.Base(path)) {
		return nil
	}
	return errors.Wrap(ErrRejected, filepath.Base(path))
}
