// Package filechooser drives native file dialogs from a generic
// configuration and reports the outcome through a callback. The dialog
// widget itself is pluggable: the desktop package wraps the platform
// toolkits, the fynedialog package hosts the dialog inside a Fyne
// window, and tests can substitute their own Dialog.
package filechooser

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

var (
	// ErrInvalidArgument reports a caller-side precondition violation.
	// It is returned before any dialog is constructed.
	ErrInvalidArgument = errors.New("filechooser: invalid argument")

	// ErrCancelled is returned by Dialog implementations when the user
	// dismisses the dialog without choosing a file.
	ErrCancelled = errors.New("filechooser: dialog cancelled")
)

// Dialog is the native modal widget driven by a Chooser. All setters are
// called before Show. Show blocks the calling goroutine until the dialog
// closes.
type Dialog interface {
	SetTitle(title string)
	SetDirectory(dir string)

	// SetFilter installs the effective filter. Toolkits that cannot
	// evaluate a Go predicate per candidate use the declarative spec
	// instead. Directory entries must always stay navigable.
	SetFilter(filter FilenameFilter, spec FilterSpec)

	// Show runs the dialog modally in open or save mode and returns the
	// selected native path. It returns ErrCancelled when the user backs
	// out and any other error for toolkit failures.
	Show(intent Intent) (string, error)
}

// FileChooser is the callback-based entry point implemented by Chooser.
type FileChooser interface {
	ChooseFile(cfg *Config, cb Callback) error
}

// Chooser configures and runs native file dialogs. Each call constructs
// a fresh dialog, no state is shared between runs.
type Chooser struct {
	// NewDialog returns a fresh native dialog for a single run. The
	// desktop and fynedialog packages provide wired-up constructors.
	NewDialog func() Dialog

	// FS is used for content probing and directory checks. Defaults to
	// the host filesystem.
	FS afero.Fs

	Logger      zerolog.Logger
	LogOutput   io.Writer
	initLogOnce sync.Once
}

// Log returns the zerolog logger, initializing it lazily if LogOutput is
// set. Without LogOutput the chooser stays silent.
func (c *Chooser) Log() *zerolog.Logger {
	if c.LogOutput != nil {
		c.initLogOnce.Do(func() {
			c.Logger = zerolog.New(c.LogOutput).With().Timestamp().Logger()
		})
	}
	return &c.Logger
}

func (c *Chooser) fs() afero.Fs {
	if c.FS != nil {
		return c.FS
	}
	return afero.NewOsFs()
}

// ChooseFile shows a modal file dialog described by cfg and dispatches
// exactly one Callback method: OnFileChosen with the selection on
// approval, OnCancellation on any other outcome. The call blocks until
// the user closes the dialog.
//
// A word of warning: support for Config.MimeFilter is experimental and
// slow at best. Use at your own risk.
func (c *Chooser) ChooseFile(cfg *Config, cb Callback) error {
	return c.ChooseFileWithFilter(cfg, cb, nil)
}

// ChooseFileWithFilter behaves like ChooseFile but a non-nil filter
// replaces the one composed from cfg.
func (c *Chooser) ChooseFileWithFilter(cfg *Config, cb Callback, filter FilenameFilter) error {
	if cfg == nil {
		return fmt.Errorf("%w: configuration is nil", ErrInvalidArgument)
	}
	if cb == nil {
		return fmt.Errorf("%w: callback is nil", ErrInvalidArgument)
	}
	if c.NewDialog == nil {
		return fmt.Errorf("%w: no dialog backend configured", ErrInvalidArgument)
	}

	fs := c.fs()

	var spec FilterSpec
	if filter == nil {
		var err error
		filter, spec, err = composeFilter(fs, cfg)
		if err != nil {
			return err
		}
	} else {
		spec = FilterSpec{Description: "Supported files"}
	}

	fd := c.NewDialog()

	if cfg.Title != "" {
		fd.SetTitle(cfg.Title)
	}

	if filter != nil {
		fd.SetFilter(acceptDirectories(fs, filter), spec)
	}

	if cfg.Directory != "" {
		fd.SetDirectory(cfg.Directory)
	}

	path, err := fd.Show(cfg.Intent)
	if err != nil {
		if !errors.Is(err, ErrCancelled) {
			c.Log().Debug().Err(err).Msg("dialog closed without selection")
		}
		cb.OnCancellation()
		return nil
	}

	cb.OnFileChosen(newFileHandle(fs, path))
	return nil
}
