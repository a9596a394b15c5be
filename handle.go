package filechooser

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileHandle wraps the native path of a file selected through a dialog.
type FileHandle struct {
	path string
	fs   afero.Fs
}

func newFileHandle(fs afero.Fs, path string) *FileHandle {
	return &FileHandle{path: path, fs: fs}
}

// Path returns the native path of the file.
func (h *FileHandle) Path() string {
	return h.path
}

// Name returns the base name of the file.
func (h *FileHandle) Name() string {
	return filepath.Base(h.path)
}

// Ext returns the file extension including the leading dot, or an empty
// string when the name has none.
func (h *FileHandle) Ext() string {
	return filepath.Ext(h.path)
}

// Exists reports whether the file currently exists. A save dialog may
// hand back a path that has not been created yet.
func (h *FileHandle) Exists() bool {
	ok, err := afero.Exists(h.fs, h.path)
	return err == nil && ok
}

// Open opens the file for reading.
func (h *FileHandle) Open() (io.ReadCloser, error) {
	f, err := h.fs.Open(h.path)
	if err != nil {
		return nil, fmt.Errorf("filechooser: failed to open %s: %w", h.path, err)
	}
	return f, nil
}

func (h *FileHandle) String() string {
	return h.path
}
