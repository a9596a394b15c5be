package filechooser

import (
	"io"
	"testing"

	"github.com/spf13/afero"
)

func TestFileHandle(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/tmp/foo.txt", []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	h := newFileHandle(fs, "/tmp/foo.txt")

	if h.Path() != "/tmp/foo.txt" {
		t.Errorf("Path() = %q", h.Path())
	}
	if h.Name() != "foo.txt" {
		t.Errorf("Name() = %q", h.Name())
	}
	if h.Ext() != ".txt" {
		t.Errorf("Ext() = %q", h.Ext())
	}
	if !h.Exists() {
		t.Error("Exists() = false for an existing file")
	}

	r, err := h.Open()
	if err != nil {
		t.Fatalf("Open() failed: %s", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello" {
		t.Errorf("read %q, want hello", data)
	}
}

func TestFileHandleMissing(t *testing.T) {
	h := newFileHandle(afero.NewMemMapFs(), "/tmp/new-file.txt")

	// A save dialog may return a path that does not exist yet.
	if h.Exists() {
		t.Error("Exists() = true for a missing file")
	}
	if _, err := h.Open(); err == nil {
		t.Error("Open() should fail for a missing file")
	}
}

func TestCallbackFuncsNilFields(t *testing.T) {
	var cb CallbackFuncs

	// Nil funcs are no-ops, not panics.
	cb.OnFileChosen(newFileHandle(afero.NewMemMapFs(), "/tmp/foo.txt"))
	cb.OnCancellation()
}
