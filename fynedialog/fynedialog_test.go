package fynedialog

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2/storage"
)

func TestPredicateFilterMatches(t *testing.T) {
	var gotDir, gotName string

	pf := &predicateFilter{
		filter: func(dir, name string) bool {
			gotDir, gotName = dir, name
			return !strings.HasPrefix(name, ".")
		},
	}

	if !pf.Matches(storage.NewFileURI("/tmp/foo.png")) {
		t.Error("expected foo.png to match")
	}
	if gotDir != "/tmp" || gotName != "foo.png" {
		t.Errorf("predicate saw dir=%q name=%q", gotDir, gotName)
	}

	if pf.Matches(storage.NewFileURI("/tmp/.hidden")) {
		t.Error("expected .hidden to be rejected")
	}
}

func TestNewWiresDialogFactory(t *testing.T) {
	c := New(nil)

	if c.NewDialog == nil {
		t.Fatal("expected a dialog factory")
	}
	if c.FS == nil {
		t.Fatal("expected a default filesystem")
	}

	if _, ok := c.NewDialog().(*fyneDialog); !ok {
		t.Error("factory should build fyne dialogs")
	}
}
