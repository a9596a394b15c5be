package filechooser

import (
	"errors"
	"slices"
	"testing"

	"github.com/spf13/afero"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D}

func TestParseMimePattern(t *testing.T) {
	tt := []struct {
		name    string
		pattern string
		wantErr bool
	}{
		{"exact type", "text/plain", false},
		{"wildcard subtype", "image/*", false},
		{"wildcard both", "*/*", false},
		{"partial wildcard", "audio/x-*", false},
		{"missing slash", "image", true},
		{"too many slashes", "a/b/c", true},
		{"empty", "", true},
	}

	for _, tc := range tt {
		_, err := ParseMimePattern(tc.pattern)
		if tc.wantErr && err == nil {
			t.Errorf("%s: expected an error for pattern %q", tc.name, tc.pattern)
		}
		if tc.wantErr && err != nil && !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: expected ErrInvalidArgument, got: %s", tc.name, err)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %s", tc.name, err)
		}
	}
}

func TestMimePatternMatch(t *testing.T) {
	tt := []struct {
		name        string
		pattern     string
		contentType string
		want        bool
	}{
		{"wildcard subtype match", "image/*", "image/png", true},
		{"wildcard subtype mismatch", "image/*", "text/plain", false},
		{"plus in subtype", "image/*", "image/svg+xml", true},
		{"match all", "*/*", "video/mp4", true},
		{"match all needs a slash", "*/*", "imagepng", false},
		{"exact match", "text/plain", "text/plain", true},
		{"exact mismatch", "text/plain", "text/html", false},
		{"partial wildcard match", "audio/x-*", "audio/x-wav", true},
		{"partial wildcard mismatch", "audio/x-*", "audio/mpeg", false},
		{"case insensitive", "IMAGE/*", "image/PNG", true},
		{"anchored", "image/*", "ximage/png", false},
	}

	for _, tc := range tt {
		p, err := ParseMimePattern(tc.pattern)
		if err != nil {
			t.Fatalf("%s: failed to parse pattern %q: %s", tc.name, tc.pattern, err)
		}
		if got := p.Match(tc.contentType); got != tc.want {
			t.Errorf("%s: Match(%q) = %v, want %v", tc.name, tc.contentType, got, tc.want)
		}
	}
}

func TestProbeContentType(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/files/photo.png", pngHeader, 0644); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "/files/page.html", []byte("<html></html>"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "/files/unknown.zzz", []byte("no magic here"), 0644); err != nil {
		t.Fatal(err)
	}

	tt := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"magic bytes", "/files/photo.png", "image/png", false},
		{"extension fallback", "/files/page.html", "text/html", false},
		{"undetectable", "/files/unknown.zzz", "", false},
		{"missing file", "/files/nope.txt", "", true},
	}

	for _, tc := range tt {
		got, err := probeContentType(fs, tc.path)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%s: expected an error", tc.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %s", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestExtensionsForPattern(t *testing.T) {
	p, err := ParseMimePattern("image/*")
	if err != nil {
		t.Fatal(err)
	}

	exts := extensionsForPattern(p)
	for _, want := range []string{".jpg", ".png", ".gif"} {
		if !slices.Contains(exts, want) {
			t.Errorf("expected %s in derived extensions, got %v", want, exts)
		}
	}
	if !slices.IsSorted(exts) {
		t.Errorf("extensions not sorted: %v", exts)
	}

	// Text types carry no magic bytes so nothing can be derived.
	p, err = ParseMimePattern("text/*")
	if err != nil {
		t.Fatal(err)
	}
	if exts := extensionsForPattern(p); len(exts) != 0 {
		t.Errorf("expected no extensions for text/*, got %v", exts)
	}
}
