package filechooser

import (
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
	"github.com/spf13/afero"
)

// MimePattern matches probed content types against a pattern such as
// "image/*". A "*" in either part matches any run of characters within
// that part, so "*/*", "audio/x-*" and exact "text/plain" all work.
// Matching is case-insensitive and anchored on both ends.
type MimePattern struct {
	raw string
	re  *regexp.Regexp
}

// ParseMimePattern compiles pattern, which must be of the type/subtype
// form with exactly one slash.
func ParseMimePattern(pattern string) (*MimePattern, error) {
	if strings.Count(pattern, "/") != 1 {
		return nil, fmt.Errorf("%w: malformed MIME pattern %q", ErrInvalidArgument, pattern)
	}

	parts := strings.Split(pattern, "*")
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}

	re, err := regexp.Compile("(?i)^" + strings.Join(parts, "[^/]*") + "$")
	if err != nil {
		return nil, fmt.Errorf("%w: malformed MIME pattern %q", ErrInvalidArgument, pattern)
	}

	return &MimePattern{raw: pattern, re: re}, nil
}

// Match reports whether the given content type satisfies the pattern.
func (p *MimePattern) Match(contentType string) bool {
	return p.re.MatchString(contentType)
}

func (p *MimePattern) String() string {
	return p.raw
}

// probeContentType sniffs the content type of path, matching magic bytes
// first and falling back to the file extension. An empty result with a
// nil error means the type could not be determined.
func probeContentType(fs afero.Fs, path string) (string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return "", fmt.Errorf("probeContentType: %w", err)
	}
	defer f.Close()

	head := make([]byte, 261)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("probeContentType: %w", err)
	}

	if n > 0 {
		kind, err := filetype.Match(head[:n])
		if err == nil && kind != filetype.Unknown {
			return kind.MIME.Value, nil
		}
	}

	// Magic bytes only cover binary formats, try the extension.
	if byExt := mime.TypeByExtension(filepath.Ext(path)); byExt != "" {
		mediatype, _, err := mime.ParseMediaType(byExt)
		if err == nil {
			return mediatype, nil
		}
	}

	return "", nil
}

// extensionsForPattern collects the extensions of every registered file
// type whose MIME value matches the pattern. Native dialogs that cannot
// run the MIME predicate themselves use the result as a display filter.
// Text types carry no magic bytes and yield an empty list.
func extensionsForPattern(pattern *MimePattern) []string {
	var exts []string
	for kind := range matchers.Matchers {
		if kind.Extension != "" && pattern.Match(kind.MIME.Value) {
			exts = append(exts, "."+kind.Extension)
		}
	}
	sort.Strings(exts)
	return exts
}
