package filechooser

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// FilenameFilter reports whether the file called name inside dir should
// be selectable. Filters must be stateless as they are re-evaluated for
// every candidate the dialog lists.
type FilenameFilter func(dir, name string) bool

// And combines two filters. A candidate passes only if both accept it.
func (f FilenameFilter) And(other FilenameFilter) FilenameFilter {
	return func(dir, name string) bool {
		return f(dir, name) && other(dir, name)
	}
}

// FilterSpec carries declarative hints mirroring the effective filter.
// Backends whose toolkit cannot call back into a Go predicate per
// candidate install these instead.
type FilterSpec struct {
	// Description is the user-visible name of the filter.
	Description string

	// MimePattern is the configured MIME pattern, if any.
	MimePattern string

	// Extensions holds dot-prefixed extensions derived from the MIME
	// pattern, e.g. [".jpg", ".png"] for "image/*". Empty when the
	// pattern covers no registered binary type.
	Extensions []string
}

// composeFilter builds the effective filter for a dialog run. It returns
// a nil filter when the configuration sets neither a MIME nor a name
// filter, the name filter alone when only that is present, and the AND
// combination when both are.
func composeFilter(fs afero.Fs, cfg *Config) (FilenameFilter, FilterSpec, error) {
	var (
		filter FilenameFilter
		spec   FilterSpec
	)

	if cfg.MimeFilter != "" {
		pattern, err := ParseMimePattern(cfg.MimeFilter)
		if err != nil {
			return nil, FilterSpec{}, err
		}

		filter = mimeTypeFilter(fs, pattern)
		spec.Description = cfg.MimeFilter + " files"
		spec.MimePattern = cfg.MimeFilter
		spec.Extensions = extensionsForPattern(pattern)
	}

	if cfg.NameFilter != nil {
		if filter == nil {
			filter = cfg.NameFilter
		} else {
			filter = filter.And(cfg.NameFilter)
		}
	}

	if spec.Description == "" && filter != nil {
		spec.Description = "Supported files"
	}

	return filter, spec, nil
}

// mimeTypeFilter accepts candidates whose probed content type satisfies
// the pattern. Probing is not guaranteed to work, so a failed or
// inconclusive probe accepts the candidate rather than hiding it.
func mimeTypeFilter(fs afero.Fs, pattern *MimePattern) FilenameFilter {
	return func(dir, name string) bool {
		contentType, err := probeContentType(fs, filepath.Join(dir, name))
		if err != nil || contentType == "" {
			return true
		}
		return pattern.Match(contentType)
	}
}

// acceptDirectories wraps filter so directories always pass, otherwise
// navigating into subfolders would be impossible.
func acceptDirectories(fs afero.Fs, filter FilenameFilter) FilenameFilter {
	return func(dir, name string) bool {
		if ok, err := afero.IsDir(fs, filepath.Join(dir, name)); err == nil && ok {
			return true
		}
		return filter(dir, name)
	}
}
