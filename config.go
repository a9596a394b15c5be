package filechooser

// Intent selects what the dialog is used for: opening an existing file
// or picking a destination to save to.
type Intent int

const (
	IntentOpen Intent = iota
	IntentSave
)

func (i Intent) String() string {
	if i == IntentSave {
		return "save"
	}
	return "open"
}

// Config describes a single dialog run. It is owned by the caller and
// must not be mutated while the dialog is showing. The zero value runs
// an unfiltered open dialog at the platform default location.
type Config struct {
	// Title of the dialog window. Empty keeps the platform default.
	Title string

	// Directory the dialog starts in. Empty keeps the platform default.
	Directory string

	// Intent switches between open and save mode.
	Intent Intent

	// MimeFilter restricts selectable files by probed content type.
	// Patterns look like "image/*" or "text/plain". Content probing is
	// best effort and may be slow, use at your own risk.
	MimeFilter string

	// NameFilter restricts selectable files by directory and name.
	NameFilter FilenameFilter
}
