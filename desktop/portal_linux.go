//go:build linux

package desktop

import (
	"crypto/rand"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
	portal "github.com/rymdport/portal/filechooser"

	"filechooser.app/filechooser"
)

type portalDialog struct {
	title  string
	dir    string
	filter filechooser.FilenameFilter
	spec   filechooser.FilterSpec
}

func newPlatformDialog() filechooser.Dialog {
	return &portalDialog{}
}

func (d *portalDialog) SetTitle(title string) {
	d.title = title
}

func (d *portalDialog) SetDirectory(dir string) {
	d.dir = dir
}

func (d *portalDialog) SetFilter(filter filechooser.FilenameFilter, spec filechooser.FilterSpec) {
	d.filter = filter
	d.spec = spec
}

func (d *portalDialog) Show(intent filechooser.Intent) (string, error) {
	token, err := handleToken()
	if err != nil {
		return "", err
	}

	title := d.title
	var uris []string

	if intent == filechooser.IntentSave {
		if title == "" {
			title = "Save File"
		}
		uris, err = portal.SaveFile("", title, &portal.SaveFileOptions{
			HandleToken:   token,
			Filters:       d.portalFilters(),
			CurrentFolder: d.dir,
		})
	} else {
		if title == "" {
			title = "Open File"
		}
		uris, err = portal.OpenFile("", title, &portal.OpenFileOptions{
			HandleToken:   token,
			Filters:       d.portalFilters(),
			CurrentFolder: d.dir,
		})
	}

	if err != nil {
		return "", errors.Wrap(err, "portal file chooser")
	}

	// The portal reports a user cancel as an empty response.
	if len(uris) == 0 {
		return "", filechooser.ErrCancelled
	}

	path, err := uriToPath(uris[0])
	if err != nil {
		return "", err
	}

	if err := validateSelection(d.filter, path); err != nil {
		return "", err
	}

	return path, nil
}

func (d *portalDialog) portalFilters() []*portal.Filter {
	var rules []portal.Rule

	if d.spec.MimePattern != "" {
		rules = append(rules, portal.Rule{Type: portal.MIMEType, Pattern: d.spec.MimePattern})
	}

	for _, ext := range d.spec.Extensions {
		rules = append(rules, portal.Rule{Type: portal.GlobPattern, Pattern: "*" + ext})
	}

	if len(rules) == 0 {
		return nil
	}

	return []*portal.Filter{{Name: d.spec.Description, Rules: rules}}
}

// uriToPath converts a file:// URI returned by the portal back into a
// native path.
func uriToPath(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", errors.Wrapf(err, "parse portal uri %q", uri)
	}

	if u.Scheme != "file" {
		return "", errors.Errorf("unexpected portal uri scheme in %q", uri)
	}

	return u.Path, nil
}

// handleToken generates the request handle element the portal expects,
// unique per dialog run.
func handleToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("can't generate a random token: %w", err)
	}
	return fmt.Sprintf("filechooser_%X", b), nil
}
