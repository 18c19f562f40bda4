package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/quizdoc"
)

// ReadPage returns the contents of the page at path.
// Returns ENOTFOUND if the file does not exist.
func ReadPage(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", quizdoc.Errorf(quizdoc.ENOTFOUND, "page not found: %s", path)
	} else if err != nil {
		return "", err
	}
	return string(data), nil
}

// ListPages returns the regular files directly in dir whose name ends with
// ext, sorted by name. Matching is case-insensitive.
func ListPages(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	ext = strings.ToLower(ext)
	var paths []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), ext) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// Disposition says what happens to a source page once it has been converted.
type Disposition int

const (
	// Move renames the page into the parsed directory under the quiz title.
	Move Disposition = iota
	// Remove deletes the page.
	Remove
	// Keep leaves the page where it is.
	Keep
)

// String returns the name of the disposition.
func (d Disposition) String() string {
	switch d {
	case Move:
		return "move"
	case Remove:
		return "remove"
	case Keep:
		return "keep"
	}
	return "unknown"
}

// Dispose applies d to the page at src and returns its new path, or "" if
// the page was removed. Moved pages are named <parsedDir>/<SafeName(title)>.html
// and replace any page already there.
func Dispose(src, parsedDir, title string, d Disposition) (string, error) {
	switch d {
	case Keep:
		return src, nil
	case Remove:
		if err := os.Remove(src); err != nil {
			return "", err
		}
		return "", nil
	case Move:
		if err := os.MkdirAll(parsedDir, 0755); err != nil {
			return "", err
		}
		dst := filepath.Join(parsedDir, SafeName(title)+".html")
		if err := os.Rename(src, dst); err != nil {
			return "", err
		}
		return dst, nil
	}
	return "", quizdoc.Errorf(quizdoc.EINVALID, "unknown disposition %d", d)
}
