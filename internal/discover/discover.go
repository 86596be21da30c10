// Package discover finds pipeline metric files by filename suffix.
package discover

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Match is a metric file found under a search directory.
type Match struct {
	Path   string
	Sample string // basename with the suffix stripped
}

// Find walks root recursively and returns every regular file whose name ends
// with suffix, in lexical walk order. Symlinks to regular files match, as
// published results trees often link into a work directory. Symlinked
// directories are not descended. A root that does not exist yields
// no matches and no error.
func Find(root, suffix string) ([]Match, error) {
	if _, err := os.Stat(root); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat search dir %s: %w", root, err)
	}

	var matches []Match
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if len(name) <= len(suffix) || !strings.HasSuffix(name, suffix) {
			return nil
		}
		ok, err := isRegular(path, d)
		if err != nil || !ok {
			return err
		}
		matches = append(matches, Match{
			Path:   path,
			Sample: strings.TrimSuffix(name, suffix),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return matches, nil
}

// isRegular reports whether d is a regular file or a symlink to one. A
// dangling link is an error: its target was a metric file that is now gone.
func isRegular(path string, d fs.DirEntry) (bool, error) {
	if d.Type().IsRegular() {
		return true, nil
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false, nil
	}
	fi, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("resolve link %s: %w", path, err)
	}
	return fi.Mode().IsRegular(), nil
}
