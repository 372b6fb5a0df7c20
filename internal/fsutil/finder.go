// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ListRegularFiles returns the full paths of the regular files directly
// inside dir, in lexical filename order. Entries whose name starts with
// skipPrefix are left out (an empty prefix skips nothing), as are
// directories and anything else that is not a regular file. Symbolic links
// are followed, so a link to a regular file is included.
func ListRegularFiles(dir string, skipPrefix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if skipPrefix != "" && strings.HasPrefix(name, skipPrefix) {
			continue
		}

		fullPath := filepath.Join(dir, name)
		info, err := os.Stat(fullPath)
		if err != nil {
			// A dangling symlink is not a regular file.
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", fullPath, err)
		}
		if !info.Mode().IsRegular() {
			continue
		}
		files = append(files, fullPath)
	}

	return files, nil
}
