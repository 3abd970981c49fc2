// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// hasExtension reports whether name ends with one of the extensions.
func hasExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.EqualFold(filepath.Ext(name), ext) {
			return true
		}
	}
	return false
}

// FindFilesByExtension resolves each path to the files carrying one of the
// given extensions. Directories are searched recursively, files are taken as
// is when their extension matches. Results are unique and keep discovery
// order, which is lexical within a directory.
func FindFilesByExtension(paths []string, extensions ...string) ([]string, error) {
	if len(extensions) == 0 {
		panic("extensions must not be empty")
	}

	var files []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", root, err)
		}

		if !info.IsDir() {
			if hasExtension(root, extensions) {
				add(root)
			}
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && hasExtension(d.Name(), extensions) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}
