package resource

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Entry describes a single asset discovered under the input root.
type Entry struct {
	// Identifier is the generated symbol name, unique within a run.
	Identifier string
	// SourcePath is the path to the original file on disk.
	SourcePath string
	// RelativePath is the path relative to the input root with separators
	// normalized to '/'. It is the stable lookup key at runtime.
	RelativePath string
	// DesignScale is the density multiplier parsed from the @Nx suffix.
	DesignScale float64
}

// Collect walks inputDir recursively and returns one Entry per regular,
// non-hidden file, in walk order. A missing input directory yields an empty
// collection rather than an error; the caller is expected to warn when
// nothing was found.
func Collect(inputDir string) ([]Entry, error) {
	if _, err := os.Stat(inputDir); os.IsNotExist(err) {
		return nil, nil
	}

	var entries []Entry
	seen := make(map[string]bool)

	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		name := d.Name()
		if strings.HasPrefix(name, ".") {
			// Hidden files (.DS_Store, .gitkeep, ...) never become resources.
			return nil
		}

		rel, err := filepath.Rel(inputDir, path)
		if err != nil {
			return err
		}
		relPath := filepath.ToSlash(rel)

		entries = append(entries, Entry{
			Identifier:   uniqueIdentifier(seen, Sanitize(relPath)),
			SourcePath:   path,
			RelativePath: relPath,
			DesignScale:  ParseScale(name),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// uniqueIdentifier suffixes id with _1, _2, ... until it is absent from seen,
// then records and returns it.
func uniqueIdentifier(seen map[string]bool, id string) string {
	base := id
	for counter := 1; seen[id]; counter++ {
		id = fmt.Sprintf("%s_%d", base, counter)
	}
	seen[id] = true
	return id
}
