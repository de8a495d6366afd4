// Package filesystem reads the local payrolls folder.
package filesystem

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Lister implements driven.PayrollSource over a local directory.
type Lister struct{}

// List returns the file names in dir sorted ascending. Subdirectories,
// hidden files and the ".gitkeep" sentinel are skipped. Sorting makes
// sequence numbers deterministic: directory listing order is not, and
// "YYYY-MM" names sort chronologically anyway.
func (Lister) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}
