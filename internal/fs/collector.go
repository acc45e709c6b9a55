// Package fs collects and orders directory entries for listing.
package fs

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
)

// Collect reads the immediate children of path and returns one Entry per
// visible child. Entries whose name starts with '.' are skipped unless
// showHidden is set. The returned order is whatever the OS produced;
// ordering is the sorter's job.
//
// If path names something other than a directory, the listing contains that
// single entry, mirroring how ls treats file arguments.
func Collect(path string, showHidden bool) ([]Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot access %s: %w", path, err)
	}

	if !info.IsDir() {
		return []Entry{newEntry(filepath.Base(path), info)}, nil
	}

	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		name := d.Name()
		if !showHidden && isHidden(name) {
			continue
		}
		info, err := d.Info()
		if err != nil {
			// Entry disappeared between ReadDir and stat; skip it
			// instead of failing the whole listing.
			continue
		}
		entries = append(entries, newEntry(name, info))
	}
	return entries, nil
}

func newEntry(name string, info iofs.FileInfo) Entry {
	return Entry{
		Name:     name,
		Kind:     kindOf(info.Mode()),
		Size:     info.Size(),
		Modified: info.ModTime(),
	}
}

func kindOf(mode iofs.FileMode) Kind {
	switch {
	case mode.IsDir():
		return KindDir
	case mode&iofs.ModeSymlink != 0:
		return KindSymlink
	case mode.IsRegular():
		return KindFile
	default:
		return KindOther
	}
}

// isHidden checks if a name refers to a dotfile.
func isHidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}
