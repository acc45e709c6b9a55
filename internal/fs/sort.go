package fs

import "sort"

// SortMode selects the primary key used to order a listing.
type SortMode int

const (
	// SortByName orders entries lexicographically, ascending.
	SortByName SortMode = iota
	// SortBySize orders entries by byte size, largest first.
	SortBySize
	// SortByMtime orders entries by modification time, newest first.
	SortByMtime
)

// SortEntries orders entries in place according to mode. Size and mtime
// sorts run largest-first and newest-first respectively; reverse inverts the
// direction of the active key. Entries that compare equal under the primary
// key always fall back to ascending name, so repeated runs over unchanged
// input produce identical output.
func SortEntries(entries []Entry, mode SortMode, reverse bool) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]

		var less, equal bool
		switch mode {
		case SortBySize:
			less = a.Size > b.Size
			equal = a.Size == b.Size
		case SortByMtime:
			less = a.Modified.After(b.Modified)
			equal = a.Modified.Equal(b.Modified)
		default:
			less = a.Name < b.Name
			equal = a.Name == b.Name
		}

		// The name tie-break is not subject to reverse.
		if equal {
			return a.Name < b.Name
		}
		if reverse {
			return !less
		}
		return less
	})
}
