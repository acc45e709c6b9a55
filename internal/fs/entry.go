package fs

import "time"

// Kind classifies a directory entry for display purposes.
type Kind int

const (
	KindFile Kind = iota
	KindDir
	KindSymlink
	KindOther
)

// Entry represents a single member of a listed directory. Entries are
// immutable after construction; sorting reorders the slice they live in.
type Entry struct {
	Name     string
	Kind     Kind
	Size     int64
	Modified time.Time
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == KindDir
}

// IsHidden reports whether the entry is a dotfile.
func (e Entry) IsHidden() bool {
	return isHidden(e.Name)
}
