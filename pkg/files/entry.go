package files

import (
	"path/filepath"
)

// Entry is one immediate child of a listed directory. Only the path is kept;
// whether it is a regular file is asked of the Store every time.
type Entry struct {
	Dir  string
	name string
}

func NewEntry(dir, name string) Entry {
	if parent, _ := filepath.Split(name); parent != "" {
		// It's OK to have panic here.
		panic("entry name can not have path: " + name)
	}
	return Entry{Dir: dir, name: name}
}

// Name returns the final path component.
func (e Entry) Name() string { return e.name }

func (e Entry) FullName() string {
	return filepath.Join(e.Dir, e.name)
}

func (e Entry) String() string {
	return e.FullName()
}
