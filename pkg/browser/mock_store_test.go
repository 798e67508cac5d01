package browser

import (
	"context"
	"os"
	"time"

	"github.com/datatug/dirpeek/pkg/files"
)

type fakeFileInfo struct {
	name string
	mode os.FileMode
}

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return 0 }
func (f fakeFileInfo) Mode() os.FileMode  { return f.mode }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f fakeFileInfo) Sys() any           { return nil }

type fakeDirEntry struct {
	name string
	mode os.FileMode
}

func (d fakeDirEntry) Name() string               { return d.name }
func (d fakeDirEntry) IsDir() bool                { return d.mode.IsDir() }
func (d fakeDirEntry) Type() os.FileMode          { return d.mode.Type() }
func (d fakeDirEntry) Info() (os.FileInfo, error) { return fakeFileInfo{name: d.name, mode: d.mode}, nil }

type fakeFile struct {
	mode    os.FileMode
	data    string
	statErr error
	readErr error
}

// mockStore serves a flat, in-memory directory keyed by full entry path.
type mockStore struct {
	listErr error
	names   []string
	files   map[string]fakeFile
	reads   int
}

var _ files.Store = (*mockStore)(nil)

func (s *mockStore) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	entries := make([]os.DirEntry, 0, len(s.names))
	for _, n := range s.names {
		entries = append(entries, fakeDirEntry{name: n, mode: s.files[n].mode})
	}
	return entries, nil
}

func (s *mockStore) Stat(name string) (os.FileInfo, error) {
	f, ok := s.files[name]
	if !ok {
		return nil, os.ErrNotExist
	}
	if f.statErr != nil {
		return nil, f.statErr
	}
	return fakeFileInfo{name: name, mode: f.mode}, nil
}

func (s *mockStore) ReadFile(name string) ([]byte, error) {
	s.reads++
	f := s.files[name]
	if f.readErr != nil {
		return nil, f.readErr
	}
	return []byte(f.data), nil
}

func newMockStore(fs map[string]fakeFile) *mockStore {
	s := &mockStore{files: fs}
	for name := range fs {
		s.names = append(s.names, name)
	}
	return s
}
