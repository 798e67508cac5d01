package osfile

import (
	"context"
	"os"

	"github.com/datatug/dirpeek/pkg/files"
	"github.com/datatug/dirpeek/pkg/fsutils"
)

var osReadDir = os.ReadDir
var osStat = os.Stat
var readFileData = fsutils.ReadFileData

var _ files.Store = (*Store)(nil)

// Store reads from the local filesystem.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

func (s Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osReadDir(name)
}

// Stat follows symbolic links, so a link to a regular file reports as one.
func (s Store) Stat(name string) (os.FileInfo, error) {
	return osStat(name)
}

// ReadFile reads the whole file with no size cap.
func (s Store) ReadFile(name string) ([]byte, error) {
	return readFileData(name)
}
