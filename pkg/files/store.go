package files

import (
	"context"
	"os"
)

// Store is the filesystem surface the browser consumes: one listing call,
// a live type check and a whole-file read. Nothing is ever written.
type Store interface {
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
	Stat(name string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
}
