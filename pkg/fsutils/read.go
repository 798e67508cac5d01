package fsutils

import (
	"io"
	"os"
)

var osOpen = os.Open

// ReadFileData reads the whole file into memory. No size cap is applied.
func ReadFileData(name string) (data []byte, err error) {
	var file *os.File
	if file, err = osOpen(name); err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()
	return io.ReadAll(file)
}
