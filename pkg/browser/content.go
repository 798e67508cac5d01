package browser

import (
	"errors"
	"fmt"
	"io/fs"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

const (
	InitialContent    = "This is the content of the selected item."
	NotAFileContent   = "Selected item is not a file"
	ReadFailedContent = "Could not read file"
)

// Source tells where the displayed content came from.
type Source int

const (
	SourcePlaceholder Source = iota
	SourceFile
	SourceNotAFile
	SourceReadFailed
)

func (s Source) String() string {
	switch s {
	case SourcePlaceholder:
		return "placeholder"
	case SourceFile:
		return "file"
	case SourceNotAFile:
		return "not_a_file"
	case SourceReadFailed:
		return "read_failed"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// LoadFailure classifies why a file could not be shown. Every kind renders
// as ReadFailedContent.
type LoadFailure int

const (
	Other LoadFailure = iota
	NotFound
	PermissionDenied
	InvalidEncoding
)

func (k LoadFailure) String() string {
	switch k {
	case NotFound:
		return "not found"
	case PermissionDenied:
		return "permission denied"
	case InvalidEncoding:
		return "invalid encoding"
	default:
		return "other"
	}
}

type LoadError struct {
	Kind LoadFailure
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s (%s): %v", e.Path, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func newLoadError(path string, err error) *LoadError {
	loadErr := &LoadError{Kind: Other, Path: path, Err: err}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		loadErr.Kind = NotFound
	case errors.Is(err, fs.ErrPermission):
		loadErr.Kind = PermissionDenied
	case errors.Is(err, encoding.ErrInvalidUTF8):
		loadErr.Kind = InvalidEncoding
	}
	return loadErr
}

func validateUTF8(data []byte) error {
	_, _, err := transform.Bytes(encoding.UTF8Validator, data)
	return err
}

// ListingError is returned when the browsed directory can not be enumerated.
type ListingError struct {
	Dir string
	Err error
}

func (e *ListingError) Error() string {
	return fmt.Sprintf("failed to list directory %q: %v", e.Dir, e.Err)
}

func (e *ListingError) Unwrap() error {
	return e.Err
}
