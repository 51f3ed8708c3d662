package locale

import "fmt"

// ParseError reports a locale file that is not a valid translation tree.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FileAccessError reports a locale file that could not be read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// DiscoverError reports a locales directory that could not be walked.
type DiscoverError struct {
	Dir string
	Err error
}

func (e *DiscoverError) Error() string {
	return fmt.Sprintf("discover locale files in %s: %v", e.Dir, e.Err)
}

func (e *DiscoverError) Unwrap() error {
	return e.Err
}
