// ABOUTME: Session error kinds
// ABOUTME: Load failures carry the path; save failures wrap sentinels
package session

import (
	"errors"
	"fmt"
)

var (
	ErrNoEncoder = errors.New("format cannot be written")
	ErrEmptyName = errors.New("file name is empty")
)

// LoadError reports a source that could not be opened or decoded
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
