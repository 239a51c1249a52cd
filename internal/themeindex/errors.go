package themeindex

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexNotFound reports a theme directory without an index.theme.
	ErrIndexNotFound = errors.New("theme index not found")
	// ErrIndexUnreadable reports an index.theme that exists but cannot be read.
	ErrIndexUnreadable = errors.New("theme index unreadable")
)

// IndexError carries the index path alongside ErrIndexNotFound or
// ErrIndexUnreadable.
type IndexError struct {
	Path string
	Kind error
	Err  error
}

func (e *IndexError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Path, e.Kind, e.Err)
}

func (e *IndexError) Is(target error) bool { return target == e.Kind }

func (e *IndexError) Unwrap() error { return e.Err }

// MalformedEntryError describes a subdirectory section that was dropped.
type MalformedEntryError struct {
	Section string
	Reason  string
}

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("section [%s]: %s", e.Section, e.Reason)
}
