package appicon

import (
	"errors"
	"fmt"
)

// FilesystemError reports a failed directory creation or file write. It is
// the only error Export returns.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	if e == nil {
		return "filesystem operation failed"
	}
	if e.Err == nil {
		return fmt.Sprintf("%s %s failed", e.Op, e.Path)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func IsFilesystemError(err error) bool {
	var fsErr *FilesystemError
	return errors.As(err, &fsErr)
}
