// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package lister

import (
	"errors"
	"fmt"
)

const (
	ExitCodeOK               = 0
	ExitCodeError            = 1
	ExitCodePathNotFound     = 2
	ExitCodeNotADirectory    = 3
	ExitCodePermissionDenied = 4
)

type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("path %q does not exist", e.Path)
}

type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("path %q is not a directory", e.Path)
}

type PermissionDeniedError struct {
	Path string
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("permission denied reading %q", e.Path)
}

type InvalidArgumentError struct {
	Name   string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Name, e.Reason)
}

// ExitCode maps an error to the process exit code for the invocation.
func ExitCode(err error) int {
	if err == nil {
		return ExitCodeOK
	}
	var pathNotFound *PathNotFoundError
	if errors.As(err, &pathNotFound) {
		return ExitCodePathNotFound
	}
	var notADirectory *NotADirectoryError
	if errors.As(err, &notADirectory) {
		return ExitCodeNotADirectory
	}
	var permissionDenied *PermissionDeniedError
	if errors.As(err, &permissionDenied) {
		return ExitCodePermissionDenied
	}
	return ExitCodeError
}
