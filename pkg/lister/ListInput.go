// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package lister

import (
	"fmt"
	"strings"
)

// ListInput holds the resolved target path and display options for a single
// invocation.
type ListInput struct {
	Path            string
	All             bool
	FilesOnly       bool
	DirectoriesOnly bool
	SortKey         string
	Reverse         bool
	MaxEntries      int
}

func (input *ListInput) Validate() error {
	if input.FilesOnly && input.DirectoriesOnly {
		return &InvalidArgumentError{
			Name:   "files-only",
			Reason: "cannot be combined with directories-only",
		}
	}
	if len(input.SortKey) > 0 && !stringSliceContains(SortKeys, input.SortKey) {
		return &InvalidArgumentError{
			Name:   "sort",
			Reason: fmt.Sprintf("unknown sort key %q, expecting one of: %s", input.SortKey, strings.Join(SortKeys, ", ")),
		}
	}
	if input.MaxEntries < -1 {
		return &InvalidArgumentError{
			Name:   "max-entries",
			Reason: "must be -1 (unlimited) or greater",
		}
	}
	return nil
}

func stringSliceContains(stringSlice []string, value string) bool {
	for _, x := range stringSlice {
		if value == x {
			return true
		}
	}
	return false
}
