// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package fs

import (
	"path"
)

func CleanPath(p string) string {
	if len(p) == 0 {
		return "/"
	}
	return path.Clean(p)
}
