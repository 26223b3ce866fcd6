// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package fs

import (
	"context"
)

type FileSystem interface {
	Join(name ...string) string
	Stat(ctx context.Context, name string) (FileInfo, error)
	ReadDir(ctx context.Context, name string) ([]DirectoryEntry, error)
	IsNotExist(err error) bool
	IsPermission(err error) bool
}
