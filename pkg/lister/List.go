// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package lister

import (
	"context"
	"fmt"
	"strings"

	"github.com/deptofdefense/icelist/pkg/fs"
)

// List enumerates the immediate entries of the filesystem root in a single
// pass.  The filesystem is expected to be rooted at the target directory, so
// the listing always reads "/".  Entries that disappear while enumerating are
// skipped rather than failing the listing.
func List(ctx context.Context, fsys fs.FileSystem, input *ListInput) ([]Entry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	fi, err := fsys.Stat(ctx, "/")
	if err != nil {
		if fsys.IsNotExist(err) {
			return nil, &PathNotFoundError{Path: input.Path}
		}
		if fsys.IsPermission(err) {
			return nil, &PermissionDeniedError{Path: input.Path}
		}
		return nil, fmt.Errorf("error stating %q: %w", input.Path, err)
	}
	if !fi.IsDir() {
		return nil, &NotADirectoryError{Path: input.Path}
	}

	directoryEntries, err := fsys.ReadDir(ctx, "/")
	if err != nil {
		if fsys.IsPermission(err) {
			return nil, &PermissionDeniedError{Path: input.Path}
		}
		if fsys.IsNotExist(err) {
			return nil, &PathNotFoundError{Path: input.Path}
		}
		return nil, fmt.Errorf("error reading directory %q: %w", input.Path, err)
	}

	entries := make([]Entry, 0, len(directoryEntries))
	for _, de := range directoryEntries {
		name := de.Name()
		if len(name) == 0 || name == "." || name == ".." {
			continue
		}
		if !input.All && strings.HasPrefix(name, ".") {
			continue
		}
		if input.FilesOnly && de.IsDir() {
			continue
		}
		if input.DirectoriesOnly && !de.IsDir() {
			continue
		}
		entries = append(entries, Entry{
			Name:    name,
			Kind:    de.Kind(),
			ModTime: de.ModTime(),
			Size:    de.Size(),
		})
	}

	if len(input.SortKey) > 0 || input.Reverse {
		key := input.SortKey
		if len(key) == 0 {
			key = SortKeyName
		}
		SortEntries(entries, key, input.Reverse)
	}

	if input.MaxEntries >= 0 && len(entries) > input.MaxEntries {
		entries = entries[:input.MaxEntries]
	}

	return entries, nil
}
