// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package lister

import (
	"context"
	"errors"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deptofdefense/icelist/pkg/fs"
)

type testFileInfo struct {
	name string
	dir  bool
}

func (fi *testFileInfo) IsDir() bool        { return fi.dir }
func (fi *testFileInfo) Name() string       { return fi.name }
func (fi *testFileInfo) ModTime() time.Time { return time.Time{} }
func (fi *testFileInfo) Size() int64        { return 0 }

type testDirectoryEntry struct {
	name    string
	kind    string
	modTime time.Time
	size    int64
}

func (de *testDirectoryEntry) Name() string       { return de.name }
func (de *testDirectoryEntry) IsDir() bool        { return de.kind == fs.KindDirectory }
func (de *testDirectoryEntry) Kind() string       { return de.kind }
func (de *testDirectoryEntry) ModTime() time.Time { return de.modTime }
func (de *testDirectoryEntry) Size() int64        { return de.size }

type testFileSystem struct {
	fi         fs.FileInfo
	entries    []fs.DirectoryEntry
	statErr    error
	readDirErr error
	notExist   bool
	permission bool
}

func (tfs *testFileSystem) Join(name ...string) string {
	return path.Join(name...)
}

func (tfs *testFileSystem) Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	if tfs.statErr != nil {
		return nil, tfs.statErr
	}
	return tfs.fi, nil
}

func (tfs *testFileSystem) ReadDir(ctx context.Context, name string) ([]fs.DirectoryEntry, error) {
	if tfs.readDirErr != nil {
		return nil, tfs.readDirErr
	}
	return tfs.entries, nil
}

func (tfs *testFileSystem) IsNotExist(err error) bool {
	return tfs.notExist
}

func (tfs *testFileSystem) IsPermission(err error) bool {
	return tfs.permission
}

func file(name string, size int64, modTime time.Time) *testDirectoryEntry {
	return &testDirectoryEntry{name: name, kind: fs.KindFile, size: size, modTime: modTime}
}

func directory(name string) *testDirectoryEntry {
	return &testDirectoryEntry{name: name, kind: fs.KindDirectory}
}

func names(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestList(t *testing.T) {
	now := time.Now()
	tfs := &testFileSystem{
		fi: &testFileInfo{name: "/", dir: true},
		entries: []fs.DirectoryEntry{
			file("a.txt", 1, now),
			file("b.txt", 2, now),
			directory("sub"),
		},
	}
	entries, err := List(context.Background(), tfs, &ListInput{Path: ".", MaxEntries: -1})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt", "sub"}, names(entries))
	assert.Equal(t, fs.KindFile, entries[0].Kind)
	assert.Equal(t, fs.KindDirectory, entries[2].Kind)
}

func TestListHidden(t *testing.T) {
	tfs := &testFileSystem{
		fi: &testFileInfo{name: "/", dir: true},
		entries: []fs.DirectoryEntry{
			file(".hidden", 0, time.Time{}),
			directory(".git"),
			file("visible.txt", 0, time.Time{}),
		},
	}
	entries, err := List(context.Background(), tfs, &ListInput{Path: ".", MaxEntries: -1})
	require.NoError(t, err)
	assert.Equal(t, []string{"visible.txt"}, names(entries))

	entries, err = List(context.Background(), tfs, &ListInput{Path: ".", All: true, MaxEntries: -1})
	require.NoError(t, err)
	assert.Equal(t, []string{".hidden", ".git", "visible.txt"}, names(entries))
}

func TestListFilters(t *testing.T) {
	tfs := &testFileSystem{
		fi: &testFileInfo{name: "/", dir: true},
		entries: []fs.DirectoryEntry{
			file("a.txt", 0, time.Time{}),
			directory("sub"),
		},
	}
	entries, err := List(context.Background(), tfs, &ListInput{Path: ".", FilesOnly: true, MaxEntries: -1})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, names(entries))

	entries, err = List(context.Background(), tfs, &ListInput{Path: ".", DirectoriesOnly: true, MaxEntries: -1})
	require.NoError(t, err)
	assert.Equal(t, []string{"sub"}, names(entries))
}

func TestListSorted(t *testing.T) {
	tfs := &testFileSystem{
		fi: &testFileInfo{name: "/", dir: true},
		entries: []fs.DirectoryEntry{
			file("b.txt", 0, time.Time{}),
			file("A.txt", 0, time.Time{}),
			directory("zsub"),
		},
	}
	entries, err := List(context.Background(), tfs, &ListInput{Path: ".", SortKey: SortKeyName, MaxEntries: -1})
	require.NoError(t, err)
	assert.Equal(t, []string{"zsub", "A.txt", "b.txt"}, names(entries))

	entries, err = List(context.Background(), tfs, &ListInput{Path: ".", Reverse: true, MaxEntries: -1})
	require.NoError(t, err)
	assert.Equal(t, []string{"b.txt", "A.txt", "zsub"}, names(entries))
}

func TestListMaxEntries(t *testing.T) {
	tfs := &testFileSystem{
		fi: &testFileInfo{name: "/", dir: true},
		entries: []fs.DirectoryEntry{
			file("a.txt", 0, time.Time{}),
			file("b.txt", 0, time.Time{}),
			file("c.txt", 0, time.Time{}),
		},
	}
	entries, err := List(context.Background(), tfs, &ListInput{Path: ".", MaxEntries: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, names(entries))
}

func TestListEmpty(t *testing.T) {
	tfs := &testFileSystem{
		fi: &testFileInfo{name: "/", dir: true},
	}
	entries, err := List(context.Background(), tfs, &ListInput{Path: ".", MaxEntries: -1})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListPathNotFound(t *testing.T) {
	tfs := &testFileSystem{
		statErr:  errors.New("no such file or directory"),
		notExist: true,
	}
	_, err := List(context.Background(), tfs, &ListInput{Path: "missing", MaxEntries: -1})
	require.Error(t, err)
	var pathNotFound *PathNotFoundError
	require.ErrorAs(t, err, &pathNotFound)
	assert.Equal(t, "missing", pathNotFound.Path)
	assert.Equal(t, ExitCodePathNotFound, ExitCode(err))
}

func TestListNotADirectory(t *testing.T) {
	tfs := &testFileSystem{
		fi: &testFileInfo{name: "file.txt", dir: false},
	}
	_, err := List(context.Background(), tfs, &ListInput{Path: "file.txt", MaxEntries: -1})
	require.Error(t, err)
	var notADirectory *NotADirectoryError
	require.ErrorAs(t, err, &notADirectory)
	assert.Equal(t, ExitCodeNotADirectory, ExitCode(err))
}

func TestListPermissionDenied(t *testing.T) {
	tfs := &testFileSystem{
		fi:         &testFileInfo{name: "/", dir: true},
		readDirErr: errors.New("permission denied"),
		permission: true,
	}
	_, err := List(context.Background(), tfs, &ListInput{Path: "locked", MaxEntries: -1})
	require.Error(t, err)
	var permissionDenied *PermissionDeniedError
	require.ErrorAs(t, err, &permissionDenied)
	assert.Equal(t, ExitCodePermissionDenied, ExitCode(err))
}

func TestListInvalidInput(t *testing.T) {
	tfs := &testFileSystem{
		fi: &testFileInfo{name: "/", dir: true},
	}
	_, err := List(context.Background(), tfs, &ListInput{Path: ".", FilesOnly: true, DirectoriesOnly: true, MaxEntries: -1})
	require.Error(t, err)
	var invalidArgument *InvalidArgumentError
	require.ErrorAs(t, err, &invalidArgument)
	assert.Equal(t, ExitCodeError, ExitCode(err))

	_, err = List(context.Background(), tfs, &ListInput{Path: ".", SortKey: "color", MaxEntries: -1})
	require.Error(t, err)
	require.ErrorAs(t, err, &invalidArgument)
}
