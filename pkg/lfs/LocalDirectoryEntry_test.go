// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package lfs

import (
	iofs "io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deptofdefense/icelist/pkg/fs"
)

type testDirEntry struct {
	name    string
	dir     bool
	mode    iofs.FileMode
	info    iofs.FileInfo
	infoErr error
}

func (de *testDirEntry) Name() string {
	return de.name
}

func (de *testDirEntry) IsDir() bool {
	return de.dir
}

func (de *testDirEntry) Type() iofs.FileMode {
	return de.mode.Type()
}

func (de *testDirEntry) Info() (iofs.FileInfo, error) {
	return de.info, de.infoErr
}

type testDirEntryInfo struct {
	modTime time.Time
	size    int64
}

func (fi *testDirEntryInfo) Name() string {
	return ""
}

func (fi *testDirEntryInfo) Size() int64 {
	return fi.size
}

func (fi *testDirEntryInfo) Mode() iofs.FileMode {
	return 0
}

func (fi *testDirEntryInfo) ModTime() time.Time {
	return fi.modTime
}

func (fi *testDirEntryInfo) IsDir() bool {
	return false
}

func (fi *testDirEntryInfo) Sys() interface{} {
	return nil
}

func TestNewLocalDirectoryEntry(t *testing.T) {
	modTime := time.Now()
	lde, err := NewLocalDirectoryEntry(&testDirEntry{
		name: "a.txt",
		info: &testDirEntryInfo{modTime: modTime, size: 5},
	})
	require.NoError(t, err)
	assert.Equal(t, "a.txt", lde.Name())
	assert.Equal(t, fs.KindFile, lde.Kind())
	assert.False(t, lde.IsDir())
	assert.Equal(t, modTime, lde.ModTime())
	assert.Equal(t, int64(5), lde.Size())
}

func TestNewLocalDirectoryEntryKinds(t *testing.T) {
	lde, err := NewLocalDirectoryEntry(&testDirEntry{
		name: "sub",
		dir:  true,
		mode: iofs.ModeDir,
		info: &testDirEntryInfo{},
	})
	require.NoError(t, err)
	assert.Equal(t, fs.KindDirectory, lde.Kind())
	assert.True(t, lde.IsDir())

	lde, err = NewLocalDirectoryEntry(&testDirEntry{
		name: "link",
		mode: iofs.ModeSymlink,
		info: &testDirEntryInfo{},
	})
	require.NoError(t, err)
	assert.Equal(t, fs.KindSymlink, lde.Kind())
}

func TestNewLocalDirectoryEntryVanished(t *testing.T) {
	_, err := NewLocalDirectoryEntry(&testDirEntry{
		name:    "gone.txt",
		infoErr: iofs.ErrNotExist,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, iofs.ErrNotExist)
}
