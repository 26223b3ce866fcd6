// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package lfs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/deptofdefense/icelist/pkg/fs"
)

type LocalFileSystem struct {
	fs   afero.Fs
	iofs afero.IOFS
}

func (lfs *LocalFileSystem) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}

func (lfs *LocalFileSystem) IsPermission(err error) bool {
	return os.IsPermission(err)
}

func (lfs *LocalFileSystem) Join(name ...string) string {
	return filepath.Join(name...)
}

func (lfs *LocalFileSystem) ReadDir(ctx context.Context, name string) ([]fs.DirectoryEntry, error) {
	directoryEntries := []fs.DirectoryEntry{}
	readDirOutput, err := lfs.iofs.ReadDir(name)
	if err != nil {
		return nil, err
	}
	for _, directoryEntry := range readDirOutput {
		lde, errEntry := NewLocalDirectoryEntry(directoryEntry)
		if errEntry != nil {
			// the entry vanished between the directory read and the stat
			if errors.Is(errEntry, iofs.ErrNotExist) {
				continue
			}
			return nil, errEntry
		}
		directoryEntries = append(directoryEntries, lde)
	}
	return directoryEntries, nil
}

func (lfs *LocalFileSystem) Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	fi, err := lfs.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	return NewLocalFileInfo(fi.Name(), fi.ModTime(), fi.IsDir(), fi.Size()), nil
}

func NewLocalFileSystem(rootPath string) *LocalFileSystem {
	lfs := afero.NewBasePathFs(afero.NewReadOnlyFs(afero.NewOsFs()), rootPath)
	return &LocalFileSystem{
		fs:   lfs,
		iofs: afero.NewIOFS(lfs),
	}
}
