// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package lfs

import (
	iofs "io/fs"
	"time"

	"github.com/deptofdefense/icelist/pkg/fs"
)

type LocalDirectoryEntry struct {
	name    string
	kind    string
	modTime time.Time
	size    int64
}

func (lde *LocalDirectoryEntry) IsDir() bool {
	return lde.kind == fs.KindDirectory
}

func (lde *LocalDirectoryEntry) Name() string {
	return lde.name
}

func (lde *LocalDirectoryEntry) Kind() string {
	return lde.kind
}

func (lde *LocalDirectoryEntry) ModTime() time.Time {
	return lde.modTime
}

func (lde *LocalDirectoryEntry) Size() int64 {
	return lde.size
}

func entryKind(de iofs.DirEntry) string {
	switch t := de.Type(); {
	case de.IsDir():
		return fs.KindDirectory
	case t&iofs.ModeSymlink != 0:
		return fs.KindSymlink
	case t.IsRegular():
		return fs.KindFile
	}
	return fs.KindOther
}

// NewLocalDirectoryEntry stats the entry up front so the attributes are fixed
// at enumeration time.  Returns the stat error when the entry has vanished
// since the directory read.
func NewLocalDirectoryEntry(de iofs.DirEntry) (*LocalDirectoryEntry, error) {
	info, err := de.Info()
	if err != nil {
		return nil, err
	}
	return &LocalDirectoryEntry{
		name:    de.Name(),
		kind:    entryKind(de),
		modTime: info.ModTime(),
		size:    info.Size(),
	}, nil
}
