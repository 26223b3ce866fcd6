// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package lister

import (
	"strings"
	"time"

	"github.com/deptofdefense/icelist/pkg/fs"
)

// Entry is a single item of a directory listing.
type Entry struct {
	Name    string    `json:"name"`
	Kind    string    `json:"kind"`
	ModTime time.Time `json:"mod_time"`
	Size    int64     `json:"size"`
}

func (e Entry) IsDir() bool {
	return e.Kind == fs.KindDirectory
}

// Ext returns the extension of the entry name, including the leading dot.
// Directories and names without a dot have no extension.
func (e Entry) Ext() string {
	if e.IsDir() {
		return ""
	}
	i := strings.LastIndex(e.Name, ".")
	if i == -1 {
		return ""
	}
	return e.Name[i:]
}
