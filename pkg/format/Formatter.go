// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package format

import (
	"strings"
	"time"

	"github.com/deptofdefense/icelist/pkg/lister"
)

// Formatter renders listing entries according to the display options of a
// single invocation.
type Formatter struct {
	Palette       *Palette
	TrailingSlash bool
	Extensions    bool
	Long          bool
	Now           time.Time
}

func (f *Formatter) Name(e lister.Entry) string {
	name := QuotePath(e.Name)
	if e.IsDir() {
		if f.TrailingSlash {
			name += "/"
		}
		return f.Palette.Directory.Render(name)
	}
	if f.Extensions {
		// skip the highlight when quoting or escaping moved the extension
		if ext := e.Ext(); len(ext) > 0 && len(ext) < len(name) && strings.HasSuffix(name, ext) {
			base := name[:len(name)-len(ext)]
			return f.Palette.File.Render(base) + f.Palette.Extension.Render(ext)
		}
	}
	return f.Palette.File.Render(name)
}

func (f *Formatter) SizeCell(e lister.Entry) string {
	if e.IsDir() {
		return "-"
	}
	return f.Palette.Size.Render(Size(e.Size, f.Long))
}

func (f *Formatter) ModTimeCell(e lister.Entry) string {
	return f.Palette.ModTime.Render(Time(e.ModTime, f.Now, f.Long))
}
