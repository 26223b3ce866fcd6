// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package format

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/rodaine/table"
)

// NewTable returns a table for long listings.  Widths are measured with
// lipgloss so styled cells line up.
func NewTable(w io.Writer, headers ...interface{}) table.Table {
	tbl := table.New(headers...)
	tbl.WithWriter(w)
	tbl.WithPadding(2)
	tbl.WithWidthFunc(lipgloss.Width)
	return tbl
}
