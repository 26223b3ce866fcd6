// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package format

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	columnPadding  = 2
	columnMinWidth = 8
)

// Columns arranges items column-wise into at most maxColumns columns within
// maxWidth display cells and returns the rendered lines.  Widths are measured
// with lipgloss so ANSI styling does not count toward the display width.
// Falls back to one item per line when no multi-column arrangement fits.
func Columns(items []string, maxColumns int, maxWidth int) []string {
	if len(items) == 0 {
		return nil
	}
	for columns := maxColumns; columns > 1; columns-- {
		rows := (len(items) + columns - 1) / columns
		widths := make([]int, 0, columns)
		total := 0
		for c := 0; c < columns; c++ {
			w := 0
			for i := c * rows; i < (c+1)*rows && i < len(items); i++ {
				if lw := lipgloss.Width(items[i]); lw > w {
					w = lw
				}
			}
			w += columnPadding
			if w < columnMinWidth {
				w = columnMinWidth
			}
			widths = append(widths, w)
			total += w
		}
		if total > maxWidth {
			continue
		}
		lines := make([]string, 0, rows)
		for r := 0; r < rows; r++ {
			line := strings.Builder{}
			for c := 0; c < columns; c++ {
				i := c*rows + r
				if i >= len(items) {
					break
				}
				line.WriteString(items[i])
				if c < columns-1 && (c+1)*rows+r < len(items) {
					line.WriteString(strings.Repeat(" ", widths[c]-lipgloss.Width(items[i])))
				}
			}
			lines = append(lines, line.String())
		}
		return lines
	}
	return items
}
