// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package format

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette holds the styles applied to each listing component.
type Palette struct {
	Directory lipgloss.Style
	File      lipgloss.Style
	Extension lipgloss.Style
	Size      lipgloss.Style
	ModTime   lipgloss.Style
}

var (
	PaletteColorNames = []string{
		"directory",
		"extension",
		"file",
		"mtime",
		"size",
	}
	// ANSI 256 color identifiers
	PaletteColors = map[string]string{
		"directory": "120",
		"extension": "220",
		"file":      "80",
		"mtime":     "98",
		"size":      "43",
	}
)

func DefaultPalette() *Palette {
	return &Palette{
		Directory: lipgloss.NewStyle().Foreground(lipgloss.Color(PaletteColors["directory"])),
		File:      lipgloss.NewStyle().Foreground(lipgloss.Color(PaletteColors["file"])),
		Extension: lipgloss.NewStyle().Foreground(lipgloss.Color(PaletteColors["extension"])),
		Size:      lipgloss.NewStyle().Foreground(lipgloss.Color(PaletteColors["size"])),
		ModTime:   lipgloss.NewStyle().Foreground(lipgloss.Color(PaletteColors["mtime"])),
	}
}

func NoColorPalette() *Palette {
	return &Palette{
		Directory: lipgloss.NewStyle(),
		File:      lipgloss.NewStyle(),
		Extension: lipgloss.NewStyle(),
		Size:      lipgloss.NewStyle(),
		ModTime:   lipgloss.NewStyle(),
	}
}
