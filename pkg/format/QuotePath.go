// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package format

import (
	"fmt"
	"strings"
)

func isControl(r rune) bool {
	return r < 0x20 || (r >= 0x7f && r < 0xa0)
}

func containsControl(s string) bool {
	for _, r := range s {
		if isControl(r) {
			return true
		}
	}
	return false
}

// QuotePath renders an entry name safely for a terminal.  Names that start or
// end with spaces or quotes, or that contain control characters, are quoted,
// and control characters are replaced with escape sequences.
func QuotePath(p string) string {
	quote := containsControl(p)
	for _, edge := range []string{" ", "\"", "'"} {
		if strings.HasPrefix(p, edge) || strings.HasSuffix(p, edge) {
			quote = true
		}
	}
	if quote {
		q := "'"
		if strings.Contains(p, "'") {
			q = "\""
		}
		p = strings.ReplaceAll(p, "\\", "\\\\")
		p = strings.ReplaceAll(p, q, "\\"+q)
		p = q + p + q
	}
	if !containsControl(p) {
		return p
	}
	b := strings.Builder{}
	for _, r := range p {
		if !isControl(r) {
			b.WriteRune(r)
			continue
		}
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteString(fmt.Sprintf(`\x%02x`, r))
		}
	}
	return b.String()
}
