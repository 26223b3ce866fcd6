// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package format

import (
	"fmt"
)

// 1024-based prefixes
var sizePrefixes = []string{"", "k", "M", "G", "T", "P", "E", "Z", "Y"}

// Size renders a byte count in a fixed-width human readable form.  The short
// form is 4 characters ("1.5k"), the long form is 8 characters ("123.4 kB").
// Negative sizes indicate the size could not be determined.
func Size(size int64, long bool) string {
	if size < 0 {
		if long {
			return fmt.Sprintf("%5s %-2s", "????", "B")
		}
		return " ???"
	}
	limit := 1000.0
	if long {
		limit = 1024.0
	}
	num := float64(size)
	prefix := 0
	for num >= limit && prefix < len(sizePrefixes)-1 {
		num /= 1024
		prefix++
	}
	if num >= limit {
		if long {
			return fmt.Sprintf("%5s %-2s", "lots", "B")
		}
		return "lots"
	}
	if long {
		s := fixedLength(num, 5)
		if len(s) == 0 {
			return fmt.Sprintf("%5s %-2s", "lots", "B")
		}
		return fmt.Sprintf("%s %-2s", s, sizePrefixes[prefix]+"B")
	}
	if prefix == 0 {
		// no prefix character, so use the space for an extra digit
		s := fixedLength(num, 4)
		if len(s) == 0 {
			return "lots"
		}
		return s
	}
	s := fixedLength(num, 3)
	if len(s) == 0 {
		return "lots"
	}
	return s + sizePrefixes[prefix]
}
