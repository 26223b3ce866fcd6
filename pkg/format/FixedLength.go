// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// fixedLength renders the most accurate representation of num that fits in
// exactly length characters, right aligned.  Returns the empty string if num
// cannot fit.
func fixedLength(num float64, length int) string {
	s := strconv.FormatFloat(num, 'f', length, 64)
	i := strings.Index(s, ".")
	if i > length {
		return ""
	}
	digits := 0
	if i < length {
		digits = length - 1 - i
	}
	shift := math.Pow(10, float64(digits))
	num = math.Round(num*shift) / shift
	s = strconv.FormatFloat(num, 'f', length, 64)
	if j := strings.Index(s, "."); j > length {
		return ""
	}
	s = s[:length]
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return fmt.Sprintf("%*s", length, s)
}
