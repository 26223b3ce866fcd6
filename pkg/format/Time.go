// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package format

import (
	"fmt"
	"time"
)

type agoUnit struct {
	suffix string
	scale  time.Duration
	cutoff float64
}

var agoUnits = []agoUnit{
	{suffix: "s ago", scale: time.Second, cutoff: 120},
	{suffix: "m ago", scale: time.Minute, cutoff: 120},
	{suffix: "h ago", scale: time.Hour, cutoff: 48},
	{suffix: "d ago", scale: 24 * time.Hour, cutoff: 100},
}

// Time renders a timestamp in a fixed-width form.  The short form is 8
// characters relative to now ("2.5h ago", falling back to " 2006-01" for old
// timestamps), the long form is the exact timestamp.
func Time(t time.Time, now time.Time, long bool) string {
	if long {
		return t.Format("2006-01-02 15:04:05")
	}
	ago := now.Sub(t)
	if ago < 0 {
		ago = 0
	}
	for _, u := range agoUnits {
		num := float64(ago) / float64(u.scale)
		if num >= u.cutoff {
			continue
		}
		if s := fixedLength(num, 3); len(s) > 0 {
			return s + u.suffix
		}
	}
	return fmt.Sprintf("%8s", t.Format("2006-01"))
}
