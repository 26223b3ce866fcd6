// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package lister

import (
	"sort"
	"strings"
)

const (
	SortKeyName    = "name"
	SortKeySize    = "size"
	SortKeyModTime = "mtime"
	SortKeyExt     = "ext"
)

var (
	SortKeys = []string{
		SortKeyName,
		SortKeySize,
		SortKeyModTime,
		SortKeyExt,
	}
)

// nameLess orders directories before files, then by case-insensitive name,
// then by exact name.
func nameLess(a Entry, b Entry) bool {
	if a.IsDir() != b.IsDir() {
		return a.IsDir()
	}
	af := strings.ToLower(a.Name)
	bf := strings.ToLower(b.Name)
	if af != bf {
		return af < bf
	}
	return a.Name < b.Name
}

func extLess(a Entry, b Entry) bool {
	af := strings.ToLower(a.Ext())
	bf := strings.ToLower(b.Ext())
	if af != bf {
		return af < bf
	}
	if a.Ext() != b.Ext() {
		return a.Ext() < b.Ext()
	}
	return nameLess(a, b)
}

func lessForKey(key string) func(a Entry, b Entry) bool {
	switch key {
	case SortKeySize:
		return func(a Entry, b Entry) bool {
			if a.Size != b.Size {
				return a.Size < b.Size
			}
			return nameLess(a, b)
		}
	case SortKeyModTime:
		return func(a Entry, b Entry) bool {
			if !a.ModTime.Equal(b.ModTime) {
				return a.ModTime.Before(b.ModTime)
			}
			return nameLess(a, b)
		}
	case SortKeyExt:
		return extLess
	}
	return nameLess
}

// SortEntries sorts entries in ascending order by the given key, then
// reverses the result if requested.
func SortEntries(entries []Entry, key string, reverse bool) {
	less := lessForKey(key)
	sort.SliceStable(entries, func(i int, j int) bool {
		return less(entries[i], entries[j])
	})
	if reverse {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	}
}
