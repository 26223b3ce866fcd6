// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package template

import (
	"fmt"
	"os"
	"text/template"
	"time"

	"github.com/deptofdefense/icelist/pkg/format"
)

func ParseFile(name string, path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading template from %q: %w", path, err)
	}
	t, err := Parse(name, string(data))
	if err != nil {
		return nil, fmt.Errorf("error parsing template from %q: %w", path, err)
	}
	return t, nil
}

func Parse(name string, text string) (Template, error) {
	funcMap := template.FuncMap{
		"sumIntegers": func(x, y int) int {
			return x + y
		},
		"formatTime": func(t time.Time, f string) string {
			return t.Format(f)
		},
		"formatSize": func(size int64) string {
			return format.Size(size, true)
		},
	}
	t, err := template.New(name).Funcs(funcMap).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("error parsing template %q: %w", name, err)
	}
	return t, nil
}
