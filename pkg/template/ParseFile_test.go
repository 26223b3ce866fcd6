// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package template

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deptofdefense/icelist/pkg/fs"
	"github.com/deptofdefense/icelist/pkg/lister"
)

func TestParse(t *testing.T) {
	tmpl, err := Parse("listing", `{{ .Name }}:{{ range .DirectoryEntries }} {{ .Name }}{{ end }}`)
	require.NoError(t, err)
	buf := bytes.NewBuffer([]byte{})
	err = tmpl.Execute(buf, map[string]interface{}{
		"Name": "/tmp",
		"DirectoryEntries": []lister.Entry{
			{Name: "a.txt", Kind: fs.KindFile},
			{Name: "sub", Kind: fs.KindDirectory},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "/tmp: a.txt sub", buf.String())
}

func TestParseFuncs(t *testing.T) {
	tmpl, err := Parse("listing", `{{ formatSize .Size }}|{{ formatTime .ModTime "2006-01-02" }}|{{ sumIntegers 1 2 }}`)
	require.NoError(t, err)
	buf := bytes.NewBuffer([]byte{})
	err = tmpl.Execute(buf, map[string]interface{}{
		"Size":    int64(1536),
		"ModTime": time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "  1.5 kB|2023-06-15|3", buf.String())
}

func TestParseFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "listing.tmpl")
	require.NoError(t, os.WriteFile(p, []byte(`{{ len .DirectoryEntries }} entries`), 0600))
	tmpl, err := ParseFile("listing", p)
	require.NoError(t, err)
	buf := bytes.NewBuffer([]byte{})
	require.NoError(t, tmpl.Execute(buf, map[string]interface{}{
		"DirectoryEntries": []lister.Entry{{Name: "a.txt", Kind: fs.KindFile}},
	}))
	assert.Equal(t, "1 entries", buf.String())
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile("listing", filepath.Join(t.TempDir(), "missing.tmpl"))
	assert.Error(t, err)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse("listing", `{{ .Name`)
	assert.Error(t, err)
}
