package export_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/registro/pkg/core"
	"github.com/aretw0/registro/pkg/export"
)

var people = []core.Person{
	{Name: "Ana", Control: "C001", Specialty: "Systems"},
	{Name: "Luis & <Co>", Control: "C002", Specialty: "Redes"},
}

func encode(t *testing.T, set *export.Set, format string, in []core.Person) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, set.Encode(&buf, format, in))
	return buf.String()
}

func TestNew_DefaultFormats(t *testing.T) {
	set := export.New()
	assert.Equal(t, []export.Format{export.JSON, export.XML, export.YAML, export.CSV}, set.Formats())
	assert.True(t, set.Supports("YAML"), "lookup is case-insensitive")
}

func TestNew_YAMLDisabled(t *testing.T) {
	set := export.New(export.WithYAML(false))

	assert.NotContains(t, set.Formats(), export.YAML)
	_, err := set.Lookup("yaml")
	assert.ErrorIs(t, err, core.ErrUnsupportedFormat)

	var buf bytes.Buffer
	err = set.Encode(&buf, "yaml", people)
	assert.ErrorIs(t, err, core.ErrUnsupportedFormat)
	assert.Zero(t, buf.Len())
}

func TestNew_WithFormats(t *testing.T) {
	set := export.New(export.WithFormats(export.JSON, export.XML, export.JSON))
	assert.Equal(t, []export.Format{export.JSON, export.XML}, set.Formats())
	assert.False(t, set.Supports("csv"))
}

func TestLookup_Unknown(t *testing.T) {
	_, err := export.New().Lookup("pdf")
	require.ErrorIs(t, err, core.ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "pdf")
}

func TestJSON(t *testing.T) {
	set := export.New()

	out := encode(t, set, "json", people)
	assert.True(t, strings.HasPrefix(out, "[\n    {\n        \"name\": \"Ana\""))
	assert.Contains(t, out, "Luis & <Co>")

	var back []core.Person
	require.NoError(t, json.Unmarshal([]byte(out), &back))
	assert.Equal(t, people, back)

	assert.Equal(t, "[]\n", encode(t, set, "json", nil))
}

func TestXML(t *testing.T) {
	set := export.New()

	out := encode(t, set, "xml", people[:1])
	assert.Equal(t, export.XMLHeader+
		"<personas><persona><nombre>Ana</nombre><control>C001</control><especialidad>Systems</especialidad></persona></personas>",
		out)

	escaped := encode(t, set, "xml", people[1:])
	assert.Contains(t, escaped, "<nombre>Luis &amp; &lt;Co&gt;</nombre>")

	empty := encode(t, set, "xml", nil)
	assert.Equal(t, export.XMLHeader+"<personas></personas>", empty)

	enc, err := set.Lookup("xml")
	require.NoError(t, err)
	assert.Equal(t, "application/xml", enc.ContentType())
}

func TestYAML(t *testing.T) {
	set := export.New()

	out := encode(t, set, "yaml", people)
	assert.Contains(t, out, "name: Ana")
	assert.Contains(t, out, "specialty: Systems")

	var back []core.Person
	require.NoError(t, yaml.Unmarshal([]byte(out), &back))
	assert.Equal(t, people, back)
}

func TestCSV(t *testing.T) {
	out := encode(t, export.New(), "csv", people[:1])
	assert.Equal(t, "name,control,specialty\nAna,C001,Systems\n", out)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	set := export.New()

	path := filepath.Join(dir, "personas.xml")
	require.NoError(t, set.WriteFile(path, "xml", people))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), export.XMLHeader))

	err = export.New(export.WithYAML(false)).WriteFile(filepath.Join(dir, "out.yaml"), "yaml", people)
	assert.ErrorIs(t, err, core.ErrUnsupportedFormat)
	_, statErr := os.Stat(filepath.Join(dir, "out.yaml"))
	assert.True(t, os.IsNotExist(statErr))
}
