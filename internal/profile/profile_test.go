package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(`{"name":"Moshiur Rahman"}`))
	require.NoError(t, err)
	assert.Contains(t, doc.Pretty(), "Moshiur Rahman")

	_, err = Parse([]byte(`{not json`))
	assert.Error(t, err)
}

func TestPretty_IsIndented(t *testing.T) {
	doc, err := Parse([]byte(`{"a":1,"b":{"c":2}}`))
	require.NoError(t, err)

	pretty := doc.Pretty()
	assert.Contains(t, pretty, "\n")
	assert.Contains(t, pretty, "  \"a\"")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"test"}`), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Contains(t, doc.Pretty(), "test")

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
