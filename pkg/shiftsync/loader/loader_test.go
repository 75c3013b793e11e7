package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDispatch(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "shifts.JSON")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"a": 1}]`), 0644))
	records, err := Load(jsonPath, DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, records, 1)

	csvPath := filepath.Join(dir, "shifts.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("a,b\n1,2\n3,\n"), 0644))
	records, err = Load(csvPath, DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.json"), DefaultOptions())
	assert.ErrorIs(t, err, ErrFileNotFound)

	txtPath := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("x"), 0644))
	_, err = Load(txtPath, DefaultOptions())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte("{"), 0644))
	_, err = Load(badPath, DefaultOptions())
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "json", loadErr.Format)
	assert.Equal(t, badPath, loadErr.Path)
}
