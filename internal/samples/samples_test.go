package samples

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecIsBundled(t *testing.T) {
	assert.Contains(t, Spec(), "openapi: 3.0.0")
	assert.Contains(t, Spec(), "title: Swagger Petstore")
}

func TestReadDefault(t *testing.T) {
	data, err := Read("")
	require.NoError(t, err)
	assert.Equal(t, Spec(), data)
}

func TestReadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("openapi: 3.0.1\n"), 0o644))

	data, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "openapi: 3.0.1\n", data)
}

func TestReadMissing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Read("definitely-not-next-to-the-test-binary.yaml")
	assert.Error(t, err)
}
