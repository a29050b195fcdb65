package envfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/denv/internal/adapters/envfile"
	"go.trai.ch/denv/internal/core/domain"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writeEnvFile(t, `
channels:
  - conda-forge
  - bioconda
dependencies:
  - python=3.11
  - numpy >=1.2
`)

	loader := envfile.NewLoader()
	content, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"conda-forge", "bioconda"}, content.Channels)
	assert.Equal(t, []string{"python=3.11", "numpy >=1.2"}, content.CondaSpecs)
	assert.False(t, content.HasPipSpecs())
	assert.NotNil(t, content.Document)
}

func TestLoader_Load_PipPartition(t *testing.T) {
	path := writeEnvFile(t, `
channels:
  - conda-forge
dependencies:
  - python=3.11
  - pip
  - pip:
      - requests ==2.31.0
      - flask
`)

	loader := envfile.NewLoader()
	content, err := loader.Load(path)
	require.NoError(t, err)

	// The bare "pip" entry stays a conda spec; only the mapping opens the
	// pip block.
	assert.Equal(t, []string{"python=3.11", "pip"}, content.CondaSpecs)
	assert.Equal(t, []string{"requests ==2.31.0", "flask"}, content.PipSpecs)
	assert.True(t, content.HasPipSpecs())
}

func TestLoader_Load_OnlyFirstMappingRecognized(t *testing.T) {
	path := writeEnvFile(t, `
dependencies:
  - python=3.11
  - pip:
      - requests
  - pip:
      - flask
`)

	loader := envfile.NewLoader()
	content, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"requests"}, content.PipSpecs)
}

func TestLoader_Load_MalformedPipBlock(t *testing.T) {
	path := writeEnvFile(t, `
dependencies:
  - python=3.11
  - pip: not-a-list
`)

	loader := envfile.NewLoader()
	_, err := loader.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedSpec)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	loader := envfile.NewLoader()
	_, err := loader.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrEnvFileRead.Error())
}

func TestLoader_Load_InvalidYAML(t *testing.T) {
	path := writeEnvFile(t, "dependencies: [unclosed")

	loader := envfile.NewLoader()
	_, err := loader.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrEnvFileRead.Error())
}
