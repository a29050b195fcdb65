package pip

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/denv/internal/core/domain"
	"go.trai.ch/zerr"
)

func stubUV(t *testing.T, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs require a unix shell")
	}
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "uv"), []byte("#!/bin/sh\n"+script), 0o755))
	t.Setenv("PATH", dir)
}

func TestInstaller_Install(t *testing.T) {
	outDir := t.TempDir()
	stubUV(t, `printf '%s' "$*" > `+outDir+`/args.txt`)

	installer := NewInstaller()
	err := installer.Install(context.Background(),
		"/tmp/denv-prefix", "/tmp/denv-prefix/bin/python",
		[]string{"requests==2.31.0", "flask"})
	require.NoError(t, err)

	args, err := os.ReadFile(filepath.Join(outDir, "args.txt"))
	require.NoError(t, err)
	assert.Equal(t,
		"pip install --prefix /tmp/denv-prefix --python /tmp/denv-prefix/bin/python requests==2.31.0 flask",
		string(args))
}

func TestInstaller_Install_Failure(t *testing.T) {
	stubUV(t, `
echo "no matching distribution" >&2
exit 1
`)

	installer := NewInstaller()
	err := installer.Install(context.Background(), "/tmp/denv-prefix", "/tmp/denv-prefix/bin/python", []string{"nonexistent-package"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrPipInstall.Error())

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "no matching distribution", zErr.Metadata()["stderr"])
}
