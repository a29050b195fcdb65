// Package pip implements the secondary-ecosystem installer using uv.
package pip

import (
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/denv/internal/core/domain"
	"go.trai.ch/zerr"
)

// uvBinary is the installer invoked for pip packages.
const uvBinary = "uv"

// Installer implements ports.PipInstaller as a uv subprocess scoped to the
// prefix's own interpreter.
type Installer struct{}

// NewInstaller creates a new Installer.
func NewInstaller() *Installer {
	return &Installer{}
}

// Install runs "uv pip install" against the interpreter at python, targeting
// prefix. A non-zero exit fails with the captured standard error attached.
func (i *Installer) Install(ctx context.Context, prefix, python string, specs []string) error {
	args := []string{"pip", "install", "--prefix", prefix, "--python", python}
	args = append(args, specs...)

	//nolint:gosec // specs come from the host-supplied envfile
	cmd := exec.CommandContext(ctx, uvBinary, args...)

	if _, err := cmd.Output(); err != nil {
		pipErr := zerr.Wrap(err, domain.ErrPipInstall.Error())
		pipErr = zerr.With(pipErr, "prefix", prefix)
		pipErr = zerr.With(pipErr, "specs", strings.Join(specs, ", "))
		if exitErr, ok := err.(*exec.ExitError); ok {
			pipErr = zerr.With(pipErr, "stderr", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return pipErr
	}
	return nil
}
