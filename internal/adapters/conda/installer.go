package conda

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/denv/internal/adapters/lockfile"
	"go.trai.ch/denv/internal/core/domain"
	"go.trai.ch/zerr"
)

// Installer implements ports.Installer using the conda client CLI. Unpacking
// and linking the artifacts into the prefix is entirely the client's concern.
type Installer struct {
	client string
}

// NewInstaller creates a new Installer backed by the default conda client.
func NewInstaller() *Installer {
	return &Installer{client: defaultClient}
}

// Install materializes the records into targetPrefix. The records are handed
// to the client as an explicit package list; cacheDir is exposed as the
// client's package cache so already-downloaded artifacts are reused.
func (i *Installer) Install(ctx context.Context, records []domain.PackageRecord, targetPrefix, cacheDir string) error {
	specFile, cleanup, err := writeExplicitSpec(records)
	if err != nil {
		return err
	}
	defer cleanup()

	//nolint:gosec // paths are provided by the host
	cmd := exec.CommandContext(ctx, i.client, "create", "--yes",
		"--prefix", targetPrefix,
		"--file", specFile)
	cmd.Env = append(os.Environ(), "CONDA_PKGS_DIRS="+cacheDir)

	if output, err := cmd.Output(); err != nil {
		installErr := zerr.Wrap(err, "failed to install packages into prefix")
		installErr = zerr.With(installErr, "prefix", targetPrefix)
		if exitErr, ok := err.(*exec.ExitError); ok {
			installErr = zerr.With(installErr, "stderr", strings.TrimSpace(string(exitErr.Stderr)))
		} else {
			installErr = zerr.With(installErr, "output", strings.TrimSpace(string(output)))
		}
		return installErr
	}
	return nil
}

// writeExplicitSpec renders the records as an explicit package list in a
// temporary file and returns its path with a cleanup function.
func writeExplicitSpec(records []domain.PackageRecord) (string, func(), error) {
	dir, err := os.MkdirTemp("", "denv-install-*")
	if err != nil {
		return "", nil, zerr.Wrap(err, "failed to create temporary spec directory")
	}
	cleanup := func() { _ = os.RemoveAll(dir) }

	var b strings.Builder
	b.WriteString(lockfile.Header + "\n")
	for _, record := range records {
		b.WriteString(record.URL)
		if record.Checksum != "" {
			b.WriteString("#" + record.Checksum)
		}
		b.WriteString("\n")
	}

	path := filepath.Join(dir, "explicit.txt")
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		cleanup()
		return "", nil, zerr.Wrap(err, "failed to write explicit spec file")
	}
	return path, cleanup, nil
}
