// Package conda implements the solving and installing services by shelling
// out to a conda client.
package conda

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/denv/internal/core/domain"
	"go.trai.ch/zerr"
)

// defaultClient is the conda client binary used for solving and installing.
const defaultClient = "micromamba"

// virtualOverrides maps virtual package names to the environment variables
// the client honors as platform-baseline overrides.
var virtualOverrides = map[string]string{
	"__glibc":    "CONDA_OVERRIDE_GLIBC",
	"__linux":    "CONDA_OVERRIDE_LINUX",
	"__osx":      "CONDA_OVERRIDE_OSX",
	"__win":      "CONDA_OVERRIDE_WIN",
	"__cuda":     "CONDA_OVERRIDE_CUDA",
	"__archspec": "CONDA_OVERRIDE_ARCHSPEC",
}

// Solver implements ports.Solver using the conda client CLI.
type Solver struct {
	client string
}

// NewSolver creates a new Solver backed by the default conda client.
func NewSolver() *Solver {
	return &Solver{client: defaultClient}
}

// solveOutput is the JSON shape of a dry-run create invocation.
type solveOutput struct {
	Actions struct {
		Fetch []fetchRecord `json:"FETCH"`
	} `json:"actions"`
}

type fetchRecord struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	URL     string `json:"url"`
}

// Solve invokes the client's dry-run create against the given channels and
// constraint strings. Virtual packages are passed as override variables so
// the solver sees the detected platform baseline rather than re-probing the
// host. The fetch order reported by the client is preserved. Failures are
// not retried.
func (s *Solver) Solve(ctx context.Context, channels, specs []string, virtual []domain.VirtualPackage) ([]domain.PackageRecord, error) {
	args := []string{"create", "--dry-run", "--json", "--yes", "--name", "denv-solve"}
	for _, channel := range channels {
		args = append(args, "--channel", channel)
	}
	args = append(args, "--override-channels")
	args = append(args, specs...)

	//nolint:gosec // args are built from the host-supplied envfile
	cmd := exec.CommandContext(ctx, s.client, args...)
	cmd.Env = append(os.Environ(), overrideEnv(virtual)...)

	output, err := cmd.Output()
	if err != nil {
		solveErr := zerr.Wrap(err, domain.ErrResolution.Error())
		solveErr = zerr.With(solveErr, "specs", strings.Join(specs, ", "))
		if exitErr, ok := err.(*exec.ExitError); ok {
			solveErr = zerr.With(solveErr, "stderr", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, solveErr
	}

	var solved solveOutput
	if err := json.Unmarshal(output, &solved); err != nil {
		parseErr := zerr.Wrap(err, domain.ErrResolution.Error())
		return nil, zerr.With(parseErr, "reason", "failed to parse solver JSON output")
	}

	records := make([]domain.PackageRecord, 0, len(solved.Actions.Fetch))
	for _, fetch := range solved.Actions.Fetch {
		records = append(records, domain.PackageRecord{
			Name: fetch.Name,
			URL:  fetch.URL,
		})
	}
	return records, nil
}

func overrideEnv(virtual []domain.VirtualPackage) []string {
	env := make([]string, 0, len(virtual))
	for _, pkg := range virtual {
		if key, ok := virtualOverrides[pkg.Name]; ok {
			env = append(env, key+"="+pkg.Version)
		}
	}
	return env
}
