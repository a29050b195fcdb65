// Package env implements the environment resolution and deployment engine.
package env

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/denv/internal/core/domain"
	"go.trai.ch/denv/internal/core/ports"
	"go.trai.ch/zerr"
)

// interpreterRelPath is the conventional location of the python interpreter
// inside a deployed prefix.
const interpreterRelPath = "bin/python"

// Env is one environment instance: a spec plus the host-assigned deployment
// and cache paths. Envfile parsing and record resolution are lazy and
// memoized for the lifetime of the instance; the envfile is trusted immutable
// once materialized.
type Env struct {
	spec           domain.EnvSpec
	deploymentPath string
	cachePath      string

	deps Deps

	mu      sync.Mutex
	content *domain.EnvFile
	records []domain.PackageRecord
}

// Deps bundles the services an Env consults.
type Deps struct {
	Loader    ports.EnvFileLoader
	Codec     ports.LockfileCodec
	Solver    ports.Solver
	Installer ports.Installer
	Pip       ports.PipInstaller
	Assets    ports.AssetCache
	Conda     ports.CondaClient
	Detector  ports.PlatformDetector
	Logger    ports.Logger
}

// Factory creates Env instances sharing one set of services.
type Factory struct {
	deps Deps
}

// NewFactory creates a Factory from the given services.
func NewFactory(deps Deps) *Factory {
	return &Factory{deps: deps}
}

// NewEnv creates an environment instance. deploymentPath and cachePath are
// the host-assigned, identity-hash-keyed directories; they are only used for
// envfile specs.
func (f *Factory) NewEnv(spec domain.EnvSpec, deploymentPath, cachePath string) *Env {
	return &Env{
		spec:           spec,
		deploymentPath: deploymentPath,
		cachePath:      cachePath,
		deps:           f.deps,
	}
}

// Spec returns the environment's spec.
func (e *Env) Spec() domain.EnvSpec {
	return e.spec
}

// Content returns the parsed envfile content, parsing it on first access.
func (e *Env) Content() (*domain.EnvFile, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.contentLocked()
}

func (e *Env) contentLocked() (*domain.EnvFile, error) {
	if e.spec.Kind() != domain.SpecEnvFile {
		return nil, zerr.With(zerr.New("environment spec carries no envfile"), "spec", e.spec.String())
	}
	if e.content == nil {
		content, err := e.deps.Loader.Load(e.spec.EnvFile())
		if err != nil {
			return nil, err
		}
		e.content = content
	}
	return e.content, nil
}

// Records resolves the environment to its ordered package records. The first
// successful resolution is memoized and returned on all subsequent calls.
//
// A lock file present at the derived path is authoritative: its records are
// used verbatim, with no re-solving and no reconciliation against the
// envfile's current constraints. Otherwise the solving service is invoked
// with the envfile's channels and conda specs plus the detected platform
// baseline. Solver failures propagate unretried.
func (e *Env) Records(ctx context.Context) ([]domain.PackageRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.records != nil {
		return e.records, nil
	}

	lockPath := e.spec.LockfilePath(e.deps.Detector.Current())
	if lockPath != "" {
		if _, err := os.Stat(lockPath); err == nil {
			records, err := e.deps.Codec.Read(lockPath)
			switch {
			case err == nil:
				e.records = records
				return e.records, nil
			case errors.Is(err, domain.ErrLockFileHeader):
				// No explicit header: treat the file as absent and solve.
				e.deps.Logger.Warn("ignoring lock file without explicit header: " + lockPath)
			default:
				return nil, err
			}
		}
	}

	content, err := e.contentLocked()
	if err != nil {
		return nil, err
	}

	records, err := e.deps.Solver.Solve(ctx, content.Channels, content.CondaSpecs, e.deps.Detector.VirtualPackages())
	if err != nil {
		return nil, err
	}
	e.records = records
	return e.records, nil
}

// Pin writes the environment's resolved records to the derived lock file,
// making later resolutions reproduce this exact set. Concurrent pins of the
// same lock file must be serialized by the host.
func (e *Env) Pin(ctx context.Context) error {
	if !e.spec.Pinnable() {
		return zerr.With(zerr.New("environment is not pinnable"), "spec", e.spec.String())
	}
	records, err := e.Records(ctx)
	if err != nil {
		return err
	}
	lockPath := e.spec.LockfilePath(e.deps.Detector.Current())
	if err := e.deps.Codec.Write(lockPath, records); err != nil {
		return err
	}
	e.deps.Logger.Info("pinned " + e.spec.String() + " to " + lockPath)
	return nil
}

// CacheAssets downloads the environment's artifacts into its cache directory.
func (e *Env) CacheAssets(ctx context.Context) error {
	if !e.spec.Cacheable() {
		return zerr.With(zerr.New("environment is not cacheable"), "spec", e.spec.String())
	}
	records, err := e.Records(ctx)
	if err != nil {
		return err
	}
	return e.deps.Assets.CacheAssets(ctx, records, e.cachePath)
}

// AssetNames returns the expected cache file names of the environment's
// artifacts without downloading them.
func (e *Env) AssetNames(ctx context.Context) ([]string, error) {
	records, err := e.Records(ctx)
	if err != nil {
		return nil, err
	}
	return e.deps.Assets.AssetNames(records), nil
}

// Deploy materializes the environment into its deployment prefix and, if pip
// specs are declared, installs them against the prefix's own interpreter.
func (e *Env) Deploy(ctx context.Context) error {
	if !e.spec.Deployable() {
		return zerr.With(zerr.New("environment is not deployable"), "spec", e.spec.String())
	}

	records, err := e.Records(ctx)
	if err != nil {
		return err
	}

	if err := e.deps.Installer.Install(ctx, records, e.deploymentPath, e.cachePath); err != nil {
		return err
	}

	content, err := e.Content()
	if err != nil {
		return err
	}
	if !content.HasPipSpecs() {
		return nil
	}

	// Defensive normalization against malformed constraint strings.
	specs := make([]string, len(content.PipSpecs))
	for i, spec := range content.PipSpecs {
		specs[i] = strings.ReplaceAll(spec, " ", "")
	}

	python := filepath.Join(e.deploymentPath, filepath.FromSlash(interpreterRelPath))
	if _, err := os.Stat(python); err != nil {
		missingErr := zerr.With(domain.ErrMissingInterpreter, "expected", python)
		missingErr = zerr.With(missingErr, "spec", e.spec.String())
		return zerr.With(missingErr, "hint", "add python to the non-pip dependencies of the environment")
	}

	return e.deps.Pip.Install(ctx, e.deploymentPath, python, specs)
}

// Remove deletes the environment's prefix tree. It fails if the prefix does
// not exist or cannot be removed.
func (e *Env) Remove(ctx context.Context) error {
	prefix, err := e.Prefix(ctx)
	if err != nil {
		return err
	}
	if _, err := os.Stat(prefix); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRemoval.Error()), "prefix", prefix)
	}
	if err := os.RemoveAll(prefix); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRemoval.Error()), "prefix", prefix)
	}
	return nil
}

// Prefix returns the directory the environment lives in: the deployment path
// for envfile specs, the directory itself for directory specs, and the
// discovered location for named specs.
func (e *Env) Prefix(ctx context.Context) (string, error) {
	switch e.spec.Kind() {
	case domain.SpecEnvFile:
		return e.deploymentPath, nil
	case domain.SpecDirectory:
		return e.spec.Directory(), nil
	default:
		return e.namedPrefix(ctx)
	}
}

func (e *Env) namedPrefix(ctx context.Context) (string, error) {
	dirs, err := e.deps.Conda.EnvDirectories(ctx)
	if err != nil {
		return "", err
	}

	seen := make(map[string]bool)
	var candidates []string
	for _, dir := range dirs {
		candidate := filepath.Join(dir, e.spec.Name())
		if seen[candidate] {
			continue
		}
		seen[candidate] = true
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			candidates = append(candidates, candidate)
		}
	}

	switch len(candidates) {
	case 1:
		return candidates[0], nil
	case 0:
		return "", zerr.With(domain.ErrEnvNotFound, "name", e.spec.Name())
	default:
		err := zerr.With(domain.ErrEnvAmbiguous, "name", e.spec.Name())
		return "", zerr.With(err, "candidates", strings.Join(candidates, ", "))
	}
}

// ID computes the environment's identity hash. The host keys deployment and
// cache directories by it; it depends only on the spec's effective content,
// never on solved records.
func (e *Env) ID() (string, error) {
	var content *domain.EnvFile
	if e.spec.Kind() == domain.SpecEnvFile {
		var err error
		content, err = e.Content()
		if err != nil {
			return "", err
		}
	}
	return domain.HashSpec(e.spec, content)
}

// Software reports the software declared by the environment: conda specs
// first, pip specs flagged as secondary. Named and directory environments
// report nothing.
func (e *Env) Software() ([]domain.Software, error) {
	if e.spec.Kind() != domain.SpecEnvFile {
		return nil, nil
	}
	content, err := e.Content()
	if err != nil {
		return nil, err
	}

	software := make([]domain.Software, 0, len(content.CondaSpecs)+len(content.PipSpecs))
	for _, spec := range content.CondaSpecs {
		software = append(software, domain.ParseSoftware(spec, false))
	}
	for _, spec := range content.PipSpecs {
		software = append(software, domain.ParseSoftware(spec, true))
	}
	return software, nil
}

// Relocatable reports whether a deployed prefix can be moved. It cannot:
// installed binaries embed absolute runtime-library search paths.
func (e *Env) Relocatable() bool {
	return false
}
