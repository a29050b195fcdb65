// Package app implements the application layer for denv.
package app

import (
	"context"
	"path/filepath"

	"go.trai.ch/denv/internal/core/domain"
	"go.trai.ch/denv/internal/core/ports"
	"go.trai.ch/denv/internal/engine/env"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	factory   *env.Factory
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new App instance.
func New(factory *env.Factory, telemetry ports.Telemetry, logger ports.Logger) *App {
	return &App{
		factory:   factory,
		telemetry: telemetry,
		logger:    logger,
	}
}

// EnvRequest describes the environment an operation targets. Exactly one of
// EnvFile, Name, or Directory must be set. Prefix and CacheDir override the
// identity-derived defaults under WorkDir.
type EnvRequest struct {
	EnvFile   string
	Name      string
	Directory string

	WorkDir  string
	Prefix   string
	CacheDir string
}

// newEnv validates the request and constructs the environment instance with
// its deployment and cache paths. Default paths are keyed by the identity
// hash, so identical specs share deployments across invocations.
func (a *App) newEnv(req EnvRequest) (*env.Env, error) {
	spec, err := domain.NewEnvSpec(req.EnvFile, req.Name, req.Directory)
	if err != nil {
		return nil, err
	}

	probe := a.factory.NewEnv(spec, "", "")
	id, err := probe.ID()
	if err != nil {
		return nil, err
	}

	prefix := req.Prefix
	if prefix == "" {
		prefix = filepath.Join(req.WorkDir, "envs", id)
	}
	cacheDir := req.CacheDir
	if cacheDir == "" {
		cacheDir = filepath.Join(req.WorkDir, "cache", id)
	}

	return a.factory.NewEnv(spec, prefix, cacheDir), nil
}

// Deploy resolves the requested environment and materializes it into its
// prefix, including the secondary pip step when declared.
func (a *App) Deploy(ctx context.Context, req EnvRequest) error {
	e, err := a.newEnv(req)
	if err != nil {
		return err
	}

	ctx, vertex := a.telemetry.Record(ctx, "deploy "+e.Spec().String())
	err = e.Deploy(ctx)
	vertex.Complete(err)
	if err != nil {
		return zerr.Wrap(err, "deployment failed")
	}
	return nil
}

// Pin resolves the requested environment and writes its lock file.
func (a *App) Pin(ctx context.Context, req EnvRequest) error {
	e, err := a.newEnv(req)
	if err != nil {
		return err
	}

	ctx, vertex := a.telemetry.Record(ctx, "pin "+e.Spec().String())
	err = e.Pin(ctx)
	vertex.Complete(err)
	return err
}

// Cache downloads the requested environment's artifacts into its cache
// directory.
func (a *App) Cache(ctx context.Context, req EnvRequest) error {
	e, err := a.newEnv(req)
	if err != nil {
		return err
	}

	ctx, vertex := a.telemetry.Record(ctx, "cache "+e.Spec().String())
	err = e.CacheAssets(ctx)
	vertex.Complete(err)
	return err
}

// AssetNames returns the expected cache file names for the requested
// environment without downloading anything.
func (a *App) AssetNames(ctx context.Context, req EnvRequest) ([]string, error) {
	e, err := a.newEnv(req)
	if err != nil {
		return nil, err
	}
	return e.AssetNames(ctx)
}

// Remove deletes the requested environment's prefix.
func (a *App) Remove(ctx context.Context, req EnvRequest) error {
	e, err := a.newEnv(req)
	if err != nil {
		return err
	}
	return e.Remove(ctx)
}

// ID returns the identity hash of the requested environment.
func (a *App) ID(req EnvRequest) (string, error) {
	e, err := a.newEnv(req)
	if err != nil {
		return "", err
	}
	return e.ID()
}

// Software lists the software declared by the requested environment.
func (a *App) Software(req EnvRequest) ([]domain.Software, error) {
	e, err := a.newEnv(req)
	if err != nil {
		return nil, err
	}
	return e.Software()
}

// Close flushes the telemetry session.
func (a *App) Close() error {
	return a.telemetry.Close()
}
