// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/denv/internal/adapters/cache"
	_ "go.trai.ch/denv/internal/adapters/conda"
	_ "go.trai.ch/denv/internal/adapters/detector"
	_ "go.trai.ch/denv/internal/adapters/envfile"
	_ "go.trai.ch/denv/internal/adapters/lockfile"
	_ "go.trai.ch/denv/internal/adapters/logger"
	_ "go.trai.ch/denv/internal/adapters/pip"
	_ "go.trai.ch/denv/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/denv/internal/app"
	_ "go.trai.ch/denv/internal/engine/env"
)
