// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/crate/internal/adapters/assetdb"
	_ "go.trai.ch/crate/internal/adapters/cas"
	_ "go.trai.ch/crate/internal/adapters/config"
	_ "go.trai.ch/crate/internal/adapters/fs"
	_ "go.trai.ch/crate/internal/adapters/logger"
	_ "go.trai.ch/crate/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/crate/internal/app"
	_ "go.trai.ch/crate/internal/engine/scheduler"
)
