// Package wiring registers all Graft nodes for the library.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/tsconf/internal/adapters/fs"
	_ "go.trai.ch/tsconf/internal/adapters/logger"
	_ "go.trai.ch/tsconf/internal/adapters/telemetry"
	_ "go.trai.ch/tsconf/internal/adapters/tsconfig"
)
