// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/diffy/internal/adapters/circleci"
	_ "go.trai.ch/diffy/internal/adapters/config"
	_ "go.trai.ch/diffy/internal/adapters/diffy"
	_ "go.trai.ch/diffy/internal/adapters/filestore"
	_ "go.trai.ch/diffy/internal/adapters/github"
	_ "go.trai.ch/diffy/internal/adapters/logger"
	_ "go.trai.ch/diffy/internal/adapters/prompt"
	_ "go.trai.ch/diffy/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/diffy/internal/app"
)
