package wiring_test

import (
	"testing"

	"github.com/grindlemire/graft"
	_ "go.trai.ch/tsconf/internal/wiring" // Register providers
)

// TestGraftDependencies validates the dependency injection graph: every node
// declaring a dependency resolves it, and every resolved dependency is declared.
func TestGraftDependencies(t *testing.T) {
	graft.AssertDepsValid(t, "../../internal")
}
