package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/diffy/internal/app"
	_ "go.trai.ch/diffy/internal/wiring"
)

// TestGraftDependencies ensures that the dependency injection graph is valid
// at compile/test time. It checks that every node declaring a dependency
// actually uses it, and every used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	// graft.AssertDepsValid infers the dependency ID from the package name of
	// the type used in Dep[T]. Every adapter provides a type from the shared
	// ports package, so the inferred IDs never match ours.
	t.Skip("Skipping Graft validation due to static analysis limitation with shared ports package")
	graft.AssertDepsValid(t, "../../internal")
}

// TestGraftExecute resolves the whole graph against a config file in a
// temporary directory.
func TestGraftExecute(t *testing.T) {
	t.Setenv("DIFFY_CONFIG", t.TempDir()+"/config.yaml")

	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
	require.NotNil(t, components.Tracer)
	require.NoError(t, components.Tracer.Shutdown(context.Background()))
}
