package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/burstmake/internal/config"
	"github.com/specialistvlad/burstmake/internal/ctxlog"
	"github.com/specialistvlad/burstmake/internal/graph"
	"github.com/specialistvlad/burstmake/internal/hcl_adapter"
	"github.com/specialistvlad/burstmake/internal/makefile"
	"github.com/specialistvlad/burstmake/internal/yaml_adapter"
)

// ErrNoTargets is returned when the build description declares nothing to build.
var ErrNoTargets = errors.New("no targets declared")

// loaderFor picks a loader from the build file's extension. Directories are
// loaded as HCL.
func loaderFor(path string) config.Loader {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return hcl_adapter.NewLoader()
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return hcl_adapter.NewLoader()
	case ".yaml", ".yml":
		return yaml_adapter.NewLoader()
	default:
		return makefile.NewLoader()
	}
}

// loadGraph reads the build description and constructs a fresh graph from it.
func (a *App) loadGraph(ctx context.Context) (*graph.Graph, *config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	path := a.buildFile()

	model, err := loaderFor(path).Load(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load build file: %w", err)
	}

	g := graph.New()
	if err := config.Apply(ctx, model, g); err != nil {
		return nil, nil, fmt.Errorf("failed to construct dependency graph: %w", err)
	}
	logger.Debug("Dependency graph constructed.", "rules", len(model.Rules), "vertices", g.Len())
	return g, model, nil
}
