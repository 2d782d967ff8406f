package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/burstmake/internal/analysis"
	"github.com/specialistvlad/burstmake/internal/build"
	"github.com/specialistvlad/burstmake/internal/ctxlog"
	"github.com/specialistvlad/burstmake/internal/graph"
	"github.com/specialistvlad/burstmake/internal/watch"
)

// ErrCyclesFound is returned by a lint run that found dependency cycles.
var ErrCyclesFound = errors.New("dependency cycles found")

// Run executes one invocation: a build, a watch loop, or one of the static
// analyses. The Result is nil for analyses and watch mode.
func (a *App) Run(ctx context.Context) (*build.Result, error) {
	ctx = a.context(ctx)

	switch {
	case a.config.Watch:
		return nil, a.watch(ctx)
	case a.config.PrintDOT || a.config.Lint:
		return nil, a.analyse(ctx)
	default:
		res, _, err := a.buildOnce(ctx)
		return res, err
	}
}

// buildOnce loads a fresh graph and builds the requested target.
func (a *App) buildOnce(ctx context.Context) (*build.Result, *graph.Graph, error) {
	logger := ctxlog.FromContext(ctx)

	g, model, err := a.loadGraph(ctx)
	if err != nil {
		return nil, nil, err
	}

	target := a.config.Target
	if target == "" {
		target = model.DefaultTarget()
	}
	if target == "" {
		return nil, g, ErrNoTargets
	}

	logger.Info("🚀 Starting build.", "target", target)
	b := build.New(g, a.fs, a.exec, build.Options{StrictCycles: a.config.StrictCycles})
	res, err := b.Build(ctx, target)
	if err != nil {
		return res, g, err
	}

	if res.Status == build.UpToDate {
		fmt.Fprintf(a.outW, "%s is up to date.\n", target)
	}
	logger.Info("🏁 Build finished.", "target", target, "status", res.Status.String(), "rebuilt", len(res.Rebuilt), "cycles", len(res.Cycles))
	return res, g, nil
}

func (a *App) analyse(ctx context.Context) error {
	g, _, err := a.loadGraph(ctx)
	if err != nil {
		return err
	}

	if a.config.PrintDOT {
		return analysis.WriteDOT(a.outW, g)
	}

	cycles, err := analysis.Cycles(g)
	if err != nil {
		return err
	}
	if len(cycles) == 0 {
		fmt.Fprintln(a.outW, "No dependency cycles found.")
		return nil
	}
	for _, c := range cycles {
		fmt.Fprintf(a.outW, "Dependency cycle: %s\n", strings.Join(c, ", "))
	}
	return fmt.Errorf("%w: %d", ErrCyclesFound, len(cycles))
}

func (a *App) watch(ctx context.Context) error {
	var last *graph.Graph

	paths := func() []string {
		out := []string{a.buildFile()}
		if last == nil {
			return out
		}
		for _, v := range last.Vertices() {
			out = append(out, a.fs.Path(v.Name))
		}
		return out
	}
	rebuild := func(ctx context.Context) error {
		_, g, err := a.buildOnce(ctx)
		if g != nil {
			last = g
		}
		return err
	}

	w := &watch.Watcher{}
	return w.Run(ctx, paths, rebuild)
}
