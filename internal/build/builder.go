package build

import (
	"context"
	"time"

	"github.com/specialistvlad/burstmake/internal/ctxlog"
	"github.com/specialistvlad/burstmake/internal/executor"
	"github.com/specialistvlad/burstmake/internal/fsutil"
	"github.com/specialistvlad/burstmake/internal/graph"
	"github.com/specialistvlad/burstmake/internal/vertex"
)

// Options tune traversal behaviour.
type Options struct {
	// StrictCycles turns a detected dependency cycle into a fatal error.
	StrictCycles bool
}

// Builder drives builds over a single dependency graph.
type Builder struct {
	graph *graph.Graph
	fs    fsutil.Stater
	exec  executor.Executor
	opts  Options
}

// New creates a builder for g that inspects files through fs and runs commands through exec.
func New(g *graph.Graph, fs fsutil.Stater, exec executor.Executor, opts Options) *Builder {
	return &Builder{graph: g, fs: fs, exec: exec, opts: opts}
}

// Build resets the graph's traversal state and brings target up to date.
// The returned Result is never nil; on error its Status is Failed and it
// describes the work done before the build was aborted.
func (b *Builder) Build(ctx context.Context, target string) (*Result, error) {
	ctx = ctxlog.With(ctx, "build", target)
	logger := ctxlog.FromContext(ctx)

	res := &Result{Target: target, Status: Failed}

	start, ok := b.graph.Vertex(target)
	if !ok {
		return res, &Error{Kind: ErrUnknownTarget, Vertex: target}
	}

	b.graph.ResetTraversalState()
	logger.Debug("Traversal state reset.", "vertices", b.graph.Len())

	t := &traversal{Builder: b, res: res}
	if err := t.visit(ctx, start); err != nil {
		logger.Debug("Build aborted.", "error", err)
		return res, err
	}

	res.Status = UpToDate
	if len(res.Rebuilt) > 0 {
		res.Status = Rebuilt
	}
	logger.Debug("Build finished.", "status", res.Status.String(), "rebuilt", len(res.Rebuilt))
	return res, nil
}

// traversal holds the bookkeeping of one Build call.
type traversal struct {
	*Builder
	res *Result
}

func (t *traversal) visit(ctx context.Context, v *vertex.Vertex) error {
	logger := ctxlog.FromContext(ctx)

	if v.Visited {
		return nil
	}
	v.Visited = true

	if err := t.stat(v); err != nil {
		return err
	}
	hadFile := v.FileExists
	logger.Debug("Entered vertex.", "vertex", v.Name, "exists", v.FileExists, "target", v.IsTarget)

	if !v.FileExists {
		if !v.IsTarget {
			return &Error{Kind: ErrMissingPrerequisite, Vertex: v.Name}
		}
		v.ToBuild = true
	}

	for _, dep := range v.Dependencies {
		if err := t.visit(ctx, dep); err != nil {
			return err
		}

		if !dep.Processed {
			logger.Warn("Dependency cycle found.", "vertex", v.Name, "dependency", dep.Name)
			t.res.Cycles = append(t.res.Cycles, Cycle{From: v.Name, To: dep.Name})
			if t.opts.StrictCycles {
				return &Error{Kind: ErrDependencyCycle, Vertex: dep.Name}
			}
			continue
		}

		if !v.ToBuild && (dep.ToBuild || !dep.FileExists || dep.ModTime.After(v.ModTime)) {
			logger.Debug("Vertex is stale.", "vertex", v.Name, "because", dep.Name)
			v.ToBuild = true
		}
	}

	if v.ToBuild {
		if err := t.rebuild(ctx, v); err != nil {
			return err
		}
		if len(v.Commands) > 0 || !hadFile {
			t.res.Rebuilt = append(t.res.Rebuilt, v.Name)
		}
	}

	v.Processed = true
	t.res.Order = append(t.res.Order, v.Name)
	return nil
}

// rebuild runs the vertex's commands in order, stopping at the first failure,
// and refreshes the recorded file state afterwards.
func (t *traversal) rebuild(ctx context.Context, v *vertex.Vertex) error {
	logger := ctxlog.FromContext(ctx)
	logger.Info("🔨 Building target.", "vertex", v.Name, "commands", len(v.Commands))

	for _, cmd := range v.Commands {
		if err := t.exec.Run(ctx, cmd); err != nil {
			return &Error{Kind: ErrCommandFailure, Vertex: v.Name, Command: cmd, Err: err}
		}
	}
	return t.stat(v)
}

func (t *traversal) stat(v *vertex.Vertex) error {
	info, err := t.fs.Stat(v.Name)
	if err != nil {
		return &Error{Vertex: v.Name, Err: err}
	}
	v.FileExists = info.Exists
	v.ModTime = time.Time{}
	if info.Exists {
		v.ModTime = info.ModTime
	}
	return nil
}
