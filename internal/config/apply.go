package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/burstmake/internal/ctxlog"
	"github.com/specialistvlad/burstmake/internal/graph"
)

// Apply replays every rule of the model into d: the target first, then each
// dependency, then each command. Redundant dependencies are logged and
// skipped; any other declaration error aborts.
func Apply(ctx context.Context, m *Model, d Declarer) error {
	logger := ctxlog.FromContext(ctx)

	for _, r := range m.Rules {
		if err := d.DeclareTarget(r.Target); err != nil {
			return fmt.Errorf("%s: %w", r.Origin, err)
		}
		for _, dep := range r.Dependencies {
			err := d.DeclareDependency(r.Target, dep)
			if errors.Is(err, graph.ErrDuplicateEdge) {
				logger.Warn("Ignoring duplicate dependency.", "target", r.Target, "dependency", dep, "origin", r.Origin)
				continue
			}
			if err != nil {
				return fmt.Errorf("%s: %w", r.Origin, err)
			}
		}
		for _, cmd := range r.Commands {
			if err := d.DeclareCommand(r.Target, cmd); err != nil {
				return fmt.Errorf("%s: %w", r.Origin, err)
			}
		}
	}

	logger.Debug("Build description applied.", "rules", len(m.Rules))
	return nil
}
