package executor

import (
	"context"
	"fmt"
	"io"
)

// DryRun prints commands instead of running them.
type DryRun struct {
	Out io.Writer
}

// Run implements Executor.
func (d *DryRun) Run(_ context.Context, command string) error {
	_, err := fmt.Fprintln(d.Out, command)
	return err
}
