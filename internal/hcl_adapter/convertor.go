package hcl_adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/burstmake/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// decodeCommands evaluates a `commands` attribute. Both a single string and a
// list of strings are accepted; an omitted or null attribute yields no commands.
func decodeCommands(ctx context.Context, expr hcl.Expression, target string) ([]string, error) {
	if !isExprDefined(ctx, expr, "commands") {
		return nil, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, errors.New("commands must be known at load time")
	}

	if val.Type() == cty.String {
		return []string{val.AsString()}, nil
	}

	list, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("commands must be a string or a list of strings: %w", err)
	}

	var commands []string
	if err := gocty.FromCtyValue(list, &commands); err != nil {
		return nil, fmt.Errorf("commands: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("Decoded commands.", "target", target, "count", len(commands))
	return commands, nil
}
