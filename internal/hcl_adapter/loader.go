// Package hcl_adapter loads build descriptions written in HCL:
//
//	target "app" {
//	  depends_on = ["main.o", "util.o"]
//	  commands   = ["cc -o app main.o util.o"]
//	}
//
// `commands` may also be a single string. A directory path loads every .hcl
// file below it in lexical order.
package hcl_adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/burstmake/internal/config"
	"github.com/specialistvlad/burstmake/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// rootSchema accepts only `target "<name>" { ... }` blocks at the top level.
var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "target", LabelNames: []string{"name"}},
	},
}

// targetBody is the decoded content of one target block.
type targetBody struct {
	DependsOn []string       `hcl:"depends_on,optional"`
	Commands  hcl.Expression `hcl:"commands,optional"`
}

// Load parses the HCL file or directory at path into the model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	files, err := l.findAllHCLFiles(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		content, diags := hclFile.Body.Content(rootSchema)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range content.Blocks {
			rule, err := l.translateTarget(ctx, block)
			if err != nil {
				return nil, err
			}
			model.Rules = append(model.Rules, rule)
		}
	}

	logger.Debug("HCL loading complete.", "rules", len(model.Rules))
	return model, nil
}

func (l *Loader) translateTarget(ctx context.Context, block *hcl.Block) (*config.Rule, error) {
	name := block.Labels[0]
	origin := fmt.Sprintf("%s:%d", block.DefRange.Filename, block.DefRange.Start.Line)
	if name == "" {
		return nil, &config.ParseError{File: block.DefRange.Filename, Line: block.DefRange.Start.Line, Msg: "target name must not be empty"}
	}

	var body targetBody
	if diags := gohcl.DecodeBody(block.Body, nil, &body); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode target %q at %s: %w", name, origin, diags)
	}

	if slices.Contains(body.DependsOn, "") {
		return nil, &config.ParseError{File: block.DefRange.Filename, Line: block.DefRange.Start.Line, Msg: fmt.Sprintf("target %q has an empty dependency", name)}
	}

	commands, err := decodeCommands(ctx, body.Commands, name)
	if err != nil {
		return nil, fmt.Errorf("target %q at %s: %w", name, origin, err)
	}

	return &config.Rule{
		Target:       name,
		Dependencies: body.DependsOn,
		Commands:     commands,
		Origin:       origin,
	}, nil
}

// findAllHCLFiles returns path itself for a file, or every .hcl file below a directory.
func (l *Loader) findAllHCLFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(p) == ".hcl" {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
