// Package yaml_adapter loads build descriptions written in YAML:
//
//	targets:
//	  - name: app
//	    depends_on: [main.o]
//	    commands: ["cc -o app main.o"]
package yaml_adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/specialistvlad/burstmake/internal/config"
	"github.com/specialistvlad/burstmake/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// Loader implements config.Loader for YAML files.
type Loader struct{}

// NewLoader creates a new YAML loader.
func NewLoader() *Loader {
	return &Loader{}
}

type fileRoot struct {
	Targets []*target `yaml:"targets"`
}

type target struct {
	Name      string   `yaml:"name"`
	DependsOn []string `yaml:"depends_on,omitempty"`
	Commands  []string `yaml:"commands,omitempty"`

	line int
}

// UnmarshalYAML records the source line of each target for error messages.
func (t *target) UnmarshalYAML(node *yaml.Node) error {
	type plain target
	var p plain
	if err := decodeStrict(node, &p); err != nil {
		return err
	}
	*t = target(p)
	t.line = node.Line
	return nil
}

// decodeStrict decodes node and rejects unknown fields, which Node.Decode
// alone does not do.
func decodeStrict(node *yaml.Node, out any) error {
	if node.Kind == yaml.MappingNode {
		allowed := map[string]bool{"name": true, "depends_on": true, "commands": true}
		for i := 0; i < len(node.Content); i += 2 {
			key := node.Content[i]
			if !allowed[key.Value] {
				return fmt.Errorf("line %d: field %s not found in target", key.Line, key.Value)
			}
		}
	}
	return node.Decode(out)
}

// Load reads the YAML build description at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var root fileRoot
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}

	m := &config.Model{}
	for i, t := range root.Targets {
		if t == nil || t.Name == "" {
			line := 0
			if t != nil {
				line = t.line
			}
			return nil, &config.ParseError{File: path, Line: line, Msg: fmt.Sprintf("target #%d has no name", i+1)}
		}
		if slices.Contains(t.DependsOn, "") {
			return nil, &config.ParseError{File: path, Line: t.line, Msg: fmt.Sprintf("target %q has an empty dependency", t.Name)}
		}
		m.Rules = append(m.Rules, &config.Rule{
			Target:       t.Name,
			Dependencies: t.DependsOn,
			Commands:     t.Commands,
			Origin:       fmt.Sprintf("%s:%d", path, t.line),
		})
	}

	logger.Debug("YAML loading complete.", "rules", len(m.Rules))
	return m, nil
}
