// Package makefile reads the line-oriented rule format:
//
//	# comment
//	app: main.o util.o
//		cc -o app main.o util.o
//
// A rule line names exactly one target before a single ':' separator and any
// number of whitespace-separated dependencies after it. Lines that start with
// a TAB are commands of the most recent rule.
package makefile

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/specialistvlad/burstmake/internal/config"
	"github.com/specialistvlad/burstmake/internal/ctxlog"
)

// Loader implements config.Loader for rule files.
type Loader struct{}

// NewLoader creates a new rule file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load opens and parses the rule file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Rule file loader started.", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Parse(path, f)
	if err != nil {
		return nil, err
	}
	logger.Debug("Rule file parsed.", "path", path, "rules", len(m.Rules))
	return m, nil
}

// Parse reads rules from r. name is only used in error messages and origins.
func Parse(name string, r io.Reader) (*config.Model, error) {
	m := &config.Model{}
	var current *config.Rule

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		if strings.TrimSpace(line) == "" {
			continue
		}

		if strings.HasPrefix(line, "\t") {
			if current == nil {
				return nil, &config.ParseError{File: name, Line: lineNo, Msg: "command precedes the first target"}
			}
			current.Commands = append(current.Commands, line[1:])
			continue
		}

		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}

		rule, err := parseRule(line)
		if err != nil {
			return nil, &config.ParseError{File: name, Line: lineNo, Msg: err.Error()}
		}
		rule.Origin = fmt.Sprintf("%s:%d", name, lineNo)
		m.Rules = append(m.Rules, rule)
		current = rule
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return m, nil
}

func parseRule(line string) (*config.Rule, error) {
	head, deps, found := strings.Cut(line, ":")
	if !found {
		return nil, fmt.Errorf("missing separator in %q", line)
	}
	if strings.Contains(deps, ":") {
		return nil, fmt.Errorf("multiple separators in %q", line)
	}

	names := strings.Fields(head)
	if len(names) != 1 {
		return nil, fmt.Errorf("illegal target %q", strings.TrimSpace(head))
	}

	return &config.Rule{
		Target:       names[0],
		Dependencies: strings.Fields(deps),
	}, nil
}
