package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/burstmake/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, exit, err := Parse(nil, &bytes.Buffer{})

	require.NoError(t, err)
	assert.False(t, exit)
	want := &app.Config{
		BuildFile: app.DefaultBuildFile,
		LogFormat: "text",
		LogLevel:  "info",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_AllFlags(t *testing.T) {
	args := []string{
		"-f", "build.hcl", "-C", "/src", "-n", "-strict-cycles",
		"-log-format", "JSON", "-log-level", "Debug", "app",
	}

	cfg, exit, err := Parse(args, &bytes.Buffer{})

	require.NoError(t, err)
	assert.False(t, exit)
	want := &app.Config{
		BuildFile:    "build.hcl",
		Target:       "app",
		Dir:          "/src",
		LogFormat:    "json",
		LogLevel:     "debug",
		DryRun:       true,
		StrictCycles: true,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, exit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "-strict-cycles")
}

func TestParse_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown flag", args: []string{"-bogus"}, want: "flag provided but not defined"},
		{name: "two targets", args: []string{"app", "util"}, want: "expected at most one target"},
		{name: "bad log format", args: []string{"-log-format", "xml"}, want: "invalid log-format"},
		{name: "bad log level", args: []string{"-log-level", "loud"}, want: "invalid log-level"},
		{name: "dot with lint", args: []string{"-dot", "-lint"}, want: "cannot be combined"},
		{name: "watch with dry run", args: []string{"-watch", "-n"}, want: "cannot be combined"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, exit, err := Parse(tc.args, &bytes.Buffer{})

			require.Error(t, err)
			assert.False(t, exit)
			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.want)
		})
	}
}
