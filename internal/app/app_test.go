package app

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/specialistvlad/burstmake/internal/build"
	"github.com/specialistvlad/burstmake/internal/config"
	"github.com/specialistvlad/burstmake/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// harness runs the App against a temporary workspace.
type harness struct {
	ws   *testutil.Workspace
	exec *testutil.RecordingExecutor
	out  *bytes.Buffer
	logs *testutil.SafeBuffer
}

func newHarness(t *testing.T, files map[string]string) *harness {
	t.Helper()
	ws := testutil.NewWorkspace(t)
	for name, content := range files {
		ws.Write(name, content)
	}
	return &harness{
		ws:   ws,
		exec: testutil.NewRecordingExecutor(ws),
		out:  &bytes.Buffer{},
		logs: &testutil.SafeBuffer{},
	}
}

// run builds with the recording executor unless real is set.
func (h *harness) run(t *testing.T, cfg Config, real bool) (*build.Result, error) {
	t.Helper()
	cfg.Dir = h.ws.Dir
	cfg.LogLevel = "debug"
	cfg.LogFormat = "text"
	c, err := NewConfig(cfg)
	require.NoError(t, err)

	var opts []Option
	if !real {
		opts = append(opts, WithExecutor(h.exec))
	}
	return NewApp(h.out, h.logs, c, opts...).Run(context.Background())
}

const appAndUtil = "app: util\n\ttouch app\nutil:\n\ttouch util\n"

func TestRun_RealShellBuildThenUpToDate(t *testing.T) {
	h := newHarness(t, map[string]string{"myMakefile": appAndUtil})

	res, err := h.run(t, Config{}, true)
	require.NoError(t, err)
	assert.Equal(t, build.Rebuilt, res.Status)
	assert.Equal(t, "touch util\ntouch app\n", h.out.String())
	assert.True(t, h.ws.Exists("app"))
	assert.True(t, h.ws.Exists("util"))

	h.out.Reset()
	res, err = h.run(t, Config{}, true)
	require.NoError(t, err)
	assert.Equal(t, build.UpToDate, res.Status)
	assert.Equal(t, "app is up to date.\n", h.out.String())
}

func TestRun_RealShellFailureStopsBuild(t *testing.T) {
	h := newHarness(t, map[string]string{"myMakefile": "app:\n\texit 1\n\ttouch app\n"})

	res, err := h.run(t, Config{}, true)

	require.ErrorIs(t, err, build.ErrCommandFailure)
	assert.Equal(t, build.Failed, res.Status)
	assert.False(t, h.ws.Exists("app"))
}

func TestRun_ExplicitTarget(t *testing.T) {
	h := newHarness(t, map[string]string{"myMakefile": appAndUtil})

	res, err := h.run(t, Config{Target: "util"}, false)

	require.NoError(t, err)
	assert.Equal(t, "util", res.Target)
	assert.Equal(t, []string{"touch util"}, h.exec.Calls())
}

func TestRun_CustomBuildFileFormats(t *testing.T) {
	tests := []struct {
		name string
		file string
		src  string
	}{
		{name: "rule file", file: "rules.mk", src: appAndUtil},
		{name: "hcl", file: "build.hcl", src: `
target "app" {
  depends_on = ["util"]
  commands   = "touch app"
}
target "util" {
  commands = ["touch util"]
}
`},
		{name: "yaml", file: "build.yaml", src: `targets:
  - name: app
    depends_on: [util]
    commands: [touch app]
  - name: util
    commands: [touch util]
`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, map[string]string{tc.file: tc.src})

			res, err := h.run(t, Config{BuildFile: tc.file}, false)

			require.NoError(t, err)
			assert.Equal(t, build.Rebuilt, res.Status)
			assert.Equal(t, []string{"touch util", "touch app"}, h.exec.Calls())
		})
	}
}

func TestRun_MissingPrerequisite(t *testing.T) {
	h := newHarness(t, map[string]string{"myMakefile": "app: main.o\n\ttouch app\n"})

	res, err := h.run(t, Config{}, false)

	require.ErrorIs(t, err, build.ErrMissingPrerequisite)
	assert.ErrorContains(t, err, "main.o")
	assert.Equal(t, build.Failed, res.Status)
}

func TestRun_EmptyDependencyIsRejected(t *testing.T) {
	h := newHarness(t, map[string]string{"build.yaml": `targets:
  - name: app
    depends_on: [""]
    commands: [touch app]
`})

	_, err := h.run(t, Config{BuildFile: "build.yaml"}, false)

	var pErr *config.ParseError
	require.True(t, errors.As(err, &pErr))
	assert.Contains(t, pErr.Msg, "empty dependency")
	assert.Empty(t, h.exec.Calls())
	assert.False(t, h.ws.Exists("app"))
}

func TestRun_UnknownTarget(t *testing.T) {
	h := newHarness(t, map[string]string{"myMakefile": appAndUtil})

	_, err := h.run(t, Config{Target: "install"}, false)

	assert.ErrorIs(t, err, build.ErrUnknownTarget)
}

func TestRun_MissingBuildFile(t *testing.T) {
	h := newHarness(t, nil)

	_, err := h.run(t, Config{}, false)

	assert.ErrorContains(t, err, "failed to load build file")
}

func TestRun_EmptyBuildFile(t *testing.T) {
	h := newHarness(t, map[string]string{"myMakefile": "\n# nothing here\n"})

	_, err := h.run(t, Config{}, false)

	assert.ErrorIs(t, err, ErrNoTargets)
}

func TestRun_CycleIsReportedAndBuildContinues(t *testing.T) {
	h := newHarness(t, map[string]string{"myMakefile": "a: b\n\ttouch a\nb: a\n\ttouch b\n"})

	res, err := h.run(t, Config{}, false)

	require.NoError(t, err)
	assert.Len(t, res.Cycles, 1)
	assert.Contains(t, h.logs.String(), "Dependency cycle found.")

	_, err = h.run(t, Config{StrictCycles: true}, false)
	assert.ErrorIs(t, err, build.ErrDependencyCycle)
}

func TestRun_DuplicateDependencyIsLogged(t *testing.T) {
	h := newHarness(t, map[string]string{"myMakefile": "app: util util\n\ttouch app\nutil:\n\ttouch util\n"})

	_, err := h.run(t, Config{}, false)

	require.NoError(t, err)
	assert.Contains(t, h.logs.String(), "Ignoring duplicate dependency.")
}

func TestRun_DryRun(t *testing.T) {
	h := newHarness(t, map[string]string{"myMakefile": appAndUtil})

	res, err := h.run(t, Config{DryRun: true}, true)

	require.NoError(t, err)
	assert.Equal(t, build.Rebuilt, res.Status)
	assert.Equal(t, "touch util\ntouch app\n", h.out.String())
	assert.False(t, h.ws.Exists("app"))
}

func TestRun_PrintDOT(t *testing.T) {
	h := newHarness(t, map[string]string{"myMakefile": appAndUtil})

	res, err := h.run(t, Config{PrintDOT: true}, false)

	require.NoError(t, err)
	assert.Nil(t, res)
	assert.Contains(t, h.out.String(), `"app" -> "util"`)
	assert.Empty(t, h.exec.Calls())
}

func TestRun_Lint(t *testing.T) {
	h := newHarness(t, map[string]string{"myMakefile": "a: b\nb: c\nc: a\nok:\n"})

	_, err := h.run(t, Config{Lint: true}, false)

	assert.ErrorIs(t, err, ErrCyclesFound)
	assert.Contains(t, h.out.String(), "Dependency cycle: a, b, c")

	h2 := newHarness(t, map[string]string{"myMakefile": appAndUtil})
	_, err = h2.run(t, Config{Lint: true}, false)
	require.NoError(t, err)
	assert.Contains(t, h2.out.String(), "No dependency cycles found.")
}

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(Config{})
	require.NoError(t, err)
	assert.Equal(t, DefaultBuildFile, cfg.BuildFile)

	_, err = NewConfig(Config{PrintDOT: true, Lint: true})
	assert.Error(t, err)
	_, err = NewConfig(Config{Watch: true, Lint: true})
	assert.Error(t, err)
	_, err = NewConfig(Config{Watch: true, DryRun: true})
	assert.Error(t, err)
}
