package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/factorgraph/internal/config"
	"github.com/katalvlaran/factorgraph/linear"
	"github.com/katalvlaran/factorgraph/mrf"
)

// execute runs the root command with args and captures stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--env-file="}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "mrfgen", cmd.Use)
	assert.Contains(t, cmd.Long, "factor graphs")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"generate", "inspect"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err, "Command %s should exist", name)
			require.NotNil(t, sub)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	level := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, level)
	assert.Equal(t, "info", level.DefValue)

	format := cmd.PersistentFlags().Lookup("log-format")
	require.NotNil(t, format)
	assert.Equal(t, "console", format.DefValue)

	env := cmd.PersistentFlags().Lookup("env-file")
	require.NotNil(t, env)
	assert.Equal(t, ".env", env.DefValue)
}

func TestGenerateCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	gen, _, err := cmd.Find([]string{"generate"})
	require.NoError(t, err)

	for name, def := range map[string]string{
		"rows":             "3",
		"cols":             "3",
		"sigma":            "0.5",
		"smoothness-sigma": "0.5",
		"seed":             "42",
		"scheme":           "letters",
		"format":           "text",
		"out":              "",
	} {
		fl := gen.Flags().Lookup(name)
		require.NotNil(t, fl, name)
		assert.Equal(t, def, fl.DefValue, name)
	}
	assert.Equal(t, "o", gen.Flags().Lookup("out").Shorthand)
}

func TestGenerate_Text(t *testing.T) {
	out, _, err := execute(t, "generate", "--rows", "2", "--cols", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "denoising MRF 2x2 (letters) sigma=0.5 smoothness=0.5 seed=42")
	assert.Contains(t, out, "rows: a b\n")
	assert.Contains(t, out, "GaussianFactorGraph (8 factors)")
}

func TestGenerate_JSON(t *testing.T) {
	out, _, err := execute(t, "generate", "-m", "2", "-n", "3", "--format", "json", "--seed", "7")
	require.NoError(t, err)

	g, err := linear.ReadJSON(strings.NewReader(out))
	require.NoError(t, err)
	want, _, err := mrf.DenoisingMRF(2, 3, mrf.WithSeed(7))
	require.NoError(t, err)
	assert.True(t, want.Equal(g, 1e-12))
}

func TestGenerate_DOT(t *testing.T) {
	out, _, err := execute(t, "generate", "--rows", "2", "--cols", "2", "-f", "dot")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph MRF {\n"))
	assert.Contains(t, out, `  "b2" -- "a2";`)
}

func TestGenerate_EnvOverride(t *testing.T) {
	t.Setenv("MRF_ROWS", "3")
	t.Setenv("MRF_COLS", "5")
	out, _, err := execute(t, "generate", "--cols", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "denoising MRF 3x1")
	assert.Contains(t, out, "rows: a b c\n")
}

func TestGenerate_Numbered(t *testing.T) {
	out, _, err := execute(t, "generate", "--rows", "30", "--cols", "1", "--scheme", "numbered")
	require.NoError(t, err)
	assert.Contains(t, out, "GaussianFactorGraph (59 factors)")
}

func TestGenerate_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		code int
		want error
	}{
		{"zero rows", []string{"--rows", "0"}, ExitUsage, config.ErrInvalidRows},
		{"bad format", []string{"--format", "xml"}, ExitUsage, config.ErrInvalidFormat},
		{"bad scheme", []string{"--scheme", "roman"}, ExitUsage, config.ErrInvalidScheme},
		{"too many letter rows", []string{"--rows", "27"}, ExitFailed, mrf.ErrTooManyRows},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, append([]string{"generate"}, tc.args...)...)
			require.ErrorIs(t, err, tc.want)
			assert.Equal(t, tc.code, ExitCode(err))
		})
	}
}

func TestInvalidLogFlags(t *testing.T) {
	_, _, err := execute(t, "--log-level", "trace", "generate")
	require.ErrorIs(t, err, config.ErrInvalidLogLevel)
	assert.Equal(t, ExitUsage, ExitCode(err))

	_, _, err = execute(t, "--log-format", "xml", "generate")
	require.ErrorIs(t, err, config.ErrInvalidLogFormat)
}

func TestGenerate_DebugLog(t *testing.T) {
	_, errOut, err := execute(t, "--log-level", "debug", "--log-format", "json", "generate", "--rows", "2", "--cols", "2")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"message":"denoising MRF built"`)
	assert.Contains(t, errOut, `"message":"graph written"`)
}

func TestLogSettingsFromEnv(t *testing.T) {
	t.Run("level", func(t *testing.T) {
		t.Setenv("MRF_LOG_LEVEL", "debug")
		_, errOut, err := execute(t, "generate", "--rows", "1", "--cols", "1")
		require.NoError(t, err)
		assert.Contains(t, errOut, "DBG")
		assert.Contains(t, errOut, "denoising MRF built")
	})

	t.Run("bogus format", func(t *testing.T) {
		t.Setenv("MRF_LOG_FORMAT", "bogus")
		_, _, err := execute(t, "generate", "--rows", "1", "--cols", "1")
		require.ErrorIs(t, err, config.ErrInvalidLogFormat)
		assert.Equal(t, ExitUsage, ExitCode(err))
	})

	t.Run("bogus level", func(t *testing.T) {
		t.Setenv("MRF_LOG_LEVEL", "loud")
		_, _, err := execute(t, "inspect", "missing.json")
		require.ErrorIs(t, err, config.ErrInvalidLogLevel)
		assert.Equal(t, ExitUsage, ExitCode(err))
	})

	t.Run("flags win", func(t *testing.T) {
		t.Setenv("MRF_LOG_LEVEL", "debug")
		t.Setenv("MRF_LOG_FORMAT", "bogus")
		_, errOut, err := execute(t, "--log-level", "warn", "--log-format", "json", "generate", "--rows", "1", "--cols", "1")
		require.NoError(t, err)
		assert.Empty(t, errOut)
	})

	t.Run("unparsable env", func(t *testing.T) {
		t.Setenv("MRF_ROWS", "three")
		_, _, err := execute(t, "generate")
		require.Error(t, err)
		assert.Equal(t, ExitUsage, ExitCode(err))
	})
}

func TestGenerate_OutFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "mrf.dot")
	out, _, err := execute(t, "generate", "--rows", "2", "--cols", "2", "-f", "dot", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "graph MRF {\n"))

	_, _, err = execute(t, "generate", "-o", filepath.Join(dir, "no", "such", "dir", "mrf.txt"))
	require.Error(t, err)
	assert.Equal(t, ExitFailed, ExitCode(err))
}

func TestWriteFile_RemovesPartialOutput(t *testing.T) {
	p, err := mrf.NewDenoisingProblem(1, 1)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "mrf.xml")
	err = writeFile(path, p, "xml")
	require.ErrorIs(t, err, config.ErrInvalidFormat)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "failed output must not be left behind")

	path = filepath.Join(t.TempDir(), "mrf.json")
	require.NoError(t, writeFile(path, p, "json"))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	g, err := linear.ReadJSON(f)
	require.NoError(t, err)
	assert.True(t, p.Graph.Equal(g, 1e-12))
}

func TestInspect_DebugLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mrf.json")
	_, _, err := execute(t, "generate", "--rows", "2", "--cols", "2", "--format", "json", "--out", path)
	require.NoError(t, err)

	_, errOut, err := execute(t, "--log-level", "debug", "inspect", path)
	require.NoError(t, err)
	assert.Contains(t, errOut, "DBG")
	assert.Contains(t, errOut, "graph loaded")
	assert.Contains(t, errOut, "factors=8")
}

func TestGenerateThenInspect(t *testing.T) {
	for _, ext := range []string{"json", "yaml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "mrf."+ext)
			_, _, err := execute(t, "generate", "--rows", "2", "--cols", "2", "--format", ext, "--out", path)
			require.NoError(t, err)

			out, _, err := execute(t, "inspect", path)
			require.NoError(t, err)
			assert.Equal(t, "factors: 8\nvariables: 4\nkeys: a1 a2 b1 b2\njacobian: 8x4\n", out)
		})
	}
}

func TestInspect_Errors(t *testing.T) {
	_, _, err := execute(t, "inspect", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Equal(t, ExitUsage, ExitCode(err))

	_, _, err = execute(t, "inspect", "--input-format", "toml", "x.toml")
	require.Error(t, err)
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "warn", "json")
	require.NoError(t, err)
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"level":"warn"`)

	buf.Reset()
	logger, err = NewLogger(&buf, "debug", "console")
	require.NoError(t, err)
	logger.Debug().Int("factors", 8).Msg("built")
	assert.Contains(t, buf.String(), "built")
	assert.Contains(t, buf.String(), "factors=8")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitFailed, ExitCode(assert.AnError))
	assert.Equal(t, ExitUsage, ExitCode(fail(ExitUsage, "bad", nil)))
	assert.Equal(t, "bad", fail(ExitUsage, "bad", nil).Error())

	err := fmt.Errorf("outer: %w", fail(ExitFailed, "write output", assert.AnError))
	assert.Equal(t, ExitFailed, ExitCode(err))
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, "outer: write output: "+assert.AnError.Error(), err.Error())
}
