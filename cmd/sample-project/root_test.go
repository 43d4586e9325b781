package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hgo124578/sample-project/internal/browserctx"
)

func TestRootCmd_Subcommands(t *testing.T) {
	rootCmd := newRootCmd()

	for _, name := range []string{"serve", "measure", "install"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestMeasureCmd_Defaults(t *testing.T) {
	t.Setenv("E2E_BASE_URL", "")

	cmd := newMeasureCmd()

	baseURL, err := cmd.Flags().GetString("base-url")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", baseURL)

	rounds, err := cmd.Flags().GetInt("rounds")
	require.NoError(t, err)
	assert.Equal(t, 5, rounds)

	restart, err := cmd.Flags().GetBool("restart-browser")
	require.NoError(t, err)
	assert.True(t, restart)

	headless, err := cmd.Flags().GetBool("headless")
	require.NoError(t, err)
	assert.True(t, headless)
}

func TestMeasureCmd_InvalidEnvironment(t *testing.T) {
	t.Setenv("E2E_VIEWPORT", "bogus")

	cmd := newMeasureCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, browserctx.ErrInvalidViewport)
}

func TestMeasureFlags_Resolve(t *testing.T) {
	cfg := browserctx.Config{BaseURL: "http://app.test:8080", Headless: false}

	t.Run("environment fills unset flags", func(t *testing.T) {
		cmd := newMeasureCmd()
		require.NoError(t, cmd.ParseFlags(nil))
		flags := &measureFlags{baseURL: defaultBaseURL, headless: true}

		flags.resolve(cmd, cfg)

		assert.Equal(t, "http://app.test:8080", flags.baseURL)
		assert.False(t, flags.headless)
	})

	t.Run("command line wins", func(t *testing.T) {
		cmd := newMeasureCmd()
		require.NoError(t, cmd.ParseFlags([]string{"--base-url", "http://localhost:4000", "--headless=true"}))
		flags := &measureFlags{baseURL: "http://localhost:4000", headless: true}

		flags.resolve(cmd, cfg)

		assert.Equal(t, "http://localhost:4000", flags.baseURL)
		assert.True(t, flags.headless)
	})
}

func TestNewLogger_FansOutToFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "sample-project.log")
	var stderr bytes.Buffer

	logger, closer, err := newLogger(&stderr, &globalFlags{logFile: logFile})
	require.NoError(t, err)

	logger.Info("Starting server", "addr", ":3000")
	logger.Debug("Served request", "path", "/demo")
	require.NoError(t, closer())

	assert.Contains(t, stderr.String(), "Starting server")
	assert.NotContains(t, stderr.String(), "Served request", "debug is only written to the file")

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"Starting server"`)
	assert.Contains(t, string(content), `"msg":"Served request"`)
}
