package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/configuron/internal/overrides"
	"github.com/lixenwraith/configuron/internal/render"
	"github.com/lixenwraith/configuron/internal/sample"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

// TestShow tests printing the sample configuration
func TestShow(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		out, err := execute(t, "show", "--format", "flat")
		require.NoError(t, err)
		assert.Contains(t, out, "host = localhost\n")
		assert.Contains(t, out, "port = 8080\n")
		assert.Contains(t, out, "limits.burst = 50\n")
	})

	t.Run("WithOverrides", func(t *testing.T) {
		out, err := execute(t, "show", "-f", "yaml",
			"--set", "port=9000",
			"--set", "limits.rps=1.5",
			"--set", "tags=a,b",
		)
		require.NoError(t, err)

		var cfg sample.Config
		require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
		assert.Equal(t, 9000, cfg.Port)
		assert.Equal(t, 1.5, cfg.Limits.RPS)
		assert.Equal(t, []string{"a", "b"}, cfg.Tags)
		assert.Equal(t, "localhost", cfg.Host)
	})

	t.Run("OverridesDoNotLeakBetweenRuns", func(t *testing.T) {
		_, err := execute(t, "show", "--set", "port=1")
		require.NoError(t, err)

		out, err := execute(t, "show", "-f", "flat")
		require.NoError(t, err)
		assert.Contains(t, out, "port = 8080\n")
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		_, err := execute(t, "show", "--format", "ini")
		assert.ErrorIs(t, err, render.ErrUnknownFormat)
	})

	t.Run("MalformedOverride", func(t *testing.T) {
		_, err := execute(t, "show", "--set", "port")
		assert.ErrorIs(t, err, overrides.ErrMalformed)
	})

	t.Run("UnknownKey", func(t *testing.T) {
		_, err := execute(t, "show", "--set", "missing=1")
		assert.Error(t, err)
	})

	t.Run("BadLogLevel", func(t *testing.T) {
		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"--log-level", "loud", "show"})
		assert.Error(t, cmd.Execute())
	})
}

// TestLifecycle tests the configure/reset walkthrough
func TestLifecycle(t *testing.T) {
	out, err := execute(t, "lifecycle", "--port", "7070")
	require.NoError(t, err)
	assert.Equal(t, "initial:     port=8080\n"+
		"configured:  port=7070 same=true\n"+
		"after reset: port=8080 same=false\n", out)
}
