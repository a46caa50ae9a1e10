package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestCheckDefaults(t *testing.T) {
	out, err := runCommand(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "configuration OK: service-generator")
}

func TestCheckConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o600))

	out, err := runCommand(t, "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "port=9090")
}

func TestCheckMissingConfigFile(t *testing.T) {
	_, err := runCommand(t, "check", filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestCheckRejectsExtraArgs(t *testing.T) {
	_, err := runCommand(t, "check", "a.yml", "b.yml")
	assert.Error(t, err)
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "", configPath(nil))
	assert.Equal(t, "c.yml", configPath([]string{"c.yml"}))
}
