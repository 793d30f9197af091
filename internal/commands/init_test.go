package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "firextract-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "firextract")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/firextract")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

func runCLI(t *testing.T, env []string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), env...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, nil, "init", dir)
	require.NoError(t, err, "init failed: %s", out)

	for _, d := range []string{"jsonl", "logs"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir())
	}

	data, err := os.ReadFile(filepath.Join(dir, "firextract.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "chain: eos")
	assert.Contains(t, string(data), "accounts:")
}

func TestInit_Chain(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, nil, "init", dir, "--chain", "wax")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "firextract.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "chain: wax")
}

func TestInit_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, nil, "init", dir)
	require.NoError(t, err)

	out, err := runCLI(t, nil, "init", dir)
	require.Error(t, err)
	assert.Contains(t, out, "already exists")
}
