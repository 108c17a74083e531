package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := New("v1.2.3").Command(time.Now())
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()

	return out.String(), err
}

func TestCommandReportsSubdirectories(t *testing.T) {
	root := t.TempDir()

	for name, size := range map[string]int64{"A": 1_000_000, "B": 2_000_000} {
		dir := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "data"), make([]byte, size), 0o644))
	}

	require.NoError(t, os.WriteFile(filepath.Join(root, "loose"), make([]byte, 4096), 0o644))

	output, err := execute(t, root)
	require.NoError(t, err)

	lines := strings.Split(output, "\n")
	require.GreaterOrEqual(t, len(lines), 8)

	abs, err := filepath.Abs(root)
	require.NoError(t, err)

	assert.Equal(t, "Directory: "+abs, lines[0])
	assert.Empty(t, lines[1])
	assert.Contains(t, lines[2], filepath.ToSlash(filepath.Join(root, "B"))+" (1.91 MB)")
	assert.Contains(t, lines[3], filepath.ToSlash(filepath.Join(root, "A"))+" (0.95 MB)")
	assert.Empty(t, lines[4])
	assert.Equal(t, "Total size: 2.86 MB", lines[5])
	assert.Empty(t, lines[6])
	assert.Regexp(t, `^Execution time : \d+ ms$`, lines[7])

	// No spinner when the output is not a terminal
	assert.NotContains(t, output, "Computing sizes")
}

func TestCommandNoSubdirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "file"), []byte("x"), 0o644))

	output, err := execute(t, root)
	require.NoError(t, err)

	assert.Contains(t, output, "\n\n\nTotal size: 0.00 MB\n")
}

func TestCommandDefaultsToWorkingDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	prevWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	t.Cleanup(func() { _ = os.Chdir(prevWd) })

	output, err := execute(t)
	require.NoError(t, err)

	abs, err := os.Getwd()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(output, "Directory: "+abs+"\n\n"))
	assert.Contains(t, output, "❚\x1b[0m sub (0.00 MB)\n")
}

func TestCommandMissingDirectory(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "missing"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCommandTooManyArguments(t *testing.T) {
	_, err := execute(t, "a", "b")

	require.Error(t, err)
}

func TestCommandVersion(t *testing.T) {
	output, err := execute(t, "--version")
	require.NoError(t, err)

	assert.Contains(t, output, "v1.2.3")
}
