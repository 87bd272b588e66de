package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitaminmoo/hexd/internal/config"
)

func writeFile(t *testing.T, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.bin")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Cleanup(func() {
		config.Verbose = false
		config.SetDebugOutput(os.Stderr)
	})

	var stdout, stderr bytes.Buffer
	code := Main(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestMainUsage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: nil},
		{name: "two files", args: []string{"a.bin", "b.bin"}},
		{name: "three files", args: []string{"a", "b", "c"}},
		{name: "unknown flag", args: []string{"--width=8", "a.bin"}},
		{name: "pager without file", args: []string{"--view"}},
		{name: "verbose with two files", args: []string{"-v", "a.bin", "b.bin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, _ := run(t, tt.args...)
			assert.Equal(t, config.ExitBadUsage, code)
			assert.Equal(t, "Usage: hexd [file]\n", stdout)
		})
	}
}

func TestMainOpenError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.bin")

	code, stdout, _ := run(t, path)
	assert.Equal(t, config.ExitFailure, code)
	assert.Equal(t, "Error: Could not open ["+path+"]\n", stdout)
}

func TestMainEmptyFile(t *testing.T) {
	code, stdout, stderr := run(t, writeFile(t, nil))
	assert.Equal(t, config.ExitSuccess, code)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestMainDump(t *testing.T) {
	code, stdout, _ := run(t, writeFile(t, []byte("ABC")))
	assert.Equal(t, config.ExitSuccess, code)
	assert.Equal(t, "0000000: 4142 43"+strings.Repeat(" ", 34)+"ABC\n", stdout)
}

func TestMainDumpMultipleRows(t *testing.T) {
	data := append(make([]byte, 16), []byte("hexd")...)

	code, stdout, _ := run(t, writeFile(t, data))
	assert.Equal(t, config.ExitSuccess, code)
	assert.Equal(t,
		"0000000: 0000 0000 0000 0000 0000 0000 0000 0000  ................\n"+
			"0000010: 6865 7864"+strings.Repeat(" ", 32)+"hexd\n",
		stdout)
}

func TestMainVerbose(t *testing.T) {
	code, stdout, stderr := run(t, "-v", writeFile(t, []byte("ABC")))
	assert.Equal(t, config.ExitSuccess, code)
	assert.Equal(t, "0000000: 4142 43"+strings.Repeat(" ", 34)+"ABC\n", stdout)
	assert.Contains(t, stderr, "[DEBUG]")
	assert.Contains(t, stderr, "Dumped 1 rows")
}

func TestMainDirectory(t *testing.T) {
	code, stdout, _ := run(t, t.TempDir())
	assert.Equal(t, config.ExitSuccess, code)
	assert.Empty(t, stdout)
}

func TestMainHelp(t *testing.T) {
	code, stdout, _ := run(t, "--help")
	assert.Equal(t, config.ExitSuccess, code)
	assert.Contains(t, stdout, "hexd")
	assert.Contains(t, stdout, "--view")
}

func TestCLIRunErrors(t *testing.T) {
	c := &CLI{}
	err := c.Run(&bytes.Buffer{})
	var usageErr *UsageError
	require.ErrorAs(t, err, &usageErr)
	assert.Equal(t, 0, usageErr.Args)
	assert.Equal(t, config.ExitBadUsage, config.ExitCode(err))

	c = &CLI{Files: []string{filepath.Join(t.TempDir(), "nope")}}
	err = c.Run(&bytes.Buffer{})
	var openErr *OpenError
	require.ErrorAs(t, err, &openErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, config.ExitFailure, config.ExitCode(err))
}
