package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `{
  "solventSLD": 1.0,
  "steps": 5,
  "q": {"min": 0.01, "max": 0.2, "points": 3},
  "shells": [
    {"sld": 3.0, "thickness": 20.0, "interface": 5.0, "shape": "rpow", "nu": 1.0},
    {"sld": 2.0, "thickness": 5.0}
  ]
}`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func configFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))
	return path
}

func TestVolumeCmd(t *testing.T) {
	out, err := execute(t, "volume", configFile(t))
	require.NoError(t, err)
	assert.Contains(t, out, "radius 30\n")
	assert.Contains(t, out, "volume 113097.3355")
}

func TestProfileCmd(t *testing.T) {
	out, err := execute(t, "profile", configFile(t))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "# r(Ang) sld(1e-6/Ang^2)", lines[0])
	assert.Equal(t, "0.000000 3.000000", lines[1])
	assert.Equal(t, "36.000000 1.000000", lines[len(lines)-1])
}

func TestIqCmd(t *testing.T) {
	out, err := execute(t, "iq", "--workers", "2", configFile(t))
	require.NoError(t, err)
	assert.Contains(t, out, "# run ")
	rows := 0
	for _, l := range strings.Split(strings.TrimSpace(out), "\n") {
		if !strings.HasPrefix(l, "#") {
			rows++
		}
	}
	assert.Equal(t, 3, rows)

	dat := filepath.Join(t.TempDir(), "iq.dat")
	out, err = execute(t, "iq", "-o", dat, configFile(t))
	require.NoError(t, err)
	assert.NotContains(t, out, "# run ")
	_, err = os.Stat(dat)
	assert.NoError(t, err)
}

func TestCmdErrors(t *testing.T) {
	_, err := execute(t, "iq")
	assert.Error(t, err)
	_, err = execute(t, "volume", filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
