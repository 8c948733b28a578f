package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jsonResult struct {
	Routes []jsonRoute `json:"routes"`
	Stats  struct {
		Termination string `json:"termination"`
	} `json:"stats"`
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errb bytes.Buffer
	code := run(context.Background(), append([]string{"--config", quietConfig(t)}, args...), &out, &errb)

	return code, out.String(), errb.String()
}

// quietConfig keeps test logs to errors and shrinks the synthetic grid.
func quietConfig(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "loopway.yaml")
	doc := "log:\n  level: error\ngraph:\n  grid:\n    rows: 6\n    cols: 6\n    spacing: 100\n"
	require.NoError(t, os.WriteFile(p, []byte(doc), 0o600))

	return p
}

func TestRun_VersionAndHelp(t *testing.T) {
	code, out, _ := runCLI(t, "--version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "loopway "+version+"\n", out)

	code, _, errOut := runCLI(t, "-h")
	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "--max-results")
}

func TestRun_BadInput(t *testing.T) {
	code, _, _ := runCLI(t, "--no-such-flag")
	assert.Equal(t, 2, code)

	code, _, errOut := runCLI(t, "--from", "99999")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "not found")

	var out, errb bytes.Buffer
	code = run(context.Background(), []string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, &out, &errb)
	assert.Equal(t, 1, code)
}

func TestRun_SyntheticGridJSON(t *testing.T) {
	code, out, errOut := runCLI(t, "--min", "800", "--max", "1200", "-n", "2", "--json")
	require.Equal(t, 0, code, errOut)

	var res jsonResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.LessOrEqual(t, len(res.Routes), 2)
	assert.NotEmpty(t, res.Stats.Termination)
	for _, r := range res.Routes {
		assert.Equal(t, 0, r.Nodes[0])
		assert.Equal(t, 0, r.Nodes[len(r.Nodes)-1])
	}
}

func TestRun_SaveThenLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "grid.json.zst")
	code, _, errOut := runCLI(t, "--save", p, "--min", "400", "--max", "600")
	require.Equal(t, 0, code, errOut)
	require.FileExists(t, p)

	code, out, errOut := runCLI(t, "--graph", p, "--from", "7", "--min", "400", "--max", "600", "--json")
	require.Equal(t, 0, code, errOut)
	var res jsonResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	for _, r := range res.Routes {
		assert.Equal(t, 7, r.Nodes[0])
	}
}

func TestRun_DEM(t *testing.T) {
	p := filepath.Join(t.TempDir(), "flat.txt")
	require.NoError(t, os.WriteFile(p, []byte("# flat 3x3\n0 0 0\n0 0 0\n\n0 0 0\n"), 0o600))

	code, out, errOut := runCLI(t, "--dem", p, "--cell-size", "1000", "--min", "3000", "--max", "5000")
	require.Equal(t, 0, code, errOut)
	assert.True(t, strings.HasPrefix(out, "#1 4000 m"), out)

	bad := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("0 x\n"), 0o600))
	code, _, _ = runCLI(t, "--dem", bad)
	assert.Equal(t, 1, code)
}
