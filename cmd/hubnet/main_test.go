package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// invoke runs the CLI with stdin and returns exit code, stdout and stderr.
func invoke(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"hubnet"}, args...), strings.NewReader(stdin), &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

// noDotEnv points the dotenv loader at a file that does not exist.
func noDotEnv(t *testing.T) {
	t.Helper()
	t.Setenv(envFileVar, filepath.Join(t.TempDir(), "absent.env"))
}

func TestSolve_Text(t *testing.T) {
	noDotEnv(t)
	cases := []struct {
		name, in, want string
	}{
		{"tunnel chain", "4 0 3\n1 2 1\n2 3 1\n3 4 1\n", "3\n"},
		{"hub islands", "4 2 2\n1 5\n4 5\n1 2 10\n3 4 10\n", "30\n"},
		{"single facility", "1 0 0\n", "0\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, m := range []string{"kruskal", "prim"} {
				code, out, errOut := invoke(t, tc.in, "solve", "--method", m)
				assert.Equal(t, ExitSuccess, code, errOut)
				assert.Equal(t, tc.want, out)
			}
		})
	}
}

func TestSolve_Infeasible(t *testing.T) {
	noDotEnv(t)
	code, out, errOut := invoke(t, "3 1 1\n1 1\n1 2 100\n", "solve")
	assert.Equal(t, ExitInfeasible, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "cannot be connected")
}

func TestSolve_InvalidInput(t *testing.T) {
	noDotEnv(t)
	for _, in := range []string{"", "3 0 1\n1 4 2\n", "2 1 0\n1 -5\n", "2 0 1\n1 two 3\n"} {
		code, out, errOut := invoke(t, in, "solve")
		assert.Equal(t, ExitInvalidInput, code, "input %q", in)
		assert.Empty(t, out)
		assert.Contains(t, errOut, "invalid input")
	}
}

func TestSolve_CostOverflow(t *testing.T) {
	noDotEnv(t)
	half := strconv.FormatInt(math.MaxInt64/2+1, 10)
	in := fmt.Sprintf("3 0 2\n1 2 %s\n2 3 %s\n", half, half)
	for _, m := range []string{"kruskal", "prim"} {
		code, out, errOut := invoke(t, in, "solve", "--method", m)
		assert.Equal(t, ExitInvalidInput, code, m)
		assert.Empty(t, out, m)
		assert.Contains(t, errOut, "overflows", m)
	}
}

func TestSolve_HugeFacilityCount(t *testing.T) {
	noDotEnv(t)
	in := strconv.Itoa(math.MaxInt-1) + " 0 0\n"
	for _, m := range []string{"kruskal", "prim"} {
		code, out, _ := invoke(t, in, "solve", "--method", m)
		assert.Equal(t, ExitInfeasible, code, m)
		assert.Empty(t, out, m)
	}
}

func TestSolve_Root(t *testing.T) {
	noDotEnv(t)
	in := "4 2 2\n1 5\n4 5\n1 2 10\n3 4 10\n"
	code, out, errOut := invoke(t, in, "solve", "--method", "prim", "--root", "3")
	require.Equal(t, ExitSuccess, code, errOut)
	assert.Equal(t, "30\n", out)

	code, _, errOut = invoke(t, in, "solve", "--method", "prim", "--root", "7")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut, "root")
}

func TestSolve_JSON(t *testing.T) {
	noDotEnv(t)
	code, out, errOut := invoke(t, "4 2 2\n1 5\n4 5\n1 2 10\n3 4 10\n", "solve", "--format", "json")
	require.Equal(t, ExitSuccess, code, errOut)

	var doc struct {
		RunID      string                   `json:"run_id"`
		Method     string                   `json:"method"`
		Cost       int64                    `json:"cost"`
		HubCost    int64                    `json:"hub_cost"`
		UsesHubs   bool                     `json:"uses_hubs"`
		HubSites   []struct{ Facility int } `json:"hub_sites"`
		TunnelOnly struct {
			Feasible bool `json:"feasible"`
		} `json:"tunnel_only"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.NotEmpty(t, doc.RunID)
	assert.Equal(t, "kruskal", doc.Method)
	assert.Equal(t, int64(30), doc.Cost)
	assert.Equal(t, int64(10), doc.HubCost)
	assert.True(t, doc.UsesHubs)
	assert.Len(t, doc.HubSites, 2)
	assert.False(t, doc.TunnelOnly.Feasible)
}

func TestSolve_BadFlags(t *testing.T) {
	noDotEnv(t)
	code, _, _ := invoke(t, "1 0 0\n", "solve", "--format", "yaml")
	assert.Equal(t, ExitFailure, code)

	code, _, _ = invoke(t, "2 0 1\n1 2 1\n", "solve", "--method", "boruvka")
	assert.Equal(t, ExitFailure, code)

	code, _, errOut := invoke(t, "1 0 0\n", "--log-level", "loud", "solve")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut, "log-level")

	code, _, _ = invoke(t, "", "solve", "--input", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, ExitFailure, code)
}

func TestGenerateThenSolve(t *testing.T) {
	noDotEnv(t)
	path := filepath.Join(t.TempDir(), "inst.txt")

	code, _, errOut := invoke(t, "", "generate", "--n", "40", "--tunnels", "80", "--sites", "6",
		"--seed", "9", "--connected", "--output", path)
	require.Equal(t, ExitSuccess, code, errOut)

	code, first, errOut := invoke(t, "", "solve", "--input", path)
	require.Equal(t, ExitSuccess, code, errOut)
	code, second, _ := invoke(t, "", "solve", "--input", path, "--method", "prim")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, first, second)

	code, _, _ = invoke(t, "", "generate", "--n", "0")
	assert.Equal(t, ExitFailure, code)
}

func TestGenerate_Stdout(t *testing.T) {
	noDotEnv(t)
	code, out, _ := invoke(t, "", "generate", "--n", "3", "--tunnels", "2", "--sites", "1", "--connected")
	require.Equal(t, ExitSuccess, code)
	assert.True(t, strings.HasPrefix(out, "3 1 2\n"))
}

func TestDotEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "hubnet.env")
	require.NoError(t, os.WriteFile(envPath, []byte("HUBNET_LOG_LEVEL=debug\n"), 0o600))
	t.Setenv(envFileVar, envPath)
	t.Cleanup(func() { _ = os.Unsetenv("HUBNET_LOG_LEVEL") })

	code, out, errOut := invoke(t, "2 0 1\n1 2 7\n", "solve")
	require.Equal(t, ExitSuccess, code, errOut)
	assert.Equal(t, "7\n", out)
	assert.Contains(t, errOut, "tunnel-only run")
	assert.Contains(t, errOut, "run_id=")
}

func TestCPUProfile(t *testing.T) {
	noDotEnv(t)
	dir := t.TempDir()
	code, out, errOut := invoke(t, "2 0 1\n1 2 7\n", "--cpuprofile", "--profile-dir", dir, "solve")
	require.Equal(t, ExitSuccess, code, errOut)
	assert.Equal(t, "7\n", out)
	assert.FileExists(t, filepath.Join(dir, "cpu.pprof"))
}
