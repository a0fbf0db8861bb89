package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const referenceText = `1 0 1 1 1 1 0 1 1 1
1 1 1 0 1 1 1 0 1 1
1 1 1 0 1 1 0 1 0 1
0 0 1 0 1 0 0 0 0 1
1 1 1 0 1 1 1 0 1 0
1 0 1 1 1 1 0 1 0 0
1 0 0 0 0 1 0 0 0 1
1 0 1 1 1 1 0 1 1 1
1 1 1 0 0 0 1 0 0 1
`

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := BuildCLI()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSearchCommand(t *testing.T) {
	gridFile := writeTemp(t, "map.txt", referenceText)

	out, err := execute(t, "search", "--grid", gridFile, "--src", "8,0", "--dest", "0,0")
	require.NoError(t, err)
	want := "The destination cell is found\n\nThe Path is\n" +
		"(8,0)\n(7,0)\n(6,0)\n(5,0)\n(4,1)\n(3,2)\n(2,1)\n(1,1)\n(0,0)\n"
	require.Equal(t, want, out)
}

func TestSearchCommand_Outcomes(t *testing.T) {
	gridFile := writeTemp(t, "map.txt", referenceText)
	sealed := writeTemp(t, "sealed.txt", strings.Replace(referenceText, "0 0 1 0 1 0 0 0 0 1", "0 0 0 0 0 0 0 0 0 0", 1))

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"Sealed", []string{"--grid", sealed, "--src", "8,0", "--dest", "0,0"}, "Path was not found\n"},
		{"Same", []string{"--grid", gridFile, "--src", "0,0", "--dest", "0,0"}, "Already at destination\n"},
		{"OffMap", []string{"--grid", gridFile, "--src", "-1,0", "--dest", "0,0"}, "Source is invalid\n"},
		{"Blocked", []string{"--grid", gridFile, "--src", "8,0", "--dest", "0,1"}, "Source or the destination is blocked\n"},
		{"Truncated", []string{"--grid", gridFile, "--src", "8,0", "--dest", "0,0", "--max-expansions", "2"}, "Path was not found\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"search"}, tc.args...)...)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestSearchCommand_Map(t *testing.T) {
	gridFile := writeTemp(t, "small.txt", "1 1 1\n1 0 1\n1 1 1\n")
	out, err := execute(t, "search", "-g", gridFile, "--src", "1,0", "--dest", "1,2", "--map", "--mode", "extract")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(out, "\n.*.\nS#D\n...\n"), out)
}

func TestSearchCommand_Errors(t *testing.T) {
	gridFile := writeTemp(t, "map.txt", referenceText)

	_, err := execute(t, "search", "--grid", gridFile, "--src", "8,0")
	require.ErrorContains(t, err, "dest")

	_, err = execute(t, "search", "--grid", gridFile, "--src", "8;0", "--dest", "0,0")
	require.ErrorContains(t, err, "row,col")

	_, err = execute(t, "search", "--grid", gridFile, "--src", "8,0", "--dest", "0,0", "--mode", "sideways")
	require.ErrorContains(t, err, "search.mode")

	_, err = execute(t, "search", "--grid", filepath.Join(t.TempDir(), "nope.txt"), "--src", "8,0", "--dest", "0,0")
	require.ErrorContains(t, err, "failed to load grid")
}

func TestSearchCommand_ConfigFile(t *testing.T) {
	gridFile := writeTemp(t, "map.txt", referenceText)
	cfgFile := writeTemp(t, "gridpath.yaml", "search:\n  max_expansions: 1\n")

	out, err := execute(t, "-c", cfgFile, "search", "--grid", gridFile, "--src", "8,0", "--dest", "0,0")
	require.NoError(t, err)
	require.Equal(t, "Path was not found\n", out, "limit from config applies")

	out, err = execute(t, "-c", cfgFile, "search", "--grid", gridFile, "--src", "8,0", "--dest", "0,0", "--max-expansions", "0")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "The destination cell is found"), "flag overrides config")

	bad := writeTemp(t, "bad.yaml", "batch:\n  workers: -2\n")
	_, err = execute(t, "-c", bad, "search", "--grid", gridFile, "--src", "8,0", "--dest", "0,0")
	require.ErrorContains(t, err, "failed to load config")
}

func TestBatchCommand(t *testing.T) {
	scenario := writeTemp(t, "scenario.yaml", `grid:
  - [1, 1, 1]
  - [1, 0, 1]
  - [1, 1, 1]
queries:
  - name: around
    src: [1, 0]
    dest: [1, 2]
  - name: wall
    src: [0, 0]
    dest: [1, 1]
`)
	out, err := execute(t, "batch", "--scenario", scenario, "--workers", "2")
	require.NoError(t, err)
	require.Equal(t, "around\tFoundPath\tcost=2.828\tcells=3\texpanded=2\nwall\tBlocked\texpanded=0\n", out)

	_, err = execute(t, "batch")
	require.Error(t, err)
}
