package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textreport/internal/cli"
)

const demoYAML = `title: Demo
items:
  - header: Summary
  - paragraph: The quick brown fox jumps over the lazy dog
  - table:
      caption: Scores
      columns: [left, right]
      rows:
        - [Ada, 97]
        - [Bob, 5]
`

const demoText = "Summary\n" +
	"=======\n" +
	"\n" +
	"The quick brown fox\n" +
	"jumps over the lazy\n" +
	"dog\n" +
	"\n" +
	"Table 1. Scores\n" +
	"\n" +
	"| Ada | 97 |\n" +
	"| Bob |  5 |\n" +
	"\n"

type runResult struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, stdin string, args ...string) runResult {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return runResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRender_File(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "demo.yaml", demoYAML)

	res := run(t, "", "render", "--max-line-length", "20", path)
	require.NoError(t, res.err)
	assert.Equal(t, demoText, res.stdout)
}

func TestRender_Stdin(t *testing.T) {
	t.Parallel()

	res := run(t, demoYAML, "render", "-w", "20", "--format", "auto")
	require.NoError(t, res.err)
	assert.Equal(t, demoText, res.stdout)

	res = run(t, demoYAML, "render", "-w", "20", "-")
	require.NoError(t, res.err)
	assert.Equal(t, demoText, res.stdout)
}

func TestRender_MarkdownStdin(t *testing.T) {
	t.Parallel()

	md := "## Notes\n\nalpha beta gamma\n"
	res := run(t, md, "render", "-w", "10", "--format", "markdown", "--flavor", "gfm")
	require.NoError(t, res.err)
	assert.Equal(t, "Notes\n\nalpha beta\ngamma\n\n", res.stdout)
}

func TestRender_OutputFile(t *testing.T) {
	t.Parallel()

	in := writeTemp(t, "demo.yaml", demoYAML)
	out := filepath.Join(t.TempDir(), "demo.txt")

	res := run(t, "", "render", "-w", "20", "-o", out, in)
	require.NoError(t, res.err)
	assert.Empty(t, res.stdout)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, demoText, string(got))
}

func TestRender_Stats(t *testing.T) {
	t.Parallel()

	in := writeTemp(t, "demo.yaml", demoYAML)

	res := run(t, "", "--color", "never", "render", "-w", "20", "--stats", in)
	require.NoError(t, res.err)
	assert.Equal(t, demoText, res.stdout)
	assert.Contains(t, res.stderr, "Rendered Demo -> stdout")
	assert.Contains(t, res.stderr, "tables      1 (2 rows)")
}

func TestRender_DebugLogsToStderr(t *testing.T) {
	t.Parallel()

	in := writeTemp(t, "demo.yaml", demoYAML)

	res := run(t, "", "--debug", "render", "-w", "20", in)
	require.NoError(t, res.err)
	assert.Equal(t, demoText, res.stdout, "logs never reach the report sink")
	assert.Contains(t, res.stderr, "document loaded")
	assert.Contains(t, res.stderr, "render table")
}

func TestRender_Errors(t *testing.T) {
	t.Parallel()

	badTable := writeTemp(t, "bad.yaml", "items:\n  - table:\n      columns: [left]\n      rows: [[a, b]]\n")
	badConfig := writeTemp(t, "config.yaml", "flavor: mdx\n")
	unknownExt := writeTemp(t, "notes.txt", "hello")
	good := writeTemp(t, "demo.yaml", demoYAML)

	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"missing input", []string{"render", filepath.Join(t.TempDir(), "nope.yaml")}, cli.ExitNoInput},
		{"invalid document", []string{"render", badTable}, cli.ExitDataError},
		{"invalid config", []string{"--config", badConfig, "render", good}, cli.ExitConfigError},
		{"zero line length", []string{"render", "-w", "0", good}, cli.ExitInvalidUsage},
		{"unknown format flag", []string{"render", "--format", "html", good}, cli.ExitInvalidUsage},
		{"undetectable extension", []string{"render", unknownExt}, cli.ExitInvalidUsage},
		{"unwritable output", []string{"render", "-o", filepath.Join(t.TempDir(), "missing", "out.txt"), good}, cli.ExitIOError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := run(t, "", tt.args...)
			require.Error(t, res.err)
			assert.Equal(t, tt.wantCode, cli.ExitCodeForError(res.err), "err: %v", res.err)
			assert.Empty(t, res.stdout)
		})
	}
}
