package generate_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/langproc/langproc/cli/commands/generate"
	"github.com/langproc/langproc/config"
	"github.com/langproc/langproc/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const anbnGrammar = `# a^n b^n
n = 5
L = {a, b}
S -> aSb | ab
`

func writeGrammar(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "grammar.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func newTestOptions(t *testing.T, grammar string) (*options.LangprocOptions, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	opts := options.NewLangprocOptionsForTest(&stdout, &stderr)
	opts.GrammarPath = writeGrammar(t, grammar)
	opts.RunID = "test-run"

	return opts, &stdout, &stderr
}

func TestRunSequentialPrintsWordsInOrder(t *testing.T) {
	t.Parallel()

	opts, stdout, _ := newTestOptions(t, anbnGrammar)
	opts.Single = true

	require.NoError(t, generate.Run(context.Background(), opts))
	assert.Equal(t, "ab\naabb\n", stdout.String())
}

func TestRunConcurrentPrintsAllWords(t *testing.T) {
	t.Parallel()

	opts, stdout, _ := newTestOptions(t, anbnGrammar)
	opts.Parallelism = 4

	require.NoError(t, generate.Run(context.Background(), opts))
	assert.ElementsMatch(t, []string{"ab", "aabb"}, strings.Fields(stdout.String()))
}

func TestRunWritesOutputFile(t *testing.T) {
	t.Parallel()

	opts, stdout, _ := newTestOptions(t, anbnGrammar)
	opts.Single = true
	opts.NoDisplay = true
	opts.OutputFile = filepath.Join(t.TempDir(), "words.txt")

	require.NoError(t, generate.Run(context.Background(), opts))
	assert.Empty(t, stdout.String())

	content, err := os.ReadFile(opts.OutputFile)
	require.NoError(t, err)
	assert.Equal(t, "ab\naabb\n", string(content))
}

func TestRunVerbose(t *testing.T) {
	t.Parallel()

	opts, stdout, _ := newTestOptions(t, anbnGrammar)
	opts.Single = true
	opts.Verbose = true

	require.NoError(t, generate.Run(context.Background(), opts))

	output := stdout.String()
	assert.True(t, strings.HasPrefix(output, "Grammar rules:\n\tS -> aSb\n\tS -> ab\n\nab\naabb\n"), output)
	assert.Contains(t, output, "\nProcessing done, took ")
	assert.True(t, strings.HasSuffix(output, "Found 2 entries.\n"), output)
}

func TestRunShowTime(t *testing.T) {
	t.Parallel()

	opts, stdout, _ := newTestOptions(t, anbnGrammar)
	opts.Single = true
	opts.NoDisplay = true
	opts.ShowTime = true

	require.NoError(t, generate.Run(context.Background(), opts))
	assert.True(t, strings.HasPrefix(stdout.String(), "Processing done, took "), stdout.String())
	assert.NotContains(t, stdout.String(), "entries")
}

func TestRunLogsLoaderWarnings(t *testing.T) {
	t.Parallel()

	opts, stdout, stderr := newTestOptions(t, anbnGrammar+"m = 1\n")
	opts.Single = true

	require.NoError(t, generate.Run(context.Background(), opts))
	assert.Equal(t, "ab\naabb\n", stdout.String())
	assert.Contains(t, stderr.String(), "WARN")
	assert.Contains(t, stderr.String(), `unknown variable "m"`)
	assert.Contains(t, stderr.String(), "run-id=test-run")
}

func TestRunWithCustomStart(t *testing.T) {
	t.Parallel()

	opts, stdout, _ := newTestOptions(t, anbnGrammar)
	opts.Single = true
	opts.Start = "aSb"

	require.NoError(t, generate.Run(context.Background(), opts))
	assert.Equal(t, "aabb\n", stdout.String())
}

func TestRunMissingGrammarFile(t *testing.T) {
	t.Parallel()

	opts, _, _ := newTestOptions(t, anbnGrammar)
	opts.GrammarPath = filepath.Join(t.TempDir(), "missing.txt")

	err := generate.Run(context.Background(), opts)

	var notFound config.GrammarFileNotFoundError
	require.ErrorAs(t, err, &notFound)
}
