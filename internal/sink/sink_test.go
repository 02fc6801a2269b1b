package sink_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/langproc/langproc/internal/errors"
	"github.com/langproc/langproc/internal/sink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSink struct {
	err   error
	calls int
}

func (s *failingSink) Emit(string) error {
	s.calls++
	return s.err
}

func (s *failingSink) Close() error { return s.err }

func TestConsolePrintsWords(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	console := sink.NewConsole(&buf, false)
	require.NoError(t, console.Emit("ab"))
	require.NoError(t, console.Emit("aabb"))
	require.NoError(t, console.Close())

	assert.Equal(t, "ab\naabb\n", buf.String())
}

func TestConsoleRedrawsStatusLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	console := sink.NewConsole(&buf, false)
	require.NoError(t, console.SetStatus("working"))
	require.NoError(t, console.Emit("ab"))
	require.NoError(t, console.ClearStatus())
	require.NoError(t, console.Emit("aabb"))

	assert.Equal(t, "working\r"+"ab     \n"+"working\r"+"       \r"+"aabb\n", buf.String())
}

func TestConsoleColorsStatusLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	console := sink.NewConsole(&buf, true)
	require.NoError(t, console.SetStatus("working"))

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "working")
}

func TestConsoleConcurrentEmit(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	console := sink.NewConsole(&buf, false)

	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 100 {
				assert.NoError(t, console.Emit("abc"))
			}
		}()
	}

	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 800)

	for _, line := range lines {
		assert.Equal(t, "abc", line)
	}
}

func TestFileWritesWordsAndTruncates(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale\n"), 0o600))

	file, err := sink.OpenFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, file.Path())

	require.NoError(t, file.Emit("ab"))
	require.NoError(t, file.Emit("aabb"))
	require.NoError(t, file.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ab\naabb\n", string(content))
}

func TestFileIsLockedWhileOpen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "words.txt")

	file, err := sink.OpenFile(path)
	require.NoError(t, err)

	_, err = sink.OpenFile(path)

	var lockedErr sink.OutputFileLockedError
	require.ErrorAs(t, err, &lockedErr)
	assert.Equal(t, path, lockedErr.Path)

	require.NoError(t, file.Close())

	again, err := sink.OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, again.Close())
}

func TestMultiAndCounter(t *testing.T) {
	t.Parallel()

	var first, second bytes.Buffer

	counter := sink.NewCounter(sink.Multi{sink.NewConsole(&first, false), sink.NewConsole(&second, false), sink.Discard{}})

	require.NoError(t, counter.Emit("a"))
	require.NoError(t, counter.Emit("b"))
	require.NoError(t, counter.Close())

	assert.Equal(t, int64(2), counter.Count())
	assert.Equal(t, "a\nb\n", first.String())
	assert.Equal(t, "a\nb\n", second.String())
}

func TestMultiCollectsErrors(t *testing.T) {
	t.Parallel()

	broken := &failingSink{err: errors.New("disk full")}

	var buf bytes.Buffer

	multi := sink.Multi{broken, sink.NewConsole(&buf, false)}

	err := multi.Emit("a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, "a\n", buf.String())

	require.Error(t, multi.Close())
}

func TestRecorderKeepsFirstError(t *testing.T) {
	t.Parallel()

	broken := &failingSink{err: errors.New("disk full")}

	recorder := sink.NewRecorder(broken)
	recorder.OnWord("a")
	recorder.OnWord("b")

	require.ErrorIs(t, recorder.Err(), broken.err)
	assert.Equal(t, 1, broken.calls)

	healthy := sink.NewRecorder(sink.Discard{})
	healthy.OnWord("a")
	require.NoError(t, healthy.Err())
}
