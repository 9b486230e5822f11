package repl

import (
	"bytes"
	"context"
	"errors"
	"io"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pson-format/go-pson/encode"
)

func run(t *testing.T, in string, opts ...Option) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	opts = append([]Option{WithPrompt("> ", ". ")}, opts...)
	err := Run(context.Background(), strings.NewReader(in), out, opts...)
	return out.String(), err
}

func TestRunValues(t *testing.T) {
	out, err := run(t, "1 two \"3 4\"\n(b 2 a 1)\n")
	require.NoError(t, err)
	require.Equal(t, "> 1\ntwo\n\"3 4\"\n> (a 1 b 2)\n> ", out)
}

func TestRunContinuation(t *testing.T) {
	out, err := run(t, "[1\n2\n]\n\"a\nb\"\n")
	require.NoError(t, err)
	require.Equal(t, "> . . [1 2]\n> . \"a\\nb\"\n> ", out)
}

func TestRunParseError(t *testing.T) {
	out, err := run(t, "(a)\n[1}\n3\n")
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	require.True(t, strings.HasPrefix(lines[0], "> error: parse error: map with unpaired element"), lines[0])
	require.True(t, strings.HasPrefix(lines[1], "> error: parse error: mismatched close"), lines[1])
	require.Equal(t, "> 3", lines[2])
}

func TestRunSurplusClose(t *testing.T) {
	out, err := run(t, "]\n")
	require.NoError(t, err)
	require.Contains(t, out, "error: parse error: unmatched close")
}

func TestRunCommands(t *testing.T) {
	out, err := run(t, "\\help\n\\exit\n1\n")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "> "+help), out)
	require.True(t, strings.HasSuffix(out, "> Goodbye!\n"), out)
	require.NotContains(t, out, "> 1\n")
}

func TestRunExitStopsReader(t *testing.T) {
	before := runtime.NumGoroutine()
	for range 50 {
		out := &bytes.Buffer{}
		require.NoError(t, Run(context.Background(), strings.NewReader("\\exit\n1\n2\n"), out))
		require.True(t, strings.HasSuffix(out.String(), "Goodbye!\n"))
	}
	require.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before
	}, time.Second, 10*time.Millisecond)
}

func TestRunCommandInsideInput(t *testing.T) {
	out, err := run(t, "[\n\\exit\n]\n")
	require.NoError(t, err)
	require.Equal(t, "> . . [\"\\\\exit\"]\n> ", out)
}

func TestRunIncomplete(t *testing.T) {
	_, err := run(t, "(a [1 2\n")
	require.ErrorIs(t, err, ErrIncomplete)
}

func TestRunBannerAndEncodeOptions(t *testing.T) {
	out, err := run(t, "[1 [2]]\n", WithBanner("hi\n"), WithEncodeOptions(encode.EncodeIndent(1)))
	require.NoError(t, err)
	require.Equal(t, "hi\n> [\n 1\n [\n  2\n ]\n]\n> ", out)
}

func TestRunReadError(t *testing.T) {
	boom := errors.New("boom")
	out := &bytes.Buffer{}
	err := Run(context.Background(), io.MultiReader(strings.NewReader("1\n"), &errReader{boom}), out)
	require.ErrorIs(t, err, boom)
}

type errReader struct{ err error }

func (r *errReader) Read([]byte) (int, error) { return 0, r.err }

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	pr, pw := io.Pipe()
	defer pw.Close()
	err := Run(ctx, pr, io.Discard)
	require.ErrorIs(t, err, context.Canceled)
}
