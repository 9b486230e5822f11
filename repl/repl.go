package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pson-format/go-pson/debug"
	"github.com/pson-format/go-pson/encode"
	"github.com/pson-format/go-pson/parse"
	"github.com/pson-format/go-pson/token"
)

var ErrIncomplete = errors.New("input ended inside an open string, array or map")

const help = `Enter PSON values; each complete input is read and printed back.
Input continues over several lines while a string, array or map is open.
  \help   show this help
  \exit   end the session
`

type session struct {
	cfg *config
	out io.Writer
	bal token.Balancer
	buf strings.Builder
}

// Run reads from in and writes to out until in ends, \exit is entered or
// ctx is done.
func Run(ctx context.Context, in io.Reader, out io.Writer, opts ...Option) error {
	ctx, cancel := context.WithCancel(ctx)
	// stops the reader when Run returns before in is drained
	defer cancel()
	cfg := &config{prompt: "> ", cont: ". ", maxLine: 1 << 20}
	for _, opt := range opts {
		opt(cfg)
	}
	s := &session{cfg: cfg, out: out}
	if cfg.banner != "" {
		if _, err := io.WriteString(out, cfg.banner); err != nil {
			return err
		}
	}
	lines, errc := readLines(ctx, in, cfg.maxLine)
	for {
		if err := s.prompt(); err != nil {
			return err
		}
		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok = <-lines:
		}
		if !ok {
			if err := <-errc; err != nil {
				return err
			}
			return s.finish()
		}
		done, err := s.line(line)
		if err != nil || done {
			return err
		}
	}
}

func readLines(ctx context.Context, in io.Reader, maxLine int) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		sc.Buffer(make([]byte, 0, 4096), maxLine)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		errc <- sc.Err()
	}()
	return lines, errc
}

func (s *session) prompt() error {
	p := s.cfg.prompt
	if s.buf.Len() > 0 {
		p = s.cfg.cont
	}
	_, err := io.WriteString(s.out, p)
	return err
}

// line handles one line of input, reporting whether the session is over.
func (s *session) line(line string) (bool, error) {
	if s.buf.Len() == 0 {
		switch strings.TrimSpace(line) {
		case `\exit`:
			_, err := io.WriteString(s.out, "Goodbye!\n")
			return true, err
		case `\help`:
			_, err := io.WriteString(s.out, help)
			return false, err
		}
	}
	s.bal.Feed(line)
	s.bal.Feed("\n")
	s.buf.WriteString(line)
	s.buf.WriteByte('\n')
	if debug.REPL() {
		debug.Logf("repl: depth %d in string %t\n", s.bal.Depth(), s.bal.InString())
	}
	if !s.bal.Balanced() {
		return false, nil
	}
	return false, s.eval()
}

func (s *session) eval() error {
	text := s.buf.String()
	s.buf.Reset()
	s.bal.Reset()
	doc, err := parse.ParseString(text)
	if err != nil {
		_, werr := fmt.Fprintf(s.out, "error: %v\n", err)
		return werr
	}
	opts := append([]encode.EncodeOption{encode.EncodeQuoted(true), encode.EncodeTopLevel(true)}, s.cfg.encOpts...)
	return encode.Encode(doc, s.out, opts...)
}

func (s *session) finish() error {
	if s.buf.Len() == 0 {
		return nil
	}
	return fmt.Errorf("%w: depth %d, in string %t", ErrIncomplete, s.bal.Depth(), s.bal.InString())
}
