// Package linesource streams newline-delimited text into a channel so the
// consumer can work while the input is still being read.
package linesource

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/leaguerank/internal/fsutil"
)

// maxLineSize bounds a single line. Longer lines fail the read.
const maxLineSize = 1024 * 1024

// Line is one line of input without its terminator. Number is 1-based.
type Line struct {
	Number int
	Text   string
}

// Read sends every line of r to out, in order, and closes out when done.
// It stops early when ctx is cancelled. Carriage returns before a newline
// are dropped.
func Read(ctx context.Context, r io.Reader, out chan<- Line) error {
	defer close(out)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	n := 0
	for scanner.Scan() {
		n++
		select {
		case out <- Line{Number: n, Text: scanner.Text()}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read line %d: %w", n+1, err)
	}
	return nil
}

// resultsExtension selects the files read from a results directory.
const resultsExtension = ".txt"

// Open returns a reader for path. The path "-" means stdin, which the
// returned closer leaves open. A directory is read as one season: every
// .txt file below it, in lexical order, each ending on a line boundary.
func Open(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open results: %w", err)
	}
	if !info.IsDir() {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open results: %w", err)
		}
		return f, nil
	}

	files, err := fsutil.FindFilesByExtension(path, resultsExtension)
	if err != nil {
		return nil, fmt.Errorf("failed to list results in %s: %w", path, err)
	}
	return openAll(files)
}

// multiFile reads several files back to back and closes them all.
type multiFile struct {
	io.Reader
	files []*os.File
}

func (m *multiFile) Close() error {
	var errs []error
	for _, f := range m.files {
		errs = append(errs, f.Close())
	}
	return errors.Join(errs...)
}

func openAll(paths []string) (io.ReadCloser, error) {
	m := &multiFile{}
	readers := make([]io.Reader, 0, len(paths))
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			m.Close()
			return nil, fmt.Errorf("failed to open results: %w", err)
		}
		m.files = append(m.files, f)
		readers = append(readers, &terminated{r: f})
	}
	m.Reader = io.MultiReader(readers...)
	return m, nil
}

// terminated appends a newline at EOF when the underlying reader did not end
// with one, so consecutive files never merge their last and first lines.
type terminated struct {
	r       io.Reader
	last    byte
	seen    bool
	eof     bool
	pending bool
}

func (t *terminated) Read(p []byte) (int, error) {
	if t.eof {
		if !t.pending {
			return 0, io.EOF
		}
		if len(p) == 0 {
			return 0, nil
		}
		t.pending = false
		p[0] = '\n'
		return 1, nil
	}

	n, err := t.r.Read(p)
	if n > 0 {
		t.last = p[n-1]
		t.seen = true
	}
	if err == io.EOF {
		t.eof = true
		t.pending = t.seen && t.last != '\n'
		if t.pending {
			return n, nil
		}
	}
	return n, err
}
