// Package console reads operator answers from a terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ErrClosed is returned by Ask after Close.
var ErrClosed = errors.New("console is closed")

type lineResult struct {
	text string
	err  error
}

// Console is a line-oriented input handle. Acquire it with Open and release
// it with Close on every exit path.
type Console struct {
	mu     sync.Mutex
	reader *bufio.Reader
	out    io.Writer
	closer io.Closer
	closed bool

	start sync.Once
	lines chan lineResult
	done  chan struct{}
}

// Open wraps in and out. If in implements io.Closer it is closed by Close.
func Open(in io.Reader, out io.Writer) (*Console, error) {
	if in == nil {
		return nil, errors.New("input reader is required")
	}
	if out == nil {
		out = io.Discard
	}
	c := &Console{
		reader: bufio.NewReader(in),
		out:    out,
		lines:  make(chan lineResult),
		done:   make(chan struct{}),
	}
	if closer, ok := in.(io.Closer); ok {
		c.closer = closer
	}
	return c, nil
}

// Ask writes prompt and returns the next line without its line ending.
// Lines have no length limit and an empty line is a valid answer. io.EOF is
// returned once input ends; ctx.Err() if ctx is done while waiting.
func (c *Console) Ask(ctx context.Context, prompt string) (string, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return "", ErrClosed
	}
	c.start.Do(func() { go c.readLoop() })
	c.mu.Unlock()

	_, _ = fmt.Fprint(c.out, prompt)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return r.text, r.err
	}
}

// readLoop hands one line at a time to Ask. A line left pending when Ask
// gives up on ctx is delivered to the next Ask.
func (c *Console) readLoop() {
	defer close(c.lines)
	for {
		line, err := c.reader.ReadString('\n')
		if line != "" {
			if !c.deliver(lineResult{text: strings.TrimRight(line, "\r\n")}) {
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				c.deliver(lineResult{err: fmt.Errorf("read input: %w", err)})
			}
			return
		}
	}
}

func (c *Console) deliver(r lineResult) bool {
	select {
	case c.lines <- r:
		return true
	case <-c.done:
		return false
	}
}

// Close releases the input. It is safe to call more than once.
func (c *Console) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	close(c.done)
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}
