package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closeTracker struct {
	io.Reader
	closes int
}

func (c *closeTracker) Close() error {
	c.closes++
	return nil
}

func TestAskReadsLinesAndWritesPrompts(t *testing.T) {
	var out bytes.Buffer
	c, err := Open(strings.NewReader("first\r\n\nthird"), &out)
	require.NoError(t, err)
	defer c.Close()

	for _, want := range []string{"first", "", "third"} {
		got, err := c.Ask(context.Background(), "> ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err = c.Ask(context.Background(), "> ")
	assert.ErrorIs(t, err, io.EOF)
	_, err = c.Ask(context.Background(), "> ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "> > > > > ", out.String())
}

func TestAskAcceptsLinesLongerThanScannerLimit(t *testing.T) {
	long := strings.Repeat("a", 70*1024)
	c, err := Open(strings.NewReader(long+"\nyes\n"), nil)
	require.NoError(t, err)
	defer c.Close()

	got, err := c.Ask(context.Background(), "? ")
	require.NoError(t, err)
	assert.Len(t, got, len(long))

	got, err = c.Ask(context.Background(), "? ")
	require.NoError(t, err)
	assert.Equal(t, "yes", got)
}

func TestAskReturnsWhenContextCancelledWhileBlocked(t *testing.T) {
	pr, pw := io.Pipe()
	c, err := Open(pr, nil)
	require.NoError(t, err)
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		_, err := c.Ask(ctx, "? ")
		errc <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Ask did not return after cancellation")
	}

	go func() { _, _ = io.WriteString(pw, "later\n") }()
	got, err := c.Ask(context.Background(), "? ")
	require.NoError(t, err)
	assert.Equal(t, "later", got)
}

func TestCloseReleasesInputOnce(t *testing.T) {
	in := &closeTracker{Reader: strings.NewReader("yes\n")}
	c, err := Open(in, nil)
	require.NoError(t, err)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	assert.Equal(t, 1, in.closes)

	_, err = c.Ask(context.Background(), "? ")
	assert.ErrorIs(t, err, ErrClosed)
}

func TestOpenRequiresInput(t *testing.T) {
	_, err := Open(nil, nil)
	assert.Error(t, err)
}
