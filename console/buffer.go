// Package console holds log lines back while a full-screen program owns the terminal.
package console

import (
	"bytes"
	"io"
	"log"
	"sync"
)

type (
	// Buffer is a logger safe for concurrent use. Lines stay in memory until flushed.
	Buffer struct {
		logger *log.Logger
		buf    bytes.Buffer
		mux    sync.Mutex
	}
)

func NewBuffer(prefix string, flag int) *Buffer {
	b := Buffer{}

	b.logger = log.New(&b.buf, prefix, flag)

	return &b
}

func (b *Buffer) Printf(format string, v ...any) {
	b.mux.Lock()
	defer b.mux.Unlock()

	b.logger.Printf(format, v...)
}

func (b *Buffer) Println(v ...any) {
	b.mux.Lock()
	defer b.mux.Unlock()

	b.logger.Println(v...)
}

// Lines returns what has been logged so far, one entry per line.
func (b *Buffer) Lines() []string {
	b.mux.Lock()
	defer b.mux.Unlock()

	trimmed := bytes.TrimRight(b.buf.Bytes(), "\n")
	if len(trimmed) == 0 {
		return nil
	}

	parts := bytes.Split(trimmed, []byte("\n"))
	lines := make([]string, len(parts))

	for i := range parts {
		lines[i] = string(parts[i])
	}

	return lines
}

// FlushTo writes everything logged so far to dest and empties the buffer.
func (b *Buffer) FlushTo(dest io.Writer) error {
	b.mux.Lock()
	defer b.mux.Unlock()

	_, err := dest.Write(b.buf.Bytes())

	b.buf.Reset()

	return err
}
