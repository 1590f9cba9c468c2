package tui

import (
	"os"
	"sync"
)

// Output is the terminal the program draws on. Every Write is applied whole,
// so a bell rung from the update loop never lands inside a frame the
// renderer is flushing. It keeps the embedded file's Fd, which Bubble Tea
// needs to detect the terminal and its size.
type Output struct {
	*os.File
	mu sync.Mutex
}

// NewOutput wraps f, usually os.Stdout.
func NewOutput(f *os.File) *Output {
	return &Output{File: f}
}

// Write writes p in one piece.
func (o *Output) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.File.Write(p)
}
