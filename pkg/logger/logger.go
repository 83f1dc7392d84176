// Package logger provides verbose tracing for bumped operations.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocks/logger.gen.go -package=mocks

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
}

type noopLogger struct{}

// NewNoopLogger creates a logger that discards everything.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// writerLogger is a thread-safe logger writing one line per message.
type writerLogger struct {
	mu    sync.Mutex
	out   io.Writer
	style lipgloss.Style
}

// NewDefaultLogger creates a logger writing plain lines to stdout.
func NewDefaultLogger() Logger {
	return NewWriterLogger(os.Stdout, lipgloss.NewStyle())
}

// NewVerboseLogger creates a logger writing dimmed lines to stderr, used by --verbose.
func NewVerboseLogger() Logger {
	return NewWriterLogger(os.Stderr, lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")))
}

// NewWriterLogger creates a logger writing to out with the given style.
func NewWriterLogger(out io.Writer, style lipgloss.Style) Logger {
	return &writerLogger{out: out, style: style}
}

func (w *writerLogger) Logf(format string, args ...interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = fmt.Fprintln(w.out, w.style.Render(fmt.Sprintf(format, args...)))
}
