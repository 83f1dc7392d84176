// Package reporter prints user facing messages of bumped.
package reporter

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=reporter.go -destination=mocks/reporter.gen.go -package=mocks

// Reporter is the sink for user-visible output. Failing to write is never an error.
type Reporter interface {
	// Success prints a positive outcome.
	Success(message string)
	// Warn prints a non fatal problem.
	Warn(message string)
	// Error prints one or many error messages, in order.
	Error(messages ...string)
}

var (
	keywordStyle = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD787"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD75F"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
)

// Options configures a terminal reporter.
type Options struct {
	// Keyword prefixes every line.
	Keyword string
	// Quiet drops success and warning messages. Errors are always printed.
	Quiet bool
	// Out receives success and warning messages. Defaults to stdout.
	Out io.Writer
	// Err receives error messages. Defaults to stderr.
	Err io.Writer
}

type terminal struct {
	mu   sync.Mutex
	opts Options
}

// New creates a Reporter writing styled lines.
func New(opts Options) Reporter {
	if opts.Keyword == "" {
		opts.Keyword = "bumped"
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	return &terminal{opts: opts}
}

func (r *terminal) Success(message string) {
	if r.opts.Quiet {
		return
	}
	r.print(r.opts.Out, successStyle, "✔", message)
}

func (r *terminal) Warn(message string) {
	if r.opts.Quiet {
		return
	}
	r.print(r.opts.Out, warnStyle, "⚠", message)
}

func (r *terminal) Error(messages ...string) {
	for _, m := range messages {
		r.print(r.opts.Err, errorStyle, "✖", m)
	}
}

func (r *terminal) print(w io.Writer, style lipgloss.Style, symbol, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintf(w, "%s %s %s\n", keywordStyle.Render(r.opts.Keyword), style.Render(symbol), message)
}

type discard struct{}

// NewDiscard returns a Reporter that prints nothing.
func NewDiscard() Reporter {
	return discard{}
}

func (discard) Success(string)  {}
func (discard) Warn(string)     {}
func (discard) Error(...string) {}
