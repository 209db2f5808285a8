// Package console writes categorized, human-facing messages to a terminal or any other
// writer.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/gookit/color"
	"golang.org/x/term"

	"github.com/mfridman/cliutil/pkg/textutil"
)

// Category labels a message. The label only prefixes the displayed text.
type Category int

const (
	None     Category = iota // no prefix
	Debug                    // debug messages, hidden unless enabled
	Info                     // general information about program status
	Error                    // error messages
	Complete                 // program completed successfully
	Option                   // information about enabled options
	Output                   // output from other processes
	Hint                     // hints for resolving errors
)

var labels = map[Category]string{
	Debug:    "DEBUG",
	Info:     "INFO",
	Error:    "ERROR",
	Complete: "COMPLETE",
	Option:   "OPTION",
	Output:   "OUTPUT",
	Hint:     "HINT",
}

var styles = map[Category]color.Color{
	Debug:    color.Gray,
	Info:     color.Cyan,
	Error:    color.Red,
	Complete: color.Green,
	Option:   color.Magenta,
	Output:   color.Blue,
	Hint:     color.Yellow,
}

func (c Category) String() string {
	return labels[c]
}

// Logger is a sink for categorized messages.
type Logger interface {
	Write(message string, category Category)
}

// Console is a [Logger] that prints "LABEL: message" lines.
type Console struct {
	mu        sync.Mutex
	out       io.Writer
	showDebug bool
	colorize  bool
	width     int
}

// ConsoleOption configures a [Console].
type ConsoleOption func(*Console)

// WithDebug controls whether [Debug] messages are printed. They are hidden by default.
func WithDebug(show bool) ConsoleOption {
	return func(c *Console) { c.showDebug = show }
}

// WithColor forces category colors on or off. By default colors are used only when the
// writer is a terminal.
func WithColor(enabled bool) ConsoleOption {
	return func(c *Console) { c.colorize = enabled }
}

// WithWidth wraps messages to the given column width. Zero disables wrapping. By default
// the terminal width is used when the writer is a terminal.
func WithWidth(width int) ConsoleOption {
	return func(c *Console) { c.width = width }
}

// New returns a console writing to w, or to [os.Stdout] if w is nil.
func New(w io.Writer, opts ...ConsoleOption) *Console {
	if w == nil {
		w = os.Stdout
	}
	c := &Console{out: w}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.colorize = true
		if width, _, err := term.GetSize(int(f.Fd())); err == nil {
			c.width = width
		}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Write prints message with the category's prefix. [Debug] messages are dropped unless
// enabled with [WithDebug].
func (c *Console) Write(message string, category Category) {
	if category == Debug && !c.showDebug {
		return
	}
	prefix := ""
	if label := category.String(); label != "" {
		prefix = label + ": "
	}
	indent := strings.Repeat(" ", len(prefix))
	if c.colorize && prefix != "" {
		prefix = styles[category].Render(prefix)
	}

	// Line breaks in message are kept; only lines wider than the console are reflowed.
	var b strings.Builder
	b.WriteString(prefix)
	for i, line := range strings.Split(message, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(c.wrap(line, indent))
	}
	b.WriteByte('\n')

	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = io.WriteString(c.out, b.String())
}

func (c *Console) wrap(line, indent string) string {
	if c.width <= len(indent) || len(indent)+len(line) <= c.width {
		return line
	}
	wrapped := textutil.Wrap(line, c.width-len(indent))
	if len(wrapped) == 0 {
		return line
	}
	return strings.Join(wrapped, "\n"+indent)
}

// Writef formats according to a format specifier and writes the result.
func (c *Console) Writef(category Category, format string, args ...any) {
	c.Write(fmt.Sprintf(format, args...), category)
}

// Print writes the operands without a category, separated by spaces.
func (c *Console) Print(a ...any) {
	c.Write(strings.TrimSuffix(fmt.Sprintln(a...), "\n"), None)
}
