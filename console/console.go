// Package console is a leveled logger for user-facing messages. Messages at
// or above the logger's threshold are forwarded to a [lineio.Writer].
package console

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/bjaus/boxtable/lineio"
)

// ErrUnknownLevel is returned by ParseLevel.
var ErrUnknownLevel = errors.New("unknown level")

// Level orders message severity. Answer ranks highest so results are shown
// under any threshold.
type Level int

const (
	Info Level = iota
	Warn
	Error
	Answer
)

// DefaultLevel is the threshold used when none is configured.
const DefaultLevel = Warn

// String returns the four-letter level tag.
func (l Level) String() string {
	switch l {
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERRO"
	case Answer:
		return "ANSW"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Enabled reports whether a message at l passes threshold.
func (l Level) Enabled(threshold Level) bool { return l >= threshold }

// ParseLevel accepts level names case-insensitively: info, warn, error,
// answer, and the four-letter tags.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info":
		return Info, nil
	case "warn", "warning":
		return Warn, nil
	case "error", "erro":
		return Error, nil
	case "answer", "answ":
		return Answer, nil
	}
	return DefaultLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

type styles struct {
	warn, err, answer lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		warn:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		err:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		answer: r.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("4")),
	}
}

// Logger forwards messages to a line writer. It is not safe for concurrent
// use.
type Logger struct {
	w         lineio.Writer
	threshold Level
	styled    bool
	styles    styles
}

// Option configures a Logger.
type Option func(*Logger)

// WithStyle enables or disables lipgloss styling of prefixes and answers.
// Default: disabled.
func WithStyle(on bool) Option {
	return func(l *Logger) { l.styled = on }
}

// New returns a Logger writing to w.
func New(w lineio.Writer, threshold Level, opts ...Option) *Logger {
	l := &Logger{
		w:         w,
		threshold: threshold,
		styles:    newStyles(lipgloss.DefaultRenderer()),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Stderr returns a Logger writing to os.Stderr, styled when it is a
// terminal.
func Stderr(threshold Level) *Logger {
	l := New(lineio.NewWriter(os.Stderr), threshold, WithStyle(term.IsTerminal(int(os.Stderr.Fd()))))
	l.styles = newStyles(lipgloss.NewRenderer(os.Stderr))
	return l
}

// Threshold returns the minimum level that is forwarded.
func (l *Logger) Threshold() Level { return l.threshold }

// SetThreshold changes the minimum level that is forwarded.
func (l *Logger) SetThreshold(lvl Level) { l.threshold = lvl }

// Log forwards msg when lvl passes the threshold and returns the writer's
// error. Filtered messages return nil.
func (l *Logger) Log(lvl Level, msg string) error {
	if !lvl.Enabled(l.threshold) {
		return nil
	}
	return l.w.WriteLine(l.format(lvl, msg))
}

func (l *Logger) format(lvl Level, msg string) string {
	switch lvl {
	case Info:
		return "[INF]=>" + msg
	case Warn:
		return l.render(l.styles.warn, "[WAR]=>") + msg
	case Error:
		return l.render(l.styles.err, "[ERR]=>") + msg
	default:
		return l.render(l.styles.answer, msg)
	}
}

func (l *Logger) render(s lipgloss.Style, text string) string {
	if !l.styled {
		return text
	}
	return s.Render(text)
}

func (l *Logger) Info(msg string) error   { return l.Log(Info, msg) }
func (l *Logger) Warn(msg string) error   { return l.Log(Warn, msg) }
func (l *Logger) Error(msg string) error  { return l.Log(Error, msg) }
func (l *Logger) Answer(msg string) error { return l.Log(Answer, msg) }

// Infof formats according to a format specifier and logs at Info.
func (l *Logger) Infof(format string, args ...any) error {
	return l.Log(Info, fmt.Sprintf(format, args...))
}

// Warnf formats according to a format specifier and logs at Warn.
func (l *Logger) Warnf(format string, args ...any) error {
	return l.Log(Warn, fmt.Sprintf(format, args...))
}

// Errorf formats according to a format specifier and logs at Error.
func (l *Logger) Errorf(format string, args ...any) error {
	return l.Log(Error, fmt.Sprintf(format, args...))
}
