// Package log provides levelled, categorised file logging for travis.
// Logging is off until Init is called, which the CLI does only with --debug or
// TRAVIS_DEBUG set.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/EugeneDevastator/TraVis/internal/pubsub"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a case-insensitive level name to a Level. Unknown names map
// to LevelDebug.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	default:
		return LevelDebug
	}
}

// Category groups related log messages.
type Category string

const (
	CatNav      Category = "nav"      // Cursor moves and transition resolution
	CatProvider Category = "provider" // Leaf provider enumeration
	CatConfig   Category = "config"   // Configuration loading and topology building
	CatWatcher  Category = "watcher"  // Directory watcher events
	CatUI       Category = "ui"       // TUI updates
	CatCache    Category = "cache"    // Enumeration cache
	CatTrace    Category = "trace"    // Tracing setup and export
	CatRepl     Category = "repl"     // Line-oriented command loop
)

// Logger writes one line per entry and mirrors each line to a broker.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	closer   io.Closer
	minLevel Level
	broker   *pubsub.Broker[string]
	now      func() time.Time
}

var (
	stdMu sync.RWMutex
	std   *Logger
)

func current() *Logger {
	stdMu.RLock()
	defer stdMu.RUnlock()
	return std
}

func install(l *Logger) {
	stdMu.Lock()
	old := std
	std = l
	stdMu.Unlock()
	if old != nil && old.broker != nil {
		old.broker.Close()
	}
}

// Init opens path for appending and makes it the log destination.
// The returned function closes the file and disables logging.
func Init(path string) (func(), error) {
	f, err := tea.LogToFile(path, "")
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	install(&Logger{
		out:    f,
		closer: f,
		broker: pubsub.NewBroker[string](),
		now:    time.Now,
	})
	return func() {
		install(nil)
		_ = f.Close()
	}, nil
}

// InitWriter logs to w. Intended for tests and for piping logs elsewhere.
func InitWriter(w io.Writer) func() {
	install(&Logger{
		out:    w,
		broker: pubsub.NewBroker[string](),
		now:    time.Now,
	})
	return func() { install(nil) }
}

// SetMinLevel drops entries below level.
func SetMinLevel(level Level) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.minLevel = level
		l.mu.Unlock()
	}
}

// Enabled reports whether a destination is installed.
func Enabled() bool {
	return current() != nil
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	write(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	write(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	write(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	write(LevelError, cat, msg, fields...)
}

// ErrorErr logs at error level with err appended as the "error" field.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	val := "<nil>"
	if err != nil {
		val = err.Error()
	}
	write(LevelError, cat, msg, append(fields, "error", val)...)
}

func write(level Level, cat Category, msg string, fields ...any) {
	l := current()
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.minLevel {
		return
	}

	// 2026-01-02T15:04:05 [INFO] [nav] message key=value
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] [%s] %s", l.now().Format("2006-01-02T15:04:05"), level, cat, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&b, " %v=%v", fields[i], fields[i+1])
	}
	if len(fields)%2 != 0 {
		fmt.Fprintf(&b, " %v=<missing>", fields[len(fields)-1])
	}
	line := b.String()

	_, _ = io.WriteString(l.out, line+"\n")
	l.broker.Publish(pubsub.TopicLog, line)
}

// NewListener streams log lines into a Bubble Tea program. It returns nil when
// logging is disabled.
func NewListener(ctx context.Context) *pubsub.Listener[string] {
	l := current()
	if l == nil {
		return nil
	}
	return pubsub.NewListener[string](ctx, l.broker)
}

// DebugEnabledFromEnv reports whether TRAVIS_DEBUG asks for logging.
func DebugEnabledFromEnv() bool {
	v := strings.ToLower(os.Getenv("TRAVIS_DEBUG"))
	return v != "" && v != "0" && v != "false"
}
