// Package repl is the line-oriented front end: it prints the current view and
// reads cd commands until exit or end of input.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/EugeneDevastator/TraVis/internal/log"
	"github.com/EugeneDevastator/TraVis/internal/nav"
	"github.com/EugeneDevastator/TraVis/internal/presentation"
)

const (
	// Banner is printed once when the loop starts.
	Banner = "Universal Tree Navigator"
	// Prompt is printed after every listing.
	Prompt = "Enter command (cd <name>, cd .., exit):"

	// DefaultTimeout bounds every cursor call.
	DefaultTimeout = 10 * time.Second
)

// CommandKind classifies an input line.
type CommandKind int

const (
	CommandUnknown CommandKind = iota
	CommandCd
	CommandExit
)

// Command is a parsed input line.
type Command struct {
	Kind CommandKind
	Arg  string
}

// ParseCommand reads one line. "exit" and the "cd " prefix are matched
// case-insensitively; anything else is unknown.
func ParseCommand(line string) Command {
	trimmed := strings.TrimSpace(line)
	if strings.EqualFold(trimmed, "exit") {
		return Command{Kind: CommandExit}
	}
	if len(trimmed) > 3 && strings.EqualFold(trimmed[:3], "cd ") {
		if arg := strings.TrimSpace(trimmed[3:]); arg != "" {
			return Command{Kind: CommandCd, Arg: arg}
		}
	}
	return Command{Kind: CommandUnknown, Arg: trimmed}
}

// Loop drives a cursor from line input.
type Loop struct {
	cursor  nav.Cursor
	in      io.Reader
	out     io.Writer
	format  *presentation.Formatter
	timeout time.Duration
}

// Option configures a Loop.
type Option func(*Loop)

// WithTimeout bounds each cursor call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(l *Loop) {
		l.timeout = d
	}
}

// New creates a loop over cursor.
func New(cursor nav.Cursor, in io.Reader, out io.Writer, opts ...Option) *Loop {
	l := &Loop{
		cursor:  cursor,
		in:      in,
		out:     out,
		format:  presentation.NewFormatter(out),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run prints and reads until exit, end of input or ctx is done. Provider
// failures are printed and the loop continues.
func (l *Loop) Run(ctx context.Context) error {
	if _, err := fmt.Fprintln(l.out, Banner); err != nil {
		return err
	}

	scanner := bufio.NewScanner(l.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := l.show(ctx); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(l.out, "\n%s\n", Prompt); err != nil {
			return err
		}

		if !scanner.Scan() {
			return scanner.Err()
		}

		cmd := ParseCommand(scanner.Text())
		switch cmd.Kind {
		case CommandExit:
			log.Debug(log.CatRepl, "Exit requested")
			return nil
		case CommandCd:
			if err := l.advance(ctx, cmd.Arg); err != nil {
				return err
			}
		default:
			log.Debug(log.CatRepl, "Ignoring unknown command", "line", cmd.Arg)
		}
	}
}

func (l *Loop) show(ctx context.Context) error {
	callCtx, cancel := l.callContext(ctx)
	defer cancel()

	view, err := l.cursor.CurrentView(callCtx)
	if err != nil {
		return l.report(err)
	}
	return l.format.FormatListing(view)
}

func (l *Loop) advance(ctx context.Context, input string) error {
	callCtx, cancel := l.callContext(ctx)
	defer cancel()

	if _, err := l.cursor.Advance(callCtx, input); err != nil {
		return l.report(err)
	}
	log.Debug(log.CatRepl, "Advanced", "input", input, "active", l.cursor.Active())
	return nil
}

// report prints a provider failure. Only a failed write is returned.
func (l *Loop) report(err error) error {
	log.ErrorErr(log.CatRepl, "Cursor call failed", err)
	_, werr := fmt.Fprintf(l.out, "error: %v\n", err)
	return werr
}

func (l *Loop) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if l.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, l.timeout)
}
