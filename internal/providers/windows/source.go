package windows

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"unicode"

	"github.com/EugeneDevastator/TraVis/internal/log"
)

// DefaultCommand lists top-level X11 windows as "<id> <desktop> <host> <title>".
var DefaultCommand = []string{"wmctrl", "-l"}

// DefaultSkipFields is the number of leading columns wmctrl prints before the
// title.
const DefaultSkipFields = 3

// WindowSource enumerates window titles.
type WindowSource interface {
	Titles(ctx context.Context) ([]string, error)
}

// Static is a fixed title list.
type Static []string

// Titles implements WindowSource.
func (s Static) Titles(context.Context) ([]string, error) {
	return append([]string(nil), s...), nil
}

// CommandSource runs an external command and reads one window per output line.
type CommandSource struct {
	Command    []string
	SkipFields int
}

// NewCommandSource creates a source for command. An empty command uses
// DefaultCommand.
func NewCommandSource(command []string, skipFields int) *CommandSource {
	if len(command) == 0 {
		command = DefaultCommand
	}
	return &CommandSource{Command: command, SkipFields: skipFields}
}

// Titles implements WindowSource. A missing executable is not an error: there
// is simply no window list on this host.
func (c *CommandSource) Titles(ctx context.Context) ([]string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Command[0], c.Command[1:]...) //nolint:gosec // command comes from user config
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			log.Warn(log.CatProvider, "Window list command not found", "command", c.Command[0])
			return []string{}, nil
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", c.Command[0], err, msg)
		}
		return nil, fmt.Errorf("%s: %w", c.Command[0], err)
	}

	titles := []string{}
	scanner := bufio.NewScanner(&stdout)
	for scanner.Scan() {
		title := strings.TrimSpace(skipFields(scanner.Text(), c.SkipFields))
		if title != "" {
			titles = append(titles, title)
		}
	}
	return titles, scanner.Err()
}

// skipFields drops the first n whitespace separated fields of line and keeps
// the remainder verbatim.
func skipFields(line string, n int) string {
	rest := line
	for range n {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		i := strings.IndexFunc(rest, unicode.IsSpace)
		if i < 0 {
			return ""
		}
		rest = rest[i:]
	}
	return rest
}
