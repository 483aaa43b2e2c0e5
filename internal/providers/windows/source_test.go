package windows

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSkipFields(t *testing.T) {
	tests := []struct {
		name string
		line string
		n    int
		want string
	}{
		{"wmctrl", "0x03a00003  0 host Editor - main.go", 3, " Editor - main.go"},
		{"keeps inner spacing", "0x1 0 host a  b", 3, " a  b"},
		{"too short", "0x1 0", 3, ""},
		{"no skip", "Terminal", 0, "Terminal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, skipFields(tt.line, tt.n))
		})
	}
}

func TestCommandSource_ParsesOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	src := NewCommandSource([]string{"sh", "-c", `printf '0x1  0 host Editor - main.go\n0x2 -1 host\n0x3 1 host Terminal\n'`}, DefaultSkipFields)

	titles, err := src.Titles(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Editor - main.go", "Terminal"}, titles)
}

func TestCommandSource_MissingBinary(t *testing.T) {
	src := NewCommandSource([]string{"travis-no-such-window-lister"}, DefaultSkipFields)

	titles, err := src.Titles(context.Background())
	require.NoError(t, err)
	require.Empty(t, titles)
}

func TestCommandSource_Failure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	src := NewCommandSource([]string{"sh", "-c", "echo 'Cannot open display' >&2; exit 1"}, DefaultSkipFields)

	_, err := src.Titles(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "Cannot open display")
}

func TestNewCommandSource_Default(t *testing.T) {
	src := NewCommandSource(nil, DefaultSkipFields)
	require.Equal(t, DefaultCommand, src.Command)
}
