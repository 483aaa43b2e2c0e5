package markdown

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestNew_Styles(t *testing.T) {
	for _, style := range []string{"", StyleAuto, StyleDark, StyleLight, StyleNoTTY} {
		t.Run(style, func(t *testing.T) {
			r, err := New(60, style)
			require.NoError(t, err)
			require.Equal(t, 60, r.Width())
			if style == "" {
				require.Equal(t, StyleAuto, r.Style())
			}
		})
	}
}

func TestNew_UnknownStyle(t *testing.T) {
	_, err := New(60, "neon")
	require.ErrorContains(t, err, `unknown markdown style "neon"`)
}

func TestRender_KeepsText(t *testing.T) {
	r, err := New(60, StyleNoTTY)
	require.NoError(t, err)

	out, err := r.Render("# Keys\n\n- `enter` open entry\n")
	require.NoError(t, err)

	plain := ansi.Strip(out)
	require.Contains(t, plain, "Keys")
	require.Contains(t, plain, "enter")
	require.Contains(t, plain, "open entry")
}
