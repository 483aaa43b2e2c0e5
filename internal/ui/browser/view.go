package browser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/EugeneDevastator/TraVis/internal/nav"
	"github.com/EugeneDevastator/TraVis/internal/ui/styles"
)

// chrome is the number of rows used by the header and the frame border.
const chrome = 3

// View renders the model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.mode == modeHelp {
		b.WriteString(m.frame(m.helpText))
	} else {
		b.WriteString(m.frame(m.renderEntries()))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(styles.TruncateString("error: "+m.err.Error(), max(m.width-2, 1))))
	}
	if m.mode == modePrompt {
		b.WriteString("\n")
		b.WriteString(m.input.View())
	}
	if m.cfg.ShowHelpBar && m.mode == modeBrowse {
		b.WriteString("\n")
		b.WriteString(styles.StatusBarStyle.Render(m.help.View(m.keys)))
	}
	return m.zones.Scan(b.String())
}

func (m Model) renderHeader() string {
	title := m.view.Name
	if title == "" {
		title = string(m.cfg.Cursor.Active())
	}
	parts := []string{styles.TitleStyle.Render(styles.TruncateString(title, max(m.width/2, 8)))}
	if m.cfg.ShowProvider {
		parts = append(parts, styles.ProviderStyle.Render("["+string(m.cfg.Cursor.Active())+"]"))
	}
	parts = append(parts, kindStyle(m.view.Kind).Render(m.view.Kind.String()))
	if n := len(m.view.Children); n > 0 {
		parts = append(parts, styles.MutedStyle.Render(fmt.Sprintf("%d/%d", m.selected+1, n)))
	}
	return strings.Join(parts, " ")
}

func (m Model) renderEntries() string {
	if len(m.view.Children) == 0 {
		return styles.MutedStyle.Render("(empty)")
	}

	width := m.innerWidth() - 2
	end := min(m.offset+m.listRows(), len(m.view.Children))
	lines := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		name := styles.TruncateString(m.view.Children[i], width)
		var line string
		if i == m.selected {
			line = styles.SelectionIndicatorStyle.Render(">") + " " + styles.SelectedEntryStyle.Render(name)
		} else {
			line = "  " + styles.EntryStyle.Render(name)
		}
		lines = append(lines, m.zones.Mark(m.entryZone(i), line))
	}
	return strings.Join(lines, "\n")
}

func (m Model) frame(content string) string {
	return styles.FrameStyle.Width(m.innerWidth() + 2).Render(content)
}

// innerWidth is the content width inside the frame border and padding.
func (m Model) innerWidth() int {
	return max(m.width-4, 1)
}

// listRows is the number of entries that fit on screen.
func (m Model) listRows() int {
	rows := m.height - chrome
	if m.cfg.ShowHelpBar {
		rows--
	}
	if m.err != nil {
		rows--
	}
	if m.mode == modePrompt {
		rows--
	}
	return max(rows, 1)
}

func (m Model) entryZone(i int) string {
	return m.prefix + strconv.Itoa(i)
}

func kindStyle(k nav.Kind) lipgloss.Style {
	switch k {
	case nav.KindRootParent:
		return lipgloss.NewStyle().Foreground(styles.KindRootParentColor)
	case nav.KindEndChild:
		return lipgloss.NewStyle().Foreground(styles.KindEndChildColor)
	default:
		return lipgloss.NewStyle().Foreground(styles.KindInsideColor)
	}
}
