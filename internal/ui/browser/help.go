package browser

import (
	"fmt"
	"strings"

	"github.com/EugeneDevastator/TraVis/internal/keys"
	"github.com/EugeneDevastator/TraVis/internal/log"
	"github.com/EugeneDevastator/TraVis/internal/ui/markdown"
)

// HelpMarkdown describes the key bindings and the step language.
func HelpMarkdown(km keys.KeyMap) string {
	var b strings.Builder
	b.WriteString("# Keys\n\n")
	b.WriteString("| Key | Action |\n|-----|--------|\n")
	for _, group := range km.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
		}
	}
	b.WriteString("\n# Stepping\n\n")
	b.WriteString("- An entry name enters it. `..` goes up one level.\n")
	b.WriteString("- Composite entries look like `0:Disk` and hand the cursor to that branch.\n")
	b.WriteString("- Going up from a provider's root moves to its configured parent.\n")
	return b.String()
}

func (m Model) renderHelp() string {
	md := HelpMarkdown(m.keys)
	r, err := markdown.New(m.innerWidth(), m.cfg.MarkdownStyle)
	if err != nil {
		log.Warn(log.CatUI, "Markdown renderer unavailable", "error", err)
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		log.Warn(log.CatUI, "Rendering help failed", "error", err)
		return md
	}
	return strings.TrimRight(out, "\n")
}
