// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"} // Entry names
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"} // Provider ids, counts
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#696969"} // Hints, help bar, empty states

	// Semantic color names - Border
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	// Kind accents
	KindInsideColor     = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	KindRootParentColor = lipgloss.AdaptiveColor{Light: "#FF9F43", Dark: "#FF9F43"}
	KindEndChildColor   = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	// Selection indicator color (used for ">" prefix in the listing)
	SelectionIndicatorColor = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}

	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextPrimaryColor)

	ProviderStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor)

	EntryStyle = lipgloss.NewStyle().
			Foreground(TextPrimaryColor)

	SelectedEntryStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(BorderFocusColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)

	FrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderDefaultColor).
			Padding(0, 1)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	// Error display
	ErrorStyle = lipgloss.NewStyle().
			Foreground(StatusErrorColor).
			Bold(true).
			Padding(0, 1)
)
