package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/EugeneDevastator/TraVis/internal/nav"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatView writes dto as indented JSON.
func (f *Formatter) FormatView(dto ViewDTO) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(dto)
}

// FormatListing writes the plain text listing used by the command loop:
//
//	Current: <name>
//	Contents:
//	  <child>
func (f *Formatter) FormatListing(view nav.NodeView) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Current: %s\n", view.Name)
	b.WriteString("Contents:\n")
	for _, child := range view.Children {
		fmt.Fprintf(&b, "  %s\n", child)
	}
	_, err := io.WriteString(f.writer, b.String())
	return err
}
