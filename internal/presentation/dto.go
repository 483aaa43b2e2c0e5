// Package presentation renders cursor views for one-shot and line-oriented
// output.
package presentation

import "github.com/EugeneDevastator/TraVis/internal/nav"

// ViewDTO is the serialisable form of a view and the provider it came from.
type ViewDTO struct {
	Active       string   `json:"active"`
	Name         string   `json:"name"`
	Kind         string   `json:"kind"`
	ProviderType string   `json:"provider_type"`
	Children     []string `json:"children"` // always present, empty when not listable
}

// FromView converts a view. Children are dropped for anything but an inside
// view.
func FromView(active nav.ProviderID, view nav.NodeView) ViewDTO {
	children := []string{}
	if view.Kind == nav.KindInside && len(view.Children) > 0 {
		children = append(children, view.Children...)
	}
	return ViewDTO{
		Active:       string(active),
		Name:         view.Name,
		Kind:         view.Kind.String(),
		ProviderType: string(view.ProviderType),
		Children:     children,
	}
}
