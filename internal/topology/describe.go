package topology

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/EugeneDevastator/TraVis/internal/config"
	"github.com/EugeneDevastator/TraVis/internal/nav"
	"github.com/EugeneDevastator/TraVis/internal/providers/disk"
	"github.com/EugeneDevastator/TraVis/internal/providers/folder"
	"github.com/EugeneDevastator/TraVis/internal/providers/windows"
)

// Summary is the resolved registry of a navigator.
type Summary struct {
	Active    string            `yaml:"active"`
	Separator string            `yaml:"separator"`
	Providers []ProviderSummary `yaml:"providers"`
}

// ProviderSummary describes one registry entry.
type ProviderSummary struct {
	ID       string   `yaml:"id"`
	Kind     string   `yaml:"kind"`
	Parent   string   `yaml:"parent,omitempty"`
	Child    string   `yaml:"child,omitempty"`
	Branches []string `yaml:"branches,omitempty"`
}

// Describe summarises n, providers sorted by id.
func Describe(n *nav.Navigator) Summary {
	s := Summary{
		Active:    string(n.Active()),
		Separator: n.Separator(),
	}
	for _, id := range n.Providers() {
		p, _ := n.Provider(id)
		ps := ProviderSummary{ID: string(id), Kind: kindOf(p)}
		if parent, ok := n.ParentOf(id); ok {
			ps.Parent = string(parent)
		}
		if child, ok := n.ChildOf(id); ok {
			ps.Child = string(child)
		}
		if br, ok := p.(nav.Brancher); ok {
			for _, t := range br.BranchTypes() {
				ps.Branches = append(ps.Branches, string(t))
			}
		}
		s.Providers = append(s.Providers, ps)
	}
	return s
}

// Encode writes s as YAML.
func Encode(w io.Writer, s Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}

func kindOf(p nav.Provider) string {
	switch p.(type) {
	case *nav.Composite:
		return config.KindComposite
	case *disk.Provider:
		return config.KindDisk
	case *folder.Provider:
		return config.KindFileSystem
	case *windows.Provider:
		return config.KindWindows
	default:
		return "custom"
	}
}
