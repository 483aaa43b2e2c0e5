package nav

import "fmt"

// ParentToken is the step input that asks for the parent node.
const ParentToken = ".."

// ProviderID identifies a provider inside a Navigator registry. It doubles as the
// ProviderType of every view the provider produces.
type ProviderID string

// Kind classifies the outcome of a single provider step.
type Kind int

const (
	// KindInside means the step resolved within the current provider.
	KindInside Kind = iota
	// KindRootParent means the step requested ascent past the provider's own root.
	KindRootParent
	// KindEndChild means the step resolved to the root of a different namespace.
	KindEndChild
)

func (k Kind) String() string {
	switch k {
	case KindInside:
		return "inside"
	case KindRootParent:
		return "root-parent"
	case KindEndChild:
		return "end-child"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// NodeView is the result of any step.
//
// Children is meaningful only for KindInside. An EndChild view never carries
// children.
type NodeView struct {
	Name         string
	Children     []string
	Kind         Kind
	ProviderType ProviderID
}

// Inside builds an in-provider view.
func Inside(id ProviderID, name string, children []string) NodeView {
	return NodeView{Name: name, Children: children, Kind: KindInside, ProviderType: id}
}

// RootParent builds a view that asks the navigator to ascend.
func RootParent(id ProviderID, name string, children []string) NodeView {
	return NodeView{Name: name, Children: children, Kind: KindRootParent, ProviderType: id}
}

// EndChild builds a view that hands the cursor to another namespace. Children are
// always dropped.
func EndChild(id ProviderID, name string) NodeView {
	return NodeView{Name: name, Children: []string{}, Kind: KindEndChild, ProviderType: id}
}
