package nav

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/EugeneDevastator/TraVis/internal/log"
)

// ErrStep wraps every provider failure returned by the navigator.
var ErrStep = errors.New("provider step failed")

// Cursor is the surface front ends drive. Calls must be serialised by the
// caller.
type Cursor interface {
	CurrentView(ctx context.Context) (NodeView, error)
	Advance(ctx context.Context, input string) (NodeView, error)
	Active() ProviderID
}

var _ Cursor = (*Navigator)(nil)

// Navigator is the single cursor over a fixed provider registry. Its only
// mutable state is the active provider id.
type Navigator struct {
	providers map[ProviderID]Provider
	parentOf  map[ProviderID]ProviderID
	childOf   map[ProviderID]ProviderID
	separator string
	active    ProviderID
}

// Active returns the id of the provider the cursor is on.
func (n *Navigator) Active() ProviderID {
	return n.active
}

// Provider looks up a registered provider.
func (n *Navigator) Provider(id ProviderID) (Provider, bool) {
	p, ok := n.providers[id]
	return p, ok
}

// Providers returns every registered id, sorted.
func (n *Navigator) Providers() []ProviderID {
	ids := make([]ProviderID, 0, len(n.providers))
	for id := range n.providers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ParentOf returns the configured ascent target of id.
func (n *Navigator) ParentOf(id ProviderID) (ProviderID, bool) {
	p, ok := n.parentOf[id]
	return p, ok
}

// ChildOf returns the configured descent target of id.
func (n *Navigator) ChildOf(id ProviderID) (ProviderID, bool) {
	c, ok := n.childOf[id]
	return c, ok
}

// Separator returns the separator appended to descent rebase strings.
func (n *Navigator) Separator() string {
	return n.separator
}

// CurrentView queries the active provider without moving.
func (n *Navigator) CurrentView(ctx context.Context) (NodeView, error) {
	view, err := n.providers[n.active].Step(ctx, "")
	if err != nil {
		return NodeView{}, fmt.Errorf("%w: %s: %w", ErrStep, n.active, err)
	}
	return view, nil
}

// Advance performs one step on the active provider and resolves any
// cross-provider transition. The active id changes at most once per call and
// never when the provider step fails.
//
// The returned view is the provider's own step result when the cursor stayed
// inside or moved. When an ascent or descent has no target the cursor stays and
// the active provider's current view is returned. Dynamic resolution only
// moves to a registered provider other than the active one; an EndChild naming
// the active provider itself is treated as no target.
func (n *Navigator) Advance(ctx context.Context, input string) (NodeView, error) {
	from := n.active
	result, err := n.providers[from].Step(ctx, input)
	if err != nil {
		log.ErrorErr(log.CatNav, "Step failed", err, "provider", from, "input", input)
		return NodeView{}, fmt.Errorf("%w: %s: %w", ErrStep, from, err)
	}

	switch result.Kind {
	case KindRootParent:
		parent, ok := n.parentOf[from]
		if !ok {
			log.Debug(log.CatNav, "No parent configured, staying", "provider", from)
			return n.CurrentView(ctx)
		}
		n.providers[parent].Rebase(result.Name)
		n.moveTo(parent, "ascend", input)
		return result, nil

	case KindEndChild:
		if child, ok := n.childOf[from]; ok {
			n.providers[child].Rebase(input + n.separator)
			n.moveTo(child, "descend", input)
			return result, nil
		}
		target := result.ProviderType
		if _, ok := n.providers[target]; ok && target != from {
			n.providers[target].Rebase(result.Name)
			n.moveTo(target, "resolve", input)
			return result, nil
		}
		log.Debug(log.CatNav, "No child resolved, staying", "provider", from, "type", target)
		return n.CurrentView(ctx)

	default:
		return result, nil
	}
}

func (n *Navigator) moveTo(id ProviderID, how, input string) {
	log.Debug(log.CatNav, "Cursor moved", "from", n.active, "to", id, "via", how, "input", input)
	n.active = id
}
