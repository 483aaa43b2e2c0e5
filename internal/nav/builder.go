package nav

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Builder errors
var (
	ErrNilProvider        = errors.New("provider cannot be nil")
	ErrNoProviders        = errors.New("navigator needs at least one provider")
	ErrDuplicateProvider  = errors.New("duplicate provider id")
	ErrUnknownProvider    = errors.New("provider id is not registered")
	ErrUnregisteredBranch = errors.New("composite branch is not registered")
	ErrNoStart            = errors.New("navigator start provider is not set")
)

// Builder collects the registry and adjacency tables and validates them once in
// Build.
type Builder struct {
	order     []ProviderID
	providers map[ProviderID]Provider
	parentOf  map[ProviderID]ProviderID
	childOf   map[ProviderID]ProviderID
	start     ProviderID
	separator string
	errs      []error
}

// NewBuilder creates an empty builder using the OS path separator for descent
// rebases.
func NewBuilder() *Builder {
	return &Builder{
		providers: make(map[ProviderID]Provider),
		parentOf:  make(map[ProviderID]ProviderID),
		childOf:   make(map[ProviderID]ProviderID),
		separator: string(filepath.Separator),
	}
}

// Register adds a provider under its own Type().
func (b *Builder) Register(p Provider) *Builder {
	if p == nil {
		b.errs = append(b.errs, ErrNilProvider)
		return b
	}
	id := p.Type()
	if _, exists := b.providers[id]; exists {
		b.errs = append(b.errs, fmt.Errorf("%w: %q", ErrDuplicateProvider, id))
		return b
	}
	b.providers[id] = p
	b.order = append(b.order, id)
	return b
}

// Parent declares that ascending past the root of of lands on parent.
func (b *Builder) Parent(of, parent ProviderID) *Builder {
	b.parentOf[of] = parent
	return b
}

// Child declares that an EndChild result from of descends into child.
func (b *Builder) Child(of, child ProviderID) *Builder {
	b.childOf[of] = child
	return b
}

// Start sets the provider the cursor starts on.
func (b *Builder) Start(id ProviderID) *Builder {
	b.start = id
	return b
}

// Separator sets the namespace separator appended to the step text when
// rebasing a statically configured child.
func (b *Builder) Separator(sep string) *Builder {
	b.separator = sep
	return b
}

// Build validates the configuration and creates the navigator.
func (b *Builder) Build() (*Navigator, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	if len(b.providers) == 0 {
		return nil, ErrNoProviders
	}
	if b.start == "" {
		return nil, ErrNoStart
	}
	if _, ok := b.providers[b.start]; !ok {
		return nil, fmt.Errorf("%w: start %q", ErrUnknownProvider, b.start)
	}
	if err := b.checkAdjacency("parent", b.parentOf); err != nil {
		return nil, err
	}
	if err := b.checkAdjacency("child", b.childOf); err != nil {
		return nil, err
	}
	for _, id := range b.order {
		br, ok := b.providers[id].(Brancher)
		if !ok {
			continue
		}
		for _, branch := range br.BranchTypes() {
			if _, registered := b.providers[branch]; !registered || branch == id {
				return nil, fmt.Errorf("%w: %q in composite %q", ErrUnregisteredBranch, branch, id)
			}
		}
	}

	n := &Navigator{
		providers: make(map[ProviderID]Provider, len(b.providers)),
		parentOf:  make(map[ProviderID]ProviderID, len(b.parentOf)),
		childOf:   make(map[ProviderID]ProviderID, len(b.childOf)),
		separator: b.separator,
		active:    b.start,
	}
	for id, p := range b.providers {
		n.providers[id] = p
	}
	for k, v := range b.parentOf {
		n.parentOf[k] = v
	}
	for k, v := range b.childOf {
		n.childOf[k] = v
	}
	return n, nil
}

func (b *Builder) checkAdjacency(table string, m map[ProviderID]ProviderID) error {
	for from, to := range m {
		if _, ok := b.providers[from]; !ok {
			return fmt.Errorf("%w: %s of %q", ErrUnknownProvider, table, from)
		}
		if _, ok := b.providers[to]; !ok {
			return fmt.Errorf("%w: %s %q of %q", ErrUnknownProvider, table, to, from)
		}
	}
	return nil
}
