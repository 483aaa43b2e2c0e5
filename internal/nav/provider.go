package nav

import "context"

// Provider is the capability every namespace implements, leaf or composite.
//
// Step advances the provider's position (or only queries it when input is empty)
// and reports the resulting view. Unrecognised input is never an error: the
// provider returns its current view unchanged with KindInside. A non-nil error is
// reserved for enumeration failures, and the provider must leave its position
// untouched when it returns one.
//
// Rebase resets the provider's position from an opaque string supplied during a
// cross-provider transition. Providers are free to ignore it.
type Provider interface {
	Step(ctx context.Context, input string) (NodeView, error)
	Rebase(rootSpec string)
	Type() ProviderID
}

// Brancher is implemented by providers that aggregate other providers. The
// Builder uses it to check that every branch is registered.
type Brancher interface {
	BranchTypes() []ProviderID
}
