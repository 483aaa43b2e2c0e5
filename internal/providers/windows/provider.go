// Package windows provides the flat list of open application windows.
package windows

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/EugeneDevastator/TraVis/internal/cachemanager"
	"github.com/EugeneDevastator/TraVis/internal/nav"
)

const (
	// DefaultID is the registry id used when none is configured.
	DefaultID nav.ProviderID = "Windows"
	// ViewName labels every view of the window list.
	ViewName = "Open Windows"

	cacheKey = "titles"
)

// Provider lists window titles. It has no descent: every input other than ".."
// answers the current list.
type Provider struct {
	id     nav.ProviderID
	titles *cachemanager.ReadThrough[[]string]
}

var _ nav.Provider = (*Provider)(nil)

// Option configures a Provider.
type Option func(*config)

type config struct {
	id    nav.ProviderID
	cache cachemanager.Cache[[]string]
	ttl   time.Duration
}

// WithID overrides DefaultID.
func WithID(id nav.ProviderID) Option {
	return func(c *config) {
		c.id = id
	}
}

// WithCache serves enumerations from cache for ttl.
func WithCache(cache cachemanager.Cache[[]string], ttl time.Duration) Option {
	return func(c *config) {
		c.cache = cache
		c.ttl = ttl
	}
}

// New creates a window-list provider over source.
func New(source WindowSource, opts ...Option) *Provider {
	cfg := config{id: DefaultID}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Provider{
		id:     cfg.id,
		titles: cachemanager.NewReadThrough[[]string](cfg.cache, cacheKey, cfg.ttl, source.Titles),
	}
}

// Type implements nav.Provider.
func (p *Provider) Type() nav.ProviderID {
	return p.id
}

// Rebase implements nav.Provider. The window list has no position.
func (p *Provider) Rebase(string) {}

// Refresh drops any cached enumeration.
func (p *Provider) Refresh(ctx context.Context) {
	p.titles.Invalidate(ctx)
}

// Step implements nav.Provider.
func (p *Provider) Step(ctx context.Context, input string) (nav.NodeView, error) {
	if input == nav.ParentToken {
		return nav.RootParent(p.id, ViewName, []string{}), nil
	}
	titles, err := p.titles.Get(ctx)
	if err != nil {
		return nav.NodeView{}, fmt.Errorf("listing windows: %w", err)
	}
	if titles == nil {
		titles = []string{}
	}
	return nav.Inside(p.id, ViewName, slices.Clone(titles)), nil
}
