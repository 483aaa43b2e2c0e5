// Package disk provides the volume-list namespace.
package disk

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/EugeneDevastator/TraVis/internal/cachemanager"
	"github.com/EugeneDevastator/TraVis/internal/log"
	"github.com/EugeneDevastator/TraVis/internal/nav"
)

const (
	// DefaultID is the registry id used when none is configured.
	DefaultID nav.ProviderID = "Disk"
	// ViewName labels every view of the volume list.
	ViewName = "Disks"

	cacheKey = "volumes"
)

// Provider lists volumes. It has a single level: ".." always asks for the
// parent and an exact volume name hands off to the next namespace.
type Provider struct {
	id      nav.ProviderID
	volumes *cachemanager.ReadThrough[[]string]
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

// New creates a volume-list provider over source.
func New(source VolumeSource, opts ...Option) *Provider {
	cfg := config{id: DefaultID}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Provider{
		id:      cfg.id,
		volumes: cachemanager.NewReadThrough[[]string](cfg.cache, cacheKey, cfg.ttl, source.Volumes),
	}
}

// Type implements nav.Provider.
func (p *Provider) Type() nav.ProviderID {
	return p.id
}

// Rebase implements nav.Provider. The volume list has no position.
func (p *Provider) Rebase(string) {}

// Refresh drops any cached enumeration.
func (p *Provider) Refresh(ctx context.Context) {
	p.volumes.Invalidate(ctx)
}

// Step implements nav.Provider. ".." always answers RootParent, with an empty
// listing when the volume source fails.
func (p *Provider) Step(ctx context.Context, input string) (nav.NodeView, error) {
	volumes, err := p.listVolumes(ctx)
	if input == nav.ParentToken {
		if err != nil {
			log.Warn(log.CatProvider, "Listing volumes failed, ascending anyway", "provider", p.id, "error", err)
			volumes = []string{}
		}
		return nav.RootParent(p.id, ViewName, volumes), nil
	}
	if err != nil {
		return nav.NodeView{}, err
	}

	if input != "" && slices.Contains(volumes, input) {
		log.Debug(log.CatProvider, "Volume selected", "provider", p.id, "volume", input)
		return nav.EndChild(p.id, input), nil
	}
	return nav.Inside(p.id, ViewName, volumes), nil
}

func (p *Provider) listVolumes(ctx context.Context) ([]string, error) {
	volumes, err := p.volumes.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing volumes: %w", err)
	}
	if volumes == nil {
		return []string{}, nil
	}
	return slices.Clone(volumes), nil
}
