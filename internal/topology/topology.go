// Package topology turns the configured provider topology into a Navigator.
package topology

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/afero"

	"github.com/EugeneDevastator/TraVis/internal/cachemanager"
	"github.com/EugeneDevastator/TraVis/internal/config"
	"github.com/EugeneDevastator/TraVis/internal/log"
	"github.com/EugeneDevastator/TraVis/internal/nav"
	"github.com/EugeneDevastator/TraVis/internal/providers/disk"
	"github.com/EugeneDevastator/TraVis/internal/providers/folder"
	"github.com/EugeneDevastator/TraVis/internal/providers/windows"
)

var (
	ErrUnknownKind    = errors.New("unknown provider kind")
	ErrCompositeCycle = errors.New("composite contains itself")
	ErrUnknownBranch  = errors.New("composite branch is not declared")
)

// Deps are the collaborators shared by every provider of a kind.
type Deps struct {
	Fs         afero.Fs
	FileSystem config.FileSystemConfig
	Volumes    disk.VolumeSource
	Windows    windows.WindowSource
	Cache      cachemanager.Cache[[]string]
	CacheTTL   time.Duration
}

// DepsFromConfig wires the production sources: the mount table (or a fixed
// volume list) read through fsys and the window command (or a fixed title list).
func DepsFromConfig(cfg config.Config, fsys afero.Fs) Deps {
	deps := Deps{
		Fs:         fsys,
		FileSystem: cfg.FileSystem,
		CacheTTL:   cfg.Cache.TTL,
	}

	if len(cfg.Disk.Volumes) > 0 {
		deps.Volumes = disk.Static(cfg.Disk.Volumes)
	} else {
		deps.Volumes = disk.NewMountTable(fsys, cfg.Disk.MountsFile)
	}

	if len(cfg.Windows.Titles) > 0 {
		deps.Windows = windows.Static(cfg.Windows.Titles)
	} else {
		deps.Windows = windows.NewCommandSource(cfg.Windows.Command, cfg.Windows.SkipFields)
	}

	if cfg.Cache.TTL > 0 {
		deps.Cache = cachemanager.NewInMemory[[]string]("enumerations", cfg.Cache.TTL, cachemanager.DefaultCleanupInterval)
	}
	return deps
}

// Build creates every declared provider, registers it with its adjacency and
// returns the navigator positioned on topo.Start.
func Build(topo config.TopologyConfig, deps Deps) (*nav.Navigator, error) {
	b := &builder{
		deps:     deps,
		decls:    make(map[string]config.ProviderConfig, len(topo.Providers)),
		built:    make(map[string]nav.Provider, len(topo.Providers)),
		visiting: make(map[string]bool),
	}
	for _, p := range topo.Providers {
		if _, dup := b.decls[p.ID]; dup {
			return nil, fmt.Errorf("%w: %q", nav.ErrDuplicateProvider, p.ID)
		}
		b.decls[p.ID] = p
	}

	nb := nav.NewBuilder().Start(nav.ProviderID(topo.Start))
	if deps.FileSystem.Separator != "" {
		nb.Separator(deps.FileSystem.Separator)
	}

	for _, decl := range topo.Providers {
		p, err := b.provider(decl.ID)
		if err != nil {
			return nil, err
		}
		nb.Register(p)
		if decl.Parent != "" {
			nb.Parent(nav.ProviderID(decl.ID), nav.ProviderID(decl.Parent))
		}
		if decl.Child != "" {
			nb.Child(nav.ProviderID(decl.ID), nav.ProviderID(decl.Child))
		}
	}

	n, err := nb.Build()
	if err != nil {
		return nil, fmt.Errorf("building navigator: %w", err)
	}
	log.Info(log.CatConfig, "Topology built", "providers", len(topo.Providers), "start", topo.Start)
	return n, nil
}

type builder struct {
	deps     Deps
	decls    map[string]config.ProviderConfig
	built    map[string]nav.Provider
	visiting map[string]bool
}

// provider returns the single instance for id, building composites after
// their branches.
func (b *builder) provider(id string) (nav.Provider, error) {
	if p, ok := b.built[id]; ok {
		return p, nil
	}
	decl := b.decls[id]
	pid := nav.ProviderID(id)

	var p nav.Provider
	switch decl.Kind {
	case config.KindDisk:
		p = disk.New(b.deps.Volumes, disk.WithID(pid), disk.WithCache(b.deps.Cache, b.deps.CacheTTL))
	case config.KindWindows:
		p = windows.New(b.deps.Windows, windows.WithID(pid), windows.WithCache(b.deps.Cache, b.deps.CacheTTL))
	case config.KindFileSystem:
		p = folder.New(b.deps.Fs,
			folder.WithID(pid),
			folder.WithStartPath(b.deps.FileSystem.StartPath),
			folder.WithShowHidden(b.deps.FileSystem.ShowHidden),
		)
	case config.KindComposite:
		if b.visiting[id] {
			return nil, fmt.Errorf("%w: %q", ErrCompositeCycle, id)
		}
		b.visiting[id] = true
		branches := make([]nav.Provider, 0, len(decl.Branches))
		for _, branchID := range decl.Branches {
			if _, ok := b.decls[branchID]; !ok {
				return nil, fmt.Errorf("%w: %q in composite %q", ErrUnknownBranch, branchID, id)
			}
			branch, err := b.provider(branchID)
			if err != nil {
				return nil, err
			}
			branches = append(branches, branch)
		}
		delete(b.visiting, id)
		p = nav.NewComposite(pid, branches...)
	default:
		return nil, fmt.Errorf("%w: %q for provider %q", ErrUnknownKind, decl.Kind, id)
	}

	b.built[id] = p
	return p, nil
}
