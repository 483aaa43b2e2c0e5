// Package folder provides a folder-tree namespace over an afero filesystem.
package folder

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/EugeneDevastator/TraVis/internal/log"
	"github.com/EugeneDevastator/TraVis/internal/nav"
)

// DefaultID is the registry id used when none is configured.
const DefaultID nav.ProviderID = "FileSystem"

// Provider walks a directory tree. Directories are entered in place, a file
// answers EndChild with its full path, and ".." at the filesystem root asks
// for the parent namespace.
type Provider struct {
	id         nav.ProviderID
	fs         afero.Fs
	path       string
	showHidden bool
}

var _ nav.Provider = (*Provider)(nil)

// Option configures a Provider.
type Option func(*Provider)

// WithID overrides DefaultID.
func WithID(id nav.ProviderID) Option {
	return func(p *Provider) {
		p.id = id
	}
}

// WithStartPath sets the initial directory. It is normalised like a rebase.
func WithStartPath(path string) Option {
	return func(p *Provider) {
		p.path = normalize(path)
	}
}

// WithShowHidden lists dot-prefixed entries.
func WithShowHidden(show bool) Option {
	return func(p *Provider) {
		p.showHidden = show
	}
}

// New creates a folder-tree provider over fsys, starting at the filesystem root.
func New(fsys afero.Fs, opts ...Option) *Provider {
	p := &Provider{
		id:   DefaultID,
		fs:   fsys,
		path: rootPath(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Type implements nav.Provider.
func (p *Provider) Type() nav.ProviderID {
	return p.id
}

// Path returns the current directory.
func (p *Provider) Path() string {
	return p.path
}

// Rebase implements nav.Provider. Relative specs are anchored at the
// filesystem root; the path is not checked until the next step.
func (p *Provider) Rebase(rootSpec string) {
	p.path = normalize(rootSpec)
	log.Debug(log.CatProvider, "Folder rebased", "provider", p.id, "spec", rootSpec, "path", p.path)
}

// Step implements nav.Provider.
func (p *Provider) Step(_ context.Context, input string) (nav.NodeView, error) {
	switch input {
	case "":
		return p.viewOf(p.path, nav.KindInside)
	case nav.ParentToken:
		if isRoot(p.path) {
			return p.viewOf(p.path, nav.KindRootParent)
		}
		return p.enter(filepath.Dir(p.path))
	}

	target := input
	if !filepath.IsAbs(target) {
		target = filepath.Join(p.path, input)
	}
	target = filepath.Clean(target)

	info, err := p.fs.Stat(target)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return p.viewOf(p.path, nav.KindInside)
	case err != nil:
		return nav.NodeView{}, fmt.Errorf("stat %s: %w", target, err)
	case !info.IsDir():
		return nav.EndChild(p.id, target), nil
	default:
		return p.enter(target)
	}
}

// enter lists dir and moves there only if the listing succeeds.
func (p *Provider) enter(dir string) (nav.NodeView, error) {
	view, err := p.viewOf(dir, nav.KindInside)
	if err != nil {
		return nav.NodeView{}, err
	}
	p.path = dir
	return view, nil
}

func (p *Provider) viewOf(dir string, kind nav.Kind) (nav.NodeView, error) {
	children, err := p.list(dir)
	if err != nil {
		return nav.NodeView{}, err
	}
	if kind == nav.KindRootParent {
		return nav.RootParent(p.id, dir, children), nil
	}
	return nav.Inside(p.id, dir, children), nil
}

func (p *Provider) list(dir string) ([]string, error) {
	infos, err := afero.ReadDir(p.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		name := info.Name()
		if !p.showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

func rootPath() string {
	return string(filepath.Separator)
}

func isRoot(path string) bool {
	return filepath.Dir(path) == path
}

func normalize(spec string) string {
	if spec == "" {
		return rootPath()
	}
	if !filepath.IsAbs(spec) {
		spec = filepath.Join(rootPath(), spec)
	}
	return filepath.Clean(spec)
}
