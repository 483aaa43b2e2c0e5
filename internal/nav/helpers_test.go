package nav_test

import (
	"context"
	"sort"
	"strings"

	"github.com/EugeneDevastator/TraVis/internal/nav"
)

// listProvider is a single-level namespace: children are plain names, names in
// ends hand off to another namespace.
type listProvider struct {
	id       nav.ProviderID
	name     string
	children []string
	ends     map[string]bool
	rebases  []string
}

func newList(id nav.ProviderID, name string, children ...string) *listProvider {
	ends := make(map[string]bool, len(children))
	for _, c := range children {
		ends[c] = true
	}
	return &listProvider{id: id, name: name, children: children, ends: ends}
}

func (p *listProvider) Type() nav.ProviderID { return p.id }

func (p *listProvider) Rebase(spec string) { p.rebases = append(p.rebases, spec) }

func (p *listProvider) Step(_ context.Context, input string) (nav.NodeView, error) {
	switch {
	case input == nav.ParentToken:
		return nav.RootParent(p.id, p.name, p.children), nil
	case p.ends[input]:
		return nav.EndChild(p.id, input), nil
	default:
		return nav.Inside(p.id, p.name, p.children), nil
	}
}

// treeProvider is an in-memory folder tree keyed by backslash paths such as
// `C:\` or `C:\Users`. Values are child names; a missing key is a file.
type treeProvider struct {
	id      nav.ProviderID
	dirs    map[string][]string
	path    string
	rebases []string
}

func newTree(id nav.ProviderID, dirs map[string][]string) *treeProvider {
	return &treeProvider{id: id, dirs: dirs}
}

func (p *treeProvider) Type() nav.ProviderID { return p.id }

func (p *treeProvider) Rebase(spec string) {
	p.rebases = append(p.rebases, spec)
	if strings.HasSuffix(spec, `\`) && !strings.HasSuffix(spec, `:\`) {
		spec = strings.TrimSuffix(spec, `\`) + `:\`
	}
	p.path = spec
}

func (p *treeProvider) isRoot() bool {
	return strings.HasSuffix(p.path, `:\`)
}

func (p *treeProvider) view() nav.NodeView {
	children := append([]string(nil), p.dirs[p.path]...)
	sort.Strings(children)
	return nav.Inside(p.id, p.path, children)
}

func (p *treeProvider) join(name string) string {
	if p.isRoot() {
		return p.path + name
	}
	return p.path + `\` + name
}

func (p *treeProvider) Step(_ context.Context, input string) (nav.NodeView, error) {
	switch input {
	case "":
		return p.view(), nil
	case nav.ParentToken:
		if p.isRoot() {
			return nav.RootParent(p.id, p.path, p.dirs[p.path]), nil
		}
		i := strings.LastIndex(p.path, `\`)
		parent := p.path[:i]
		if strings.HasSuffix(parent, ":") {
			parent += `\`
		}
		p.path = parent
		return p.view(), nil
	}
	for _, c := range p.dirs[p.path] {
		if c != input {
			continue
		}
		full := p.join(input)
		if _, isDir := p.dirs[full]; !isDir {
			return nav.EndChild(p.id, full), nil
		}
		p.path = full
		return p.view(), nil
	}
	return p.view(), nil
}
