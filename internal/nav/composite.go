package nav

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// selection is the composite's position: either no branch is selected or
// exactly one is.
type selection interface {
	isSelection()
}

type unselected struct{}

type selected struct {
	index int
}

func (unselected) isSelection() {}
func (selected) isSelection()   {}

// Composite aggregates an ordered list of providers behind one virtual root that
// lists each branch as "<index>:<type>".
//
// Selecting a branch is a one-shot handoff: the composite answers with an
// EndChild view naming the branch type and never forwards later steps into the
// branch. Ascending from a selected branch is intercepted by the composite and
// returns it to its index.
type Composite struct {
	id       ProviderID
	branches []Provider
	state    selection
}

// Compile-time checks.
var (
	_ Provider = (*Composite)(nil)
	_ Brancher = (*Composite)(nil)
)

// NewComposite creates a composite over branches in the given order.
func NewComposite(id ProviderID, branches ...Provider) *Composite {
	return &Composite{
		id:       id,
		branches: branches,
		state:    unselected{},
	}
}

// Type returns the composite's registry id.
func (c *Composite) Type() ProviderID {
	return c.id
}

// BranchTypes returns the declared type of every branch, in order.
func (c *Composite) BranchTypes() []ProviderID {
	types := make([]ProviderID, len(c.branches))
	for i, b := range c.branches {
		types[i] = b.Type()
	}
	return types
}

// Selected reports the selected branch index, or false when the composite shows
// its index.
func (c *Composite) Selected() (int, bool) {
	if s, ok := c.state.(selected); ok {
		return s.index, true
	}
	return 0, false
}

// Rebase always returns the composite to its index, whatever the argument.
func (c *Composite) Rebase(string) {
	c.state = unselected{}
}

// Step implements Provider. It never fails: branch contents are not queried.
func (c *Composite) Step(_ context.Context, input string) (NodeView, error) {
	switch s := c.state.(type) {
	case selected:
		if input == ParentToken {
			c.state = unselected{}
			return c.indexView(), nil
		}
		return c.handoffView(s.index), nil
	default:
		if input == "" {
			return c.indexView(), nil
		}
		if input == ParentToken {
			return RootParent(c.id, c.rootName(), []string{}), nil
		}
		k, ok := c.parseIndex(input)
		if !ok {
			return c.indexView(), nil
		}
		c.state = selected{index: k}
		return c.handoffView(k), nil
	}
}

// parseIndex reads the unsigned integer before the first ':' of a
// "<k>:<label>" token. The label is only an echo of the branch type and is not
// checked.
func (c *Composite) parseIndex(input string) (int, bool) {
	prefix, _, _ := strings.Cut(input, ":")
	if strings.HasPrefix(prefix, "+") || strings.HasPrefix(prefix, "-") {
		return 0, false
	}
	k, err := strconv.Atoi(prefix)
	if err != nil || k < 0 || k >= len(c.branches) {
		return 0, false
	}
	return k, true
}

func (c *Composite) indexView() NodeView {
	children := make([]string, len(c.branches))
	for i, b := range c.branches {
		children[i] = IndexToken(i, b.Type())
	}
	return Inside(c.id, c.rootName(), children)
}

func (c *Composite) handoffView(index int) NodeView {
	branch := c.branches[index].Type()
	return EndChild(branch, string(branch))
}

func (c *Composite) rootName() string {
	return string(c.id) + " root"
}

// IndexToken formats the step token that selects branch i of a composite.
func IndexToken(i int, branch ProviderID) string {
	return fmt.Sprintf("%d:%s", i, branch)
}
