package nav_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/EugeneDevastator/TraVis/internal/mocks"
	"github.com/EugeneDevastator/TraVis/internal/nav"
)

type fixture struct {
	nav     *nav.Navigator
	root    *nav.Composite
	disk    *listProvider
	fs      *treeProvider
	windows *listProvider
}

// newFixture wires the classic topology: a root composite over Disk and
// Windows, with Disk descending into a FileSystem tree.
func newFixture(t interface {
	require.TestingT
	Helper()
}) *fixture {
	t.Helper()

	disk := newList("Disk", "Disks", "C", "D")
	windows := newList("Windows", "Open Windows", "Editor", "Terminal")
	fs := newTree("FileSystem", map[string][]string{
		`C:\`:            {"Users", "boot.ini"},
		`C:\Users`:       {"alice"},
		`C:\Users\alice`: {"notes.txt"},
		`D:\`:            {},
	})
	root := nav.NewComposite("Root", disk, windows)

	n, err := nav.NewBuilder().
		Register(root).
		Register(disk).
		Register(fs).
		Register(windows).
		Child("Disk", "FileSystem").
		Parent("FileSystem", "Disk").
		Parent("Disk", "Root").
		Parent("Windows", "Root").
		Start("Root").
		Separator(`\`).
		Build()
	require.NoError(t, err)

	return &fixture{nav: n, root: root, disk: disk, fs: fs, windows: windows}
}

func advance(t *testing.T, n *nav.Navigator, input string) nav.NodeView {
	t.Helper()
	view, err := n.Advance(context.Background(), input)
	require.NoError(t, err)
	return view
}

func TestNavigator_EndToEnd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	view, err := f.nav.CurrentView(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"0:Disk", "1:Windows"}, view.Children)

	advance(t, f.nav, "0:Disk")
	require.Equal(t, nav.ProviderID("Disk"), f.nav.Active())

	advance(t, f.nav, "C")
	require.Equal(t, nav.ProviderID("FileSystem"), f.nav.Active())
	require.Equal(t, []string{`C\`}, f.fs.rebases)

	view, err = f.nav.CurrentView(ctx)
	require.NoError(t, err)
	require.Equal(t, nav.KindInside, view.Kind)
	require.Equal(t, `C:\`, view.Name)
	require.Equal(t, []string{"Users", "boot.ini"}, view.Children)
}

func TestNavigator_InsideReturnsStepResult(t *testing.T) {
	f := newFixture(t)
	advance(t, f.nav, "0:Disk")
	advance(t, f.nav, "C")

	view := advance(t, f.nav, "Users")
	require.Equal(t, nav.KindInside, view.Kind)
	require.Equal(t, `C:\Users`, view.Name)
	require.Equal(t, []string{"alice"}, view.Children)
	require.Equal(t, nav.ProviderID("FileSystem"), f.nav.Active())
}

func TestNavigator_AscentChainReachesRoot(t *testing.T) {
	f := newFixture(t)
	for _, step := range []string{"0:Disk", "C", "Users", "alice"} {
		advance(t, f.nav, step)
	}
	require.Equal(t, nav.ProviderID("FileSystem"), f.nav.Active())

	advance(t, f.nav, "..")
	advance(t, f.nav, "..")
	require.Equal(t, nav.ProviderID("FileSystem"), f.nav.Active())

	view := advance(t, f.nav, "..")
	require.Equal(t, nav.KindRootParent, view.Kind)
	require.Equal(t, nav.ProviderID("Disk"), f.nav.Active())
	require.Equal(t, []string{"Disk", `C:\`}, f.disk.rebases)

	advance(t, f.nav, "..")
	require.Equal(t, nav.ProviderID("Root"), f.nav.Active())
	_, selected := f.root.Selected()
	require.False(t, selected)

	view, err := f.nav.CurrentView(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"0:Disk", "1:Windows"}, view.Children)
}

func TestNavigator_ParentAbsentStays(t *testing.T) {
	f := newFixture(t)

	before, err := f.nav.CurrentView(context.Background())
	require.NoError(t, err)

	view := advance(t, f.nav, "..")
	require.Equal(t, nav.ProviderID("Root"), f.nav.Active())
	require.Equal(t, before, view)
}

func TestNavigator_DynamicResolutionRebasesWithName(t *testing.T) {
	f := newFixture(t)

	view := advance(t, f.nav, "1:Windows")
	require.Equal(t, nav.KindEndChild, view.Kind)
	require.Equal(t, nav.ProviderID("Windows"), f.nav.Active())
	require.Equal(t, []string{"Windows"}, f.windows.rebases)
}

func TestNavigator_SelfResolutionStays(t *testing.T) {
	f := newFixture(t)
	advance(t, f.nav, "1:Windows")

	view := advance(t, f.nav, "Editor")
	require.Equal(t, nav.ProviderID("Windows"), f.nav.Active())
	require.Equal(t, nav.KindInside, view.Kind)
	require.Equal(t, "Open Windows", view.Name)
}

func TestNavigator_FileEndChildStays(t *testing.T) {
	f := newFixture(t)
	advance(t, f.nav, "0:Disk")
	advance(t, f.nav, "C")

	view := advance(t, f.nav, "boot.ini")
	require.Equal(t, nav.ProviderID("FileSystem"), f.nav.Active())
	require.Equal(t, nav.KindInside, view.Kind)
	require.Equal(t, `C:\`, view.Name)
}

func TestNavigator_UnknownInputIsNoOp(t *testing.T) {
	f := newFixture(t)
	advance(t, f.nav, "0:Disk")

	view := advance(t, f.nav, "Z")
	require.Equal(t, nav.ProviderID("Disk"), f.nav.Active())
	require.Equal(t, nav.KindInside, view.Kind)
	require.Equal(t, []string{"C", "D"}, view.Children)
}

func TestNavigator_MalformedCompositeTokenIsNoOp(t *testing.T) {
	f := newFixture(t)

	advance(t, f.nav, "abc")
	require.Equal(t, nav.ProviderID("Root"), f.nav.Active())
	_, selected := f.root.Selected()
	require.False(t, selected)
}

func TestNavigator_StepErrorLeavesCursor(t *testing.T) {
	boom := errors.New("device not ready")

	flaky := mocks.NewMockProvider(t)
	flaky.EXPECT().Type().Return("Flaky")
	flaky.EXPECT().Step(mock.Anything, "x").Return(nav.NodeView{}, boom).Once()
	flaky.EXPECT().Step(mock.Anything, "").Return(nav.Inside("Flaky", "flaky", []string{"x"}), nil).Once()

	n, err := nav.NewBuilder().Register(flaky).Start("Flaky").Build()
	require.NoError(t, err)

	_, err = n.Advance(context.Background(), "x")
	require.ErrorIs(t, err, nav.ErrStep)
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "Flaky")
	require.Equal(t, nav.ProviderID("Flaky"), n.Active())

	view, err := n.CurrentView(context.Background())
	require.NoError(t, err)
	require.Equal(t, "flaky", view.Name)
}

func TestNavigator_CurrentViewWrapsError(t *testing.T) {
	boom := errors.New("permission denied")

	p := mocks.NewMockProvider(t)
	p.EXPECT().Type().Return("Broken")
	p.EXPECT().Step(mock.Anything, "").Return(nav.NodeView{}, boom).Once()

	n, err := nav.NewBuilder().Register(p).Start("Broken").Build()
	require.NoError(t, err)

	_, err = n.CurrentView(context.Background())
	require.ErrorIs(t, err, nav.ErrStep)
	require.ErrorIs(t, err, boom)
}

func TestNavigator_StaticChildPreferredOverDynamic(t *testing.T) {
	disk := mocks.NewMockProvider(t)
	disk.EXPECT().Type().Return("Disk")
	disk.EXPECT().Step(mock.Anything, "sda").Return(nav.EndChild("Other", "sda"), nil).Once()

	child := mocks.NewMockProvider(t)
	child.EXPECT().Type().Return("Partitions")
	child.EXPECT().Rebase("sda/").Once()

	other := mocks.NewMockProvider(t)
	other.EXPECT().Type().Return("Other")

	n, err := nav.NewBuilder().
		Register(disk).
		Register(child).
		Register(other).
		Child("Disk", "Partitions").
		Start("Disk").
		Separator("/").
		Build()
	require.NoError(t, err)

	view := advance(t, n, "sda")
	require.Equal(t, nav.KindEndChild, view.Kind)
	require.Equal(t, nav.ProviderID("Partitions"), n.Active())
}

func TestNavigator_UnregisteredTypeStays(t *testing.T) {
	ghost := mocks.NewMockProvider(t)
	ghost.EXPECT().Type().Return("Ghost")
	ghost.EXPECT().Step(mock.Anything, "go").Return(nav.EndChild("Nowhere", "nowhere"), nil).Once()
	ghost.EXPECT().Step(mock.Anything, "").Return(nav.Inside("Ghost", "ghost", []string{}), nil).Once()

	n, err := nav.NewBuilder().Register(ghost).Start("Ghost").Build()
	require.NoError(t, err)

	view := advance(t, n, "go")
	require.Equal(t, nav.KindInside, view.Kind)
	require.Equal(t, nav.ProviderID("Ghost"), n.Active())
}

func TestNavigator_Accessors(t *testing.T) {
	f := newFixture(t)

	require.Equal(t, []nav.ProviderID{"Disk", "FileSystem", "Root", "Windows"}, f.nav.Providers())
	require.Equal(t, `\`, f.nav.Separator())

	parent, ok := f.nav.ParentOf("FileSystem")
	require.True(t, ok)
	require.Equal(t, nav.ProviderID("Disk"), parent)

	_, ok = f.nav.ParentOf("Root")
	require.False(t, ok)

	child, ok := f.nav.ChildOf("Disk")
	require.True(t, ok)
	require.Equal(t, nav.ProviderID("FileSystem"), child)

	p, ok := f.nav.Provider("Windows")
	require.True(t, ok)
	require.Same(t, f.windows, p)
}
