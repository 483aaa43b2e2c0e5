// Package nav implements a single cursor that moves across several unrelated
// hierarchical namespaces.
//
// Every namespace is served by a Provider. A Provider answers each step with a
// NodeView whose Kind tells the Navigator what happened:
//
//   - KindInside: the step resolved inside the provider; the cursor stays.
//   - KindRootParent: the step asked to ascend past the provider's own root.
//   - KindEndChild: the step landed on the root of a different namespace.
//
// The Navigator owns a fixed registry of providers plus two adjacency tables
// (parent and child) and decides after every step whether the cursor stays,
// ascends to the configured parent, or descends into the configured child. When
// no child is configured the Navigator falls back to the view's ProviderType,
// which lets a Composite hand the cursor to one of its branches by name.
//
// # Construction
//
// Navigators are built once with Builder and are immutable afterwards except for
// the active provider id:
//
//	n, err := nav.NewBuilder().
//	    Register(root).Register(disks).Register(files).
//	    Parent("FileSystem", "Disk").
//	    Parent("Disk", "root").
//	    Child("Disk", "FileSystem").
//	    Start("root").
//	    Build()
//
// A Navigator is not safe for concurrent use; callers serialise Advance and
// CurrentView.
package nav
