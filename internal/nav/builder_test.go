package nav_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/EugeneDevastator/TraVis/internal/nav"
)

func TestBuilder_DefaultSeparator(t *testing.T) {
	n, err := nav.NewBuilder().Register(newList("Disk", "Disks")).Start("Disk").Build()
	require.NoError(t, err)
	require.Equal(t, string(filepath.Separator), n.Separator())
	require.Equal(t, nav.ProviderID("Disk"), n.Active())
}

func TestBuilder_Errors(t *testing.T) {
	tests := []struct {
		name  string
		build func() *nav.Builder
		want  error
	}{
		{
			name:  "empty",
			build: func() *nav.Builder { return nav.NewBuilder().Start("Disk") },
			want:  nav.ErrNoProviders,
		},
		{
			name:  "nil provider",
			build: func() *nav.Builder { return nav.NewBuilder().Register(nil) },
			want:  nav.ErrNilProvider,
		},
		{
			name: "duplicate id",
			build: func() *nav.Builder {
				return nav.NewBuilder().
					Register(newList("Disk", "a")).
					Register(newList("Disk", "b")).
					Start("Disk")
			},
			want: nav.ErrDuplicateProvider,
		},
		{
			name:  "no start",
			build: func() *nav.Builder { return nav.NewBuilder().Register(newList("Disk", "Disks")) },
			want:  nav.ErrNoStart,
		},
		{
			name: "unknown start",
			build: func() *nav.Builder {
				return nav.NewBuilder().Register(newList("Disk", "Disks")).Start("Root")
			},
			want: nav.ErrUnknownProvider,
		},
		{
			name: "unknown parent target",
			build: func() *nav.Builder {
				return nav.NewBuilder().
					Register(newList("Disk", "Disks")).
					Parent("Disk", "Root").
					Start("Disk")
			},
			want: nav.ErrUnknownProvider,
		},
		{
			name: "unknown child source",
			build: func() *nav.Builder {
				return nav.NewBuilder().
					Register(newList("Disk", "Disks")).
					Child("Volumes", "Disk").
					Start("Disk")
			},
			want: nav.ErrUnknownProvider,
		},
		{
			name: "unregistered branch",
			build: func() *nav.Builder {
				root := nav.NewComposite("Root", newList("Disk", "Disks"), newList("Windows", "Open Windows"))
				return nav.NewBuilder().
					Register(root).
					Register(newList("Disk", "Disks")).
					Start("Root")
			},
			want: nav.ErrUnregisteredBranch,
		},
		{
			name: "branch is the composite itself",
			build: func() *nav.Builder {
				root := nav.NewComposite("Root", newList("Root", "loop"))
				return nav.NewBuilder().Register(root).Start("Root")
			},
			want: nav.ErrUnregisteredBranch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := tt.build().Build()
			require.ErrorIs(t, err, tt.want)
			require.Nil(t, n)
		})
	}
}

func TestBuilder_TablesAreCopied(t *testing.T) {
	b := nav.NewBuilder().
		Register(newList("Disk", "Disks")).
		Register(newList("Windows", "Open Windows")).
		Start("Disk")

	n, err := b.Build()
	require.NoError(t, err)

	b.Parent("Disk", "Windows")
	_, ok := n.ParentOf("Disk")
	require.False(t, ok)
}
