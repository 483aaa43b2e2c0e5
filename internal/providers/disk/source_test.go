package disk

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const sampleMounts = `sysfs /sys sysfs rw,nosuid,nodev,noexec,relatime 0 0
proc /proc proc rw,nosuid,nodev,noexec,relatime 0 0
/dev/nvme0n1p2 / ext4 rw,relatime 0 0
tmpfs /run tmpfs rw,nosuid,nodev,size=3256872k,mode=755 0 0
/dev/nvme0n1p1 /boot/efi vfat rw,relatime 0 0
/dev/sdb1 /media/My\040Disk exfat rw,relatime 0 0
/dev/nvme0n1p2 / ext4 rw,relatime 0 0
cgroup2 /sys/fs/cgroup cgroup2 rw,nosuid,nodev,noexec,relatime 0 0
`

func TestMountTable_Volumes(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/proc/self/mounts", []byte(sampleMounts), 0o644))

	volumes, err := NewMountTable(fs, "").Volumes(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"/", "/run", "/boot/efi", "/media/My Disk"}, volumes)
}

func TestMountTable_MissingFile(t *testing.T) {
	_, err := NewMountTable(afero.NewMemMapFs(), "/etc/mtab").Volumes(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "opening mount table")
}

func TestMountTable_SkipsMalformedLines(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/mounts", []byte("# comment\n\nbroken\n/dev/sda1 /data xfs rw 0 0\n"), 0o644))

	volumes, err := NewMountTable(fs, "/mounts").Volumes(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"/data"}, volumes)
}

func TestMountTable_CancelledContext(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/mounts", []byte(sampleMounts), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMountTable(fs, "/mounts").Volumes(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestUnescapeOctal(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`/plain`, `/plain`},
		{`/a\040b`, `/a b`},
		{`/tab\011x`, "/tab\tx"},
		{`/back\134slash`, `/back\slash`},
		{`/short\04`, `/short\04`},
		{`/bad\09x`, `/bad\09x`},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, unescapeOctal(tt.in), tt.in)
	}
}

func TestStatic_ReturnsCopy(t *testing.T) {
	s := Static{"C", "D"}
	got, err := s.Volumes(context.Background())
	require.NoError(t, err)
	got[0] = "Z"
	require.Equal(t, "C", s[0])
}
