package disk

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// DefaultMountsFile is the kernel's view of the caller's mount namespace.
const DefaultMountsFile = "/proc/self/mounts"

// VolumeSource enumerates volume identifiers.
type VolumeSource interface {
	Volumes(ctx context.Context) ([]string, error)
}

// Static is a fixed volume list.
type Static []string

// Volumes implements VolumeSource.
func (s Static) Volumes(context.Context) ([]string, error) {
	return append([]string(nil), s...), nil
}

// pseudoFS are filesystem types that never back a browsable volume.
var pseudoFS = map[string]bool{
	"autofs":      true,
	"binfmt_misc": true,
	"bpf":         true,
	"cgroup":      true,
	"cgroup2":     true,
	"configfs":    true,
	"debugfs":     true,
	"devpts":      true,
	"devtmpfs":    true,
	"fusectl":     true,
	"hugetlbfs":   true,
	"mqueue":      true,
	"nsfs":        true,
	"proc":        true,
	"pstore":      true,
	"securityfs":  true,
	"sysfs":       true,
	"tracefs":     true,
}

// MountTable reads mount points from a mounts(5) formatted file.
type MountTable struct {
	Fs   afero.Fs
	Path string
}

// NewMountTable reads path from fs. An empty path uses DefaultMountsFile.
func NewMountTable(fs afero.Fs, path string) *MountTable {
	if path == "" {
		path = DefaultMountsFile
	}
	return &MountTable{Fs: fs, Path: path}
}

// Volumes implements VolumeSource. Mount points are returned in file order
// with duplicates and pseudo filesystems removed.
func (m *MountTable) Volumes(ctx context.Context) ([]string, error) {
	f, err := m.Fs.Open(m.Path)
	if err != nil {
		return nil, fmt.Errorf("opening mount table: %w", err)
	}
	defer func() { _ = f.Close() }()

	seen := make(map[string]bool)
	var volumes []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if pseudoFS[fields[2]] {
			continue
		}
		mountPoint := unescapeOctal(fields[1])
		if seen[mountPoint] {
			continue
		}
		seen[mountPoint] = true
		volumes = append(volumes, mountPoint)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading mount table: %w", err)
	}
	return volumes, nil
}

// unescapeOctal decodes the \ooo escapes the kernel uses for spaces, tabs and
// backslashes in mount points.
func unescapeOctal(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+4 <= len(s) {
			if n, err := strconv.ParseUint(s[i+1:i+4], 8, 8); err == nil {
				b.WriteByte(byte(n))
				i += 3
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
