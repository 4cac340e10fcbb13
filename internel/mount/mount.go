package mount

import (
	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/disk"
	"path/filepath"
	"strings"
	. "winsync/internel/log"
)

// Target describes the mount that must be present for side B to be writable.
type Target struct {
	Device     string
	Mountpoint string
	Fstype     string
}

type Checker interface {
	Writable(t Target) (bool, error)
}

// PartitionChecker consults the system mount table.
type PartitionChecker struct {
	partitions func(all bool) ([]disk.PartitionStat, error)
}

func NewPartitionChecker() *PartitionChecker {
	return &PartitionChecker{partitions: disk.Partitions}
}

// Writable is true only when t is mounted with the rw option. A missing
// mount counts as read-only.
func (c *PartitionChecker) Writable(t Target) (bool, error) {
	parts, err := c.partitions(true)
	if err != nil {
		return false, errors.Wrap(err, "read mount table")
	}
	for _, p := range parts {
		if !matches(p, t) {
			continue
		}
		Log.Debugln("found mount", p.Device, p.Mountpoint, p.Fstype, p.Opts)
		return hasOpt(p.Opts, "rw"), nil
	}
	Log.Debugln("mount not found", t.Device, t.Mountpoint)
	return false, nil
}

func matches(p disk.PartitionStat, t Target) bool {
	if t.Device != "" && p.Device != t.Device {
		return false
	}
	if t.Fstype != "" && p.Fstype != t.Fstype {
		return false
	}
	return filepath.Clean(p.Mountpoint) == filepath.Clean(t.Mountpoint)
}

func hasOpt(opts, want string) bool {
	for _, o := range strings.Split(opts, ",") {
		if strings.TrimSpace(o) == want {
			return true
		}
	}
	return false
}

// Always is a Checker with a fixed answer.
type Always bool

func (a Always) Writable(Target) (bool, error) {
	return bool(a), nil
}
