package syn

import (
	"path/filepath"
	"sort"
	"strings"
	. "winsync/internel/log"
	. "winsync/internel/shared"
)

type al []Action

var _ sort.Interface = (*al)(nil)

func (a al) Len() int {
	return len(a)
}

func (a al) Less(i, j int) bool {
	return a[i].Name < a[j].Name
}

func (a al) Swap(i, j int) {
	a[i], a[j] = a[j], a[i]
}

// Reconcile decides which files move in each direction enabled by mode.
// A file is copied only when its side is strictly newer or the other side
// lacks it; equal timestamps are a no-op. Hidden files are never pushed and
// leftovers of interrupted copies never move.
func Reconcile(local, remote Listing, mode Mode) Plan {
	var plan Plan
	if mode.Pulls() {
		plan.Pull = outbound(remote, local, func(string) bool { return true })
	}
	if mode.Pushes() {
		plan.Push = outbound(local, remote, func(name string) bool {
			return !strings.HasPrefix(name, HiddenPrefix)
		})
	}
	Log.Debugf("plan: %d to pull, %d to push", len(plan.Pull), len(plan.Push))
	return plan
}

func outbound(from, to Listing, eligible func(string) bool) []Action {
	var list []Action
	for name, f := range from.Files {
		if !eligible(name) {
			Log.Debugln("skip hidden", name)
			continue
		}
		if IsTempName(name) {
			Log.Debugln("skip temp file", name)
			continue
		}
		if t, ok := to.Files[name]; ok && t.ModTime >= f.ModTime {
			continue
		}
		list = append(list, Action{
			Name:   name,
			Source: filepath.Join(from.Dir, name),
			Dest:   filepath.Join(to.Dir, name),
		})
	}
	sort.Sort(al(list))
	return list
}
