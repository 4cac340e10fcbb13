package syn

import (
	"github.com/pkg/errors"
	. "winsync/internel/shared"
)

var ErrReadOnly = errors.New("remote side mounted read-only")

// RestrictMode narrows mode to what a side B with the given writability can
// serve. Both becomes Pull on a read-only mount, Push fails.
func RestrictMode(mode Mode, writable bool) (Mode, error) {
	if writable || !mode.Pushes() {
		return mode, nil
	}
	if mode == Both {
		return Pull, nil
	}
	return mode, errors.Wrapf(ErrReadOnly, "cannot %s", mode)
}
