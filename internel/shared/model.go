package shared

import (
	"fmt"
	"github.com/pkg/errors"
	"strings"
)

var ErrInvalidMode = errors.New("invalid mode")

type Mode int

const (
	Push Mode = iota + 1
	Pull
	Both
)

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "push":
		return Push, nil
	case "pull":
		return Pull, nil
	case "both":
		return Both, nil
	default:
		return 0, errors.Wrapf(ErrInvalidMode, "%q", s)
	}
}

func (m Mode) String() string {
	switch m {
	case Push:
		return "push"
	case Pull:
		return "pull"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Pushes reports whether files travel from side A to side B.
func (m Mode) Pushes() bool {
	return m == Push || m == Both
}

// Pulls reports whether files travel from side B to side A.
func (m Mode) Pulls() bool {
	return m == Pull || m == Both
}

func (m *Mode) UnmarshalFlag(value string) error {
	parsed, err := ParseMode(value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Mode) MarshalFlag() (string, error) {
	return m.String(), nil
}

// FileEntry is a regular file of one side, ModTime in whole seconds.
type FileEntry struct {
	Name    string
	ModTime int64
}

type Listing struct {
	Dir   string
	Files map[string]FileEntry
}

func NewListing(dir string) Listing {
	return Listing{Dir: dir, Files: make(map[string]FileEntry)}
}

func (l Listing) Add(name string, modTime int64) {
	l.Files[name] = FileEntry{Name: name, ModTime: modTime}
}

func (l Listing) Remove(name string) {
	delete(l.Files, name)
}

type Action struct {
	Name   string
	Source string
	Dest   string
}

type Outcome struct {
	Action Action
	Err    error
}

func (o Outcome) Ok() bool {
	return o.Err == nil
}

type Result struct {
	Attempted int
	Failed    int
	Outcomes  []Outcome
}

func (r Result) Succeeded() int {
	return r.Attempted - r.Failed
}

func (r Result) Add(o Result) Result {
	outcomes := make([]Outcome, 0, len(r.Outcomes)+len(o.Outcomes))
	outcomes = append(outcomes, r.Outcomes...)
	outcomes = append(outcomes, o.Outcomes...)
	return Result{
		Attempted: r.Attempted + o.Attempted,
		Failed:    r.Failed + o.Failed,
		Outcomes:  outcomes,
	}
}

// Plan holds the two disjoint copy lists of one run.
type Plan struct {
	Push []Action
	Pull []Action
}

func (p Plan) Empty() bool {
	return len(p.Push) == 0 && len(p.Pull) == 0
}
