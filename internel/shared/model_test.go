package shared

import (
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"push": Push,
		"PULL": Pull,
		"Both": Both,
	}
	for in, want := range cases {
		got, err := ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseMode("sideways")
	assert.True(t, errors.Is(err, ErrInvalidMode))
}

func TestModeDirections(t *testing.T) {
	assert.True(t, Push.Pushes())
	assert.False(t, Push.Pulls())
	assert.True(t, Pull.Pulls())
	assert.False(t, Pull.Pushes())
	assert.True(t, Both.Pushes())
	assert.True(t, Both.Pulls())
}

func TestModeIsFlagValue(t *testing.T) {
	var _ flags.Unmarshaler = (*Mode)(nil)
	var _ flags.Marshaler = Mode(0)

	var m Mode
	require.NoError(t, m.UnmarshalFlag("pUsH"))
	assert.Equal(t, Push, m)
	assert.Error(t, m.UnmarshalFlag(""))
	assert.Equal(t, Push, m)
}

func TestResultAdd(t *testing.T) {
	a := Result{Attempted: 2, Failed: 1, Outcomes: []Outcome{{Action: Action{Name: "a"}}, {Action: Action{Name: "b"}, Err: errors.New("x")}}}
	b := Result{Attempted: 1, Outcomes: []Outcome{{Action: Action{Name: "c"}}}}

	sum := a.Add(b)
	assert.Equal(t, 3, sum.Attempted)
	assert.Equal(t, 1, sum.Failed)
	assert.Equal(t, 2, sum.Succeeded())
	assert.Len(t, sum.Outcomes, 3)
	assert.False(t, sum.Outcomes[1].Ok())
}
