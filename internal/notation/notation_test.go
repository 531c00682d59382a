package notation_test

import (
	"testing"

	"github.com/katalvlaran/necklace/internal/notation"
	"github.com/katalvlaran/necklace/necklace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_AcceptedForms covers every supported spelling.
func TestParse_AcceptedForms(t *testing.T) {
	cases := []struct {
		in   string
		want necklace.Sequence
	}{
		{"1,1,0,0", necklace.Sequence{1, 1, 0, 0}},
		{"1 1 0 0", necklace.Sequence{1, 1, 0, 0}},
		{"[1, 1, 0, 0]", necklace.Sequence{1, 1, 0, 0}},
		{"  [ 12 0 3 ]  ", necklace.Sequence{12, 0, 3}},
		{"1, 2 3", necklace.Sequence{1, 2, 3}},
		{"7", necklace.Sequence{7}},
		{"[]", necklace.Sequence{}},
		{"", necklace.Sequence{}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := notation.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestParse_Rejects covers malformed literals.
func TestParse_Rejects(t *testing.T) {
	for _, in := range []string{"-1,0", "1,,0", "1;0", "1.5", "a,b", "[1 [2]]"} {
		t.Run(in, func(t *testing.T) {
			_, err := notation.Parse(in)
			assert.ErrorIs(t, err, notation.ErrSyntax)
		})
	}

	for _, in := range []string{"[1 0", "1 0]"} {
		t.Run(in, func(t *testing.T) {
			_, err := notation.Parse(in)
			assert.ErrorIs(t, err, notation.ErrUnbalanced)
		})
	}
}

// TestFormat_RoundTrip verifies Format output parses back.
func TestFormat_RoundTrip(t *testing.T) {
	for _, s := range []necklace.Sequence{{}, {0}, {3, 0, 11, 1}} {
		text := notation.Format(s)
		got, err := notation.Parse(text)
		require.NoError(t, err, text)
		assert.Equal(t, s, got)
	}
	assert.Equal(t, "[3, 0, 11]", notation.Format(necklace.Sequence{3, 0, 11}))
}
