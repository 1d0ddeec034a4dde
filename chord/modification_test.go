package chord

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModificationsAreValid(t *testing.T) {
	assert.NoError(t, ValidateModifications(Modifications))
}

func TestValidateModificationsCatchesShadowing(t *testing.T) {
	mods := []Modification{
		{Token: "b9", Kind: Replace},
		{Token: "addb9", Kind: AddInterval},
	}
	assert.Error(t, ValidateModifications(mods))
	assert.NoError(t, ValidateModifications([]Modification{mods[1], mods[0]}))
}

func TestModificationRegistry(t *testing.T) {
	assert := assert.New(t)
	assert.Len(Modifications, 46)
	assert.Equal("add2", Modifications[0].Token)
	assert.Equal("inv9", Modifications[len(Modifications)-1].Token)

	kinds := map[ModKind]int{}
	for _, m := range Modifications {
		kinds[m.Kind]++
	}
	assert.Equal(map[ModKind]int{AddInterval: 12, Replace: 11, Omit: 14, Rotate: 9}, kinds)
}

func TestApply(t *testing.T) {
	major := NewIntervals("", []int{4, 7})
	find := func(token string) Modification {
		for _, m := range Modifications {
			if m.Token == token {
				return m
			}
		}
		t.Fatalf("no modification %v", token)
		return Modification{}
	}

	cases := []struct {
		token     string
		semitones []int
	}{
		{"no5", []int{0, 4}},
		{"(no3)", []int{0, 7}},
		{"add9", []int{0, 4, 7, 14}},
		{"sus4", []int{0, 5, 7}},
		{"#5", []int{0, 4, 8}},
		{"b9", []int{0, 4, 7, 10, 13}},
		{"inv1", []int{4, 7, 12}},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("apply %v to major", c.token), func(t *testing.T) {
			res := Apply(major, find(c.token))
			assert.Equal(t, c.semitones, res.Semitones)
			assert.Equal(t, "", res.Name)
		})
	}

	assert.Equal(t, 2, Apply(major, find("inv2")).Inversion)
}

func TestIntervalsFromName(t *testing.T) {
	cases := []struct {
		name      string
		semitones []int
	}{
		{"", []int{0, 4, 7}},
		{"major", []int{0, 4, 7}},
		{"maj", []int{0, 4, 7}},
		{"m", []int{0, 3, 7}},
		{"-", []int{0, 3, 7}},
		{"minor", []int{0, 3, 7}},
		{"min7", []int{0, 3, 7, 10}},
		{"major7", []int{0, 4, 7, 11}},
		{"dom", []int{0, 4, 7, 10}},
		{"ø", []int{0, 3, 6, 10}},
		{"o", []int{0, 3, 6, 9}},
		{"+", []int{0, 4, 8}},
		{"note", []int{0}},
		{"5", []int{0, 7}},
		{"13", []int{0, 4, 7, 10, 14, 17, 21}},
		{"7sus4", []int{0, 5, 7, 10}},
		{"m7b5", []int{0, 3, 6, 10}},
		{"augsus2", []int{0, 2, 8}},
		{"madd9", []int{0, 3, 7, 14}},
		{"7b11", []int{0, 4, 7, 10, 14, 16}},
		{"7b13", []int{0, 4, 7, 10, 14, 17, 20}},
		{"13no5no7b11#9", []int{0, 4, 10, 15, 16, 21}},
		{"13b11#9no5no7", []int{0, 4, 15, 16, 21}},
		{"13b11#9no5no7inv2", []int{0, 3, 4, 9}},
		{"m7sus4b9no5", []int{0, 3, 5, 10, 13}},
		{"min(no5)", []int{0, 3}},
		{"7(no3)", []int{0, 7, 10}},
		{"inv1", []int{4, 7, 12}},
		{"inv2", []int{7, 12, 16}},
		{"inv3", []int{0, 4, 7}},
		{"min/b6", []int{0, 4, 7, 11}},
		{"/6", []int{0, 3, 7, 10}},
		{"min/7", []int{0, 1, 4, 8}},
		{"dim/b7", []int{0, 2, 5, 8}},
		{"b3 interval", []int{0, 3}},
		{"b9 interval", []int{0, 13}},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("intervals for %q", c.name), func(t *testing.T) {
			iv, err := IntervalsFromName(c.name)
			require.NoError(t, err)
			assert.Equal(t, c.semitones, iv.Semitones)
			assert.Equal(t, c.name, iv.Name)
		})
	}
}

func TestIntervalsFromNameModifications(t *testing.T) {
	cases := []struct {
		name string
		mods []string
	}{
		{"m7b5", []string{"b5"}},
		{"7sus4", []string{"sus4"}},
		{"13no5no7b11#9", []string{"no5", "no7", "b11", "#9"}},
		{"ø", nil},
		{"o", nil},
		{"13", nil},
		{"major7", nil},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("modifications for %q", c.name), func(t *testing.T) {
			iv, err := IntervalsFromName(c.name)
			require.NoError(t, err)
			if c.mods == nil {
				assert.Empty(t, iv.Modifications)
			} else {
				assert.Equal(t, c.mods, iv.Modifications)
			}
		})
	}
}

func TestIntervalsFromNameInversion(t *testing.T) {
	iv, err := IntervalsFromName("majinv2")
	require.NoError(t, err)
	assert.Equal(t, 2, iv.Inversion)
	assert.Equal(t, []string{"inv2"}, iv.Modifications)
}

func TestInvalidChordNames(t *testing.T) {
	for _, name := range []string{"goop", "blap", "m8", "min/b6/3", "min/x", "x interval", "moop"} {
		t.Run(fmt.Sprintf("invalid %q", name), func(t *testing.T) {
			_, err := IntervalsFromName(name)
			assert.ErrorIs(t, err, ErrInvalidChord)
		})
	}
}

func TestNameRoundTrip(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"major", ""},
		{"minor", "min"},
		{"m7b5", "min7b5"},
		{"ø", "min7b5"},
		{"o", "dim7"},
		{"major7", "maj7"},
		{"addb11", ""},
		{"add#13", "7"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%q named back as %q", c.in, c.out), func(t *testing.T) {
			iv, err := IntervalsFromName(c.in)
			require.NoError(t, err)
			assert.Equal(t, c.out, IntervalsFromSemitones(iv.Semitones).Name)
		})
	}
}

// Every set of up to three notes above a root within one octave either has
// no name or has one that resolves back to exactly that set.
func TestSemitonesRoundTrip(t *testing.T) {
	for mask := 1; mask < 1<<11; mask++ {
		var s []int
		for bit := 0; bit < 11; bit++ {
			if mask&(1<<bit) != 0 {
				s = append(s, bit+1)
			}
		}
		if len(s) > 3 {
			continue
		}

		named := IntervalsFromSemitones(s)
		if named.Name == Unnamed {
			continue
		}
		t.Run(fmt.Sprintf("round trip %v as %q", s, named.Name), func(t *testing.T) {
			resolved, err := IntervalsFromName(named.Name)
			require.NoError(t, err)
			assert.Equal(t, named.Semitones, resolved.Semitones)
		})
	}
}
