package degree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSemitone(t *testing.T) {
	cases := map[string]int{
		"1": 0, "b1": -1, "bb1": -2, "bbb1": -3, "#1": 1, "##1": 2,
		"2": 2, "b2": 1, "#2": 3,
		"3": 4,
		"4": 5, "b4": 4, "#4": 6,
		"5": 7, "b5": 6, "#5": 8,
		"6": 9, "b6": 8, "#6": 10,
		"7": 11, "b7": 10, "#7": 12,
		"9": 14, "b9": 13, "#9": 15,
		"11": 17, "b11": 16, "#11": 18,
		"13": 21, "b13": 20, "#13": 22,
	}

	for d, semitone := range cases {
		t.Run(fmt.Sprintf("degree %v", d), func(t *testing.T) {
			res, err := ToSemitone(d)
			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(semitone, res)
		})
	}
}

func TestToSemitoneInvalid(t *testing.T) {
	for _, d := range []string{"#b1", "b1#", "asdf", "b99", ""} {
		t.Run(fmt.Sprintf("invalid degree %q", d), func(t *testing.T) {
			_, err := ToSemitone(d)
			assert.ErrorIs(t, err, ErrInvalidDegree)
		})
	}
}

func TestSplitToBaseAndShift(t *testing.T) {
	cases := []struct {
		in        string
		nameFirst bool
		base      string
		shift     int
	}{
		{"A", true, "A", 0},
		{"A#", true, "A", 1},
		{"A###", true, "A", 3},
		{"Ab", true, "A", -1},
		{"Abbb", true, "A", -3},
		{"9", false, "9", 0},
		{"##9", false, "9", 2},
		{"bbb9", false, "9", -3},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("split %v", c.in), func(t *testing.T) {
			base, shift, err := SplitToBaseAndShift(c.in, c.nameFirst)
			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(c.base, base)
			assert.Equal(c.shift, shift)
		})
	}
}

func TestOptions(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"b3", "#2"}, Options(3, 1))
	assert.Equal([]string{}, Options(3, 0))
	assert.Equal([]string{"11", "#10"}, Options(17, 1))
	assert.Equal([]string{"5"}, Options(7, 1))
	assert.Equal([]string{"3", "b4"}, Options(4, 1))
	assert.Equal([]string{"b9", "#8"}, Options(13, 1))
	assert.Empty(Options(-1, 1))
	assert.Empty(Options(24, 1))
}

func TestOptionsContainsDegree(t *testing.T) {
	for d := 1; d <= 14; d++ {
		for _, acc := range []string{"", "b", "#"} {
			name := fmt.Sprintf("%v%v", acc, d)
			semitone, err := ToSemitone(name)
			if err != nil || semitone < 0 || semitone >= 24 {
				continue
			}
			assert.Contains(t, Options(semitone, 1), name)
		}
	}
}
