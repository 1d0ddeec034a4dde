package degree

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jsphweid/chordex/constants"
)

var ErrInvalidDegree = errors.New("invalid degree")

// SplitToBaseAndShift separates a note name or scale degree from its run of
// accidentals and returns the number of semitones they add up to.
//
//	SplitToBaseAndShift("Abb", true)  == "A", -2
//	SplitToBaseAndShift("#9", false)  == "9", 1
func SplitToBaseAndShift(nameOrDegree string, nameBeforeAccidental bool) (string, int, error) {
	if strings.Contains(nameOrDegree, "b") && strings.Contains(nameOrDegree, "#") {
		return "", 0, fmt.Errorf("%w: both sharp and flat in %q", ErrInvalidDegree, nameOrDegree)
	}

	shift := 0
	if nameBeforeAccidental {
		for strings.HasSuffix(nameOrDegree, "b") {
			shift--
			nameOrDegree = nameOrDegree[:len(nameOrDegree)-1]
		}
		for strings.HasSuffix(nameOrDegree, "#") {
			shift++
			nameOrDegree = nameOrDegree[:len(nameOrDegree)-1]
		}
	} else {
		for strings.HasPrefix(nameOrDegree, "b") {
			shift--
			nameOrDegree = nameOrDegree[1:]
		}
		for strings.HasPrefix(nameOrDegree, "#") {
			shift++
			nameOrDegree = nameOrDegree[1:]
		}
	}
	return nameOrDegree, shift, nil
}

// ToSemitone converts a scale degree such as "b9" or "5" to the number of
// semitones above the root.
func ToSemitone(d string) (int, error) {
	base, shift, err := SplitToBaseAndShift(d, false)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(base)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDegree, d)
	}

	// one octave above
	if n > 7 {
		n -= 7
		shift += 12
	}

	offset, ok := constants.MajorScaleOffsets[n]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDegree, d)
	}
	return offset + shift, nil
}

type option struct {
	name     string
	priority float64
}

// Options lists the spellings of a semitone distance as a scale degree, most
// reasonable first: fewer accidentals win, and flats come before sharps.
//
//	Options(3, 1)  == ["b3", "#2"]
//	Options(3, 0)  == []
//	Options(17, 1) == ["11", "#10"]
func Options(semitone, maxAccidentals int) []string {
	if semitone < 0 || semitone >= 24 {
		return []string{}
	}

	var opts []option
	for d := 1; d <= 14; d++ {
		cand := degreeSemitone(d)
		for n := 0; n <= maxAccidentals; n++ {
			if semitone == cand-n {
				opts = append(opts, option{strings.Repeat("b", n) + strconv.Itoa(d), float64(n)})
			}
			if semitone == cand+n {
				opts = append(opts, option{strings.Repeat("#", n) + strconv.Itoa(d), float64(n) + 0.5})
			}
		}
	}

	sort.SliceStable(opts, func(i, j int) bool {
		return opts[i].priority < opts[j].priority
	})

	res := []string{}
	for _, o := range opts {
		if len(res) > 0 && res[len(res)-1] == o.name {
			continue
		}
		res = append(res, o.name)
	}
	return res
}

func degreeSemitone(d int) int {
	if d > 7 {
		return constants.MajorScaleOffsets[d-7] + 12
	}
	return constants.MajorScaleOffsets[d]
}
