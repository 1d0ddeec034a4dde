package chord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/chordex/degree"
	"github.com/jsphweid/chordex/note"
	"github.com/jsphweid/chordex/util"
	"golang.org/x/exp/slices"
)

var ErrInvalidChord = errors.New("invalid chord")

// Unnamed is used when no reasonable name can be found for a set of semitones.
const Unnamed = "<unknown>"

// Intervals is a chord quality without a root: a name and the semitones
// above the (implicit) root. Values are never mutated; every helper returns
// a new Intervals.
type Intervals struct {
	Name          string
	Semitones     []int
	Modifications []string

	// running count of inversions applied through Invert or inv tokens
	Inversion int
}

// NewIntervals sorts and dedupes the semitones and makes sure the root is
// included.
func NewIntervals(name string, semitones []int) Intervals {
	return Intervals{
		Name:      name,
		Semitones: util.SortedSet(append([]int{0}, semitones...)),
	}
}

// rootless builds Intervals from exactly the given semitones, which is what
// inverted voicings need.
func rootless(base Intervals, semitones []int) Intervals {
	return Intervals{
		Name:          base.Name,
		Semitones:     util.SortedSet(semitones),
		Modifications: slices.Clone(base.Modifications),
		Inversion:     base.Inversion,
	}
}

// IntervalsFromSemitones names the semitones with the naming engine. The
// name always resolves back through IntervalsFromName unless it is Unnamed.
func IntervalsFromSemitones(semitones []int) Intervals {
	return NewIntervals(Name(semitones), semitones)
}

func IntervalsFromDegrees(name string, degrees []string) (Intervals, error) {
	semitones := make([]int, 0, len(degrees))
	for _, d := range degrees {
		s, err := degree.ToSemitone(d)
		if err != nil {
			return Intervals{}, err
		}
		semitones = append(semitones, s)
	}
	return NewIntervals(name, semitones), nil
}

// AddSemitone returns a copy with the semitone added. The name is kept as is.
func (iv Intervals) AddSemitone(semitone int) Intervals {
	return rootless(iv, append(slices.Clone(iv.Semitones), semitone))
}

// RemoveSemitone returns a copy without the exact semitone.
func (iv Intervals) RemoveSemitone(semitone int) Intervals {
	return rootless(iv, util.Filter(iv.Semitones, func(s int) bool { return s != semitone }))
}

// removePitchClass drops the semitone in every octave.
func (iv Intervals) removePitchClass(semitone int) Intervals {
	pc := util.Mod(semitone, 12)
	return rootless(iv, util.Filter(iv.Semitones, func(s int) bool { return util.Mod(s, 12) != pc }))
}

// RotateSemitones moves the lowest semitone up an octave, steps times. A
// voicing that ends up entirely above the first octave drops back down, so
// rotating a triad three times returns the original semitones.
func (iv Intervals) RotateSemitones(steps int) Intervals {
	semitones := slices.Clone(iv.Semitones)
	for i := 0; i < steps && len(semitones) > 0; i++ {
		semitones = util.SortedSet(append(semitones[1:], semitones[0]+12))
		if semitones[0] >= 12 {
			for j := range semitones {
				semitones[j] -= 12
			}
		}
	}
	return rootless(iv, semitones)
}

// Invert rotates by steps and rewrites the inversion suffix of the name, so
// that Invert(2).Invert(2) is named like Invert(4).
func (iv Intervals) Invert(steps int) Intervals {
	res := iv.RotateSemitones(steps)
	res.Inversion = iv.Inversion + steps

	token := fmt.Sprintf("inv%v", res.Inversion)
	res.Name = trimInversion(iv.Name) + token
	mods := util.Filter(res.Modifications, func(m string) bool { return !isInversion(m) })
	res.Modifications = append(mods, token)
	return res
}

func isInversion(token string) bool {
	if !strings.HasPrefix(token, "inv") || len(token) == 3 {
		return false
	}
	for _, r := range token[3:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func trimInversion(name string) string {
	i := strings.LastIndex(name, "inv")
	if i >= 0 && isInversion(name[i:]) {
		return name[:i]
	}
	return name
}

// Sequence returns the distances between neighbouring semitones, e.g.
// [4, 3, 4] for maj7.
func (iv Intervals) Sequence() []int {
	res := []int{}
	for i := 1; i < len(iv.Semitones); i++ {
		res = append(res, iv.Semitones[i]-iv.Semitones[i-1])
	}
	return res
}

// Equal compares semitones only.
func (iv Intervals) Equal(other Intervals) bool {
	return slices.Equal(iv.Semitones, other.Semitones)
}

func (iv Intervals) String() string {
	parts := make([]string, len(iv.Semitones))
	for i, s := range iv.Semitones {
		parts[i] = fmt.Sprintf("%v", s)
	}
	return fmt.Sprintf("Intervals(name='%v', semitones=[%v])", iv.Name, strings.Join(parts, ", "))
}

// WithRoot places the intervals on a root note.
func (iv Intervals) WithRoot(root note.Note) Chord {
	return Chord{Name: root.Name + iv.Name, Root: root, Intervals: iv}
}
