package chord

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/degree"
	"golang.org/x/exp/slices"
)

type ModKind int

const (
	// Omit removes pitch classes in every octave.
	Omit ModKind = iota
	// AddInterval adds one exact semitone.
	AddInterval
	// Replace removes a pitch class in every octave and adds semitones.
	Replace
	// Rotate inverts the chord.
	Rotate
)

// Modification is a suffix token that changes the semitones of the chord it
// is appended to, e.g. "no5", "add9", "sus4" or "inv2".
type Modification struct {
	Token  string
	Kind   ModKind
	Remove []int
	Add    []int
	Steps  int
}

func omit(token string, remove ...int) Modification {
	return Modification{Token: token, Kind: Omit, Remove: remove}
}

func addInterval(token string, semitone int) Modification {
	return Modification{Token: token, Kind: AddInterval, Add: []int{semitone}}
}

func replace(token string, remove int, add ...int) Modification {
	return Modification{Token: token, Kind: Replace, Remove: []int{remove}, Add: add}
}

func rotate(steps int) Modification {
	return Modification{Token: fmt.Sprintf("inv%v", steps), Kind: Rotate, Steps: steps}
}

// Modifications is checked in order and the first token that is a suffix of
// the name wins. A token must come before any shorter token it ends with
// ("addb9" before "b9"), which ValidateModifications enforces.
var Modifications = buildModifications()

func buildModifications() []Modification {
	mods := []Modification{
		addInterval("add2", 2),
		addInterval("add4", 5),
		addInterval("add6", 9),
		addInterval("addb9", 13),
		addInterval("add9", 14),
		addInterval("add#9", 15),
		addInterval("addb11", 16),
		addInterval("add11", 17),
		addInterval("add#11", 18),
		addInterval("addb13", 20),
		addInterval("add13", 21),
		addInterval("add#13", 22),

		replace("sus2", 4, 2),
		replace("sus4", 4, 5),
		replace("#4", 5, 6),
		replace("b5", 7, 6),
		replace("#5", 7, 8),

		// altered extensions imply the dominant seventh and the extensions below them
		replace("b9", 14, 10, 13),
		replace("#9", 14, 10, 15),
		replace("b11", 17, 10, 14, 16),
		replace("#11", 17, 10, 14, 18),
		replace("b13", 21, 10, 14, 17, 20),
		replace("#13", 21, 10, 14, 17, 22),
	}

	omissions := []Modification{
		omit("no2", 2),
		omit("no3", 3, 4),
		omit("no4", 5),
		omit("no5", 7),
		omit("no6", 8, 9),
		omit("no7", 10, 11),
		omit("no9", 1, 2),
	}
	for _, m := range omissions {
		mods = append(mods, m, omit("("+m.Token+")", m.Remove...))
	}

	for i := 1; i <= 9; i++ {
		mods = append(mods, rotate(i))
	}
	return mods
}

// ValidateModifications makes sure that no token is shadowed by an earlier,
// shorter token it ends with.
func ValidateModifications(mods []Modification) error {
	for i, earlier := range mods {
		for _, later := range mods[i+1:] {
			if strings.HasSuffix(later.Token, earlier.Token) {
				return fmt.Errorf("modification %q shadows %q", earlier.Token, later.Token)
			}
		}
	}
	return nil
}

func init() {
	if err := ValidateModifications(Modifications); err != nil {
		panic(err)
	}
}

// Apply returns the intervals with the modification applied. The name and
// modification list are left alone.
func Apply(iv Intervals, m Modification) Intervals {
	switch m.Kind {
	case Omit:
		for _, s := range m.Remove {
			iv = iv.removePitchClass(s)
		}
	case AddInterval:
		for _, s := range m.Add {
			iv = iv.AddSemitone(s)
		}
	case Replace:
		for _, s := range m.Remove {
			iv = iv.removePitchClass(s)
		}
		for _, s := range m.Add {
			iv = iv.AddSemitone(s)
		}
	case Rotate:
		iv = iv.RotateSemitones(m.Steps)
		iv.Inversion += m.Steps
	}
	return iv
}

// IntervalsFromName resolves a chord quality name such as "m7", "ø",
// "7sus4b9" or "min/b6" to its semitones.
func IntervalsFromName(name string) (Intervals, error) {
	// very special case: the empty string is major
	if name == "" {
		iv, err := IntervalsFromName("major")
		iv.Name = ""
		return iv, err
	}

	if strings.HasSuffix(name, " interval") {
		s, err := degree.ToSemitone(strings.TrimSuffix(name, " interval"))
		if err != nil {
			return Intervals{}, fmt.Errorf("%w: %q: %v", ErrInvalidChord, name, err)
		}
		return NewIntervals(name, []int{s}), nil
	}

	if strings.Contains(name, "/") {
		return slashIntervalsFromName(name)
	}

	if iv, ok := fromModifiedName(name); ok {
		return iv, nil
	}

	if degrees, ok := constants.ChordNames[name]; ok {
		return IntervalsFromDegrees(name, degrees)
	}

	for _, alias := range constants.ChordAliases {
		if !strings.Contains(name, alias.Alias) {
			continue
		}
		canonical := strings.ReplaceAll(name, alias.Alias, alias.Canonical)
		if degrees, ok := constants.ChordNames[canonical]; ok {
			return IntervalsFromDegrees(name, degrees)
		}
	}

	return Intervals{}, fmt.Errorf("%w: no chord found for name %q", ErrInvalidChord, name)
}

// fromModifiedName strips the first matching modification token, resolves
// the rest and applies the token on top.
func fromModifiedName(name string) (Intervals, bool) {
	for _, m := range Modifications {
		if !strings.HasSuffix(name, m.Token) {
			continue
		}
		base, err := IntervalsFromName(strings.TrimSuffix(name, m.Token))
		if err != nil {
			return Intervals{}, false
		}
		res := Apply(base, m)
		res.Name = base.Name + m.Token
		res.Modifications = append(slices.Clone(base.Modifications), m.Token)
		return res, true
	}
	return Intervals{}, false
}

// slashIntervalsFromName handles "quality/degree" names. The bass is the
// root of the result and the quality sits above it, its own root the given
// degree above the bass's octave: "min/7" is a minor triad a semitone up,
// {0 1 4 8}.
func slashIntervalsFromName(name string) (Intervals, error) {
	parts := strings.Split(name, "/")
	if len(parts) != 2 {
		return Intervals{}, fmt.Errorf("%w: %q has more than one slash", ErrInvalidChord, name)
	}

	bass, err := degree.ToSemitone(parts[1])
	if err != nil {
		return Intervals{}, fmt.Errorf("%w: bad bass degree in %q: %v", ErrInvalidChord, name, err)
	}

	upper, err := IntervalsFromName(parts[0])
	if err != nil {
		return Intervals{}, err
	}

	shift := 12 - bass
	semitones := make([]int, len(upper.Semitones))
	for i, st := range upper.Semitones {
		semitones[i] = st + shift
	}
	res := NewIntervals(name, semitones)
	res.Modifications = slices.Clone(upper.Modifications)
	return res, nil
}
