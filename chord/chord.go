package chord

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/degree"
	"github.com/jsphweid/chordex/note"
	"github.com/jsphweid/chordex/util"
	"golang.org/x/exp/slices"
)

const defaultOctave = 4

// Chord is a chord quality placed on a root note.
type Chord struct {
	Name      string
	Root      note.Note
	Intervals Intervals
}

// octavePrefixes holds "-15" through "15" and "+0" through "+15", longest
// first so that "10" is never read as "1".
var octavePrefixes = buildOctavePrefixes()

func buildOctavePrefixes() []string {
	var res []string
	for i := 0; i <= 15; i++ {
		res = append(res, strconv.Itoa(i), "+"+strconv.Itoa(i), "-"+strconv.Itoa(i))
	}
	sort.SliceStable(res, func(i, j int) bool {
		return len(res[i]) > len(res[j])
	})
	return res
}

// FromName parses names like "Amaj7", "3Bb7sus4", "-1F#m7b5" or "A/G". The
// octave prefix defaults to 4.
func FromName(name string) (Chord, error) {
	octave := defaultOctave
	rest := name
	for _, prefix := range octavePrefixes {
		if strings.HasPrefix(rest, prefix) && len(rest) > len(prefix) {
			octave, _ = strconv.Atoi(prefix)
			rest = rest[len(prefix):]
			break
		}
	}

	letter := ""
	for _, l := range constants.Letters {
		if strings.HasPrefix(rest, l) && len(l) > len(letter) {
			letter = l
		}
	}
	if letter == "" {
		return Chord{}, fmt.Errorf("%w: no root in %q", ErrInvalidChord, name)
	}

	rootName := letter
	rest = rest[len(letter):]
	for _, acc := range constants.Accidentals {
		if strings.HasPrefix(rest, acc) {
			rootName += acc
			rest = rest[len(acc):]
			break
		}
	}
	root := note.New(rootName, octave)

	if !strings.Contains(rest, "/") {
		iv, err := IntervalsFromName(rest)
		if err != nil {
			return Chord{}, err
		}
		return Chord{Name: rootName + rest, Root: root, Intervals: iv}, nil
	}

	parts := strings.Split(rest, "/")
	if len(parts) != 2 {
		return Chord{}, fmt.Errorf("%w: %q has more than one slash", ErrInvalidChord, name)
	}
	iv, err := IntervalsFromName(parts[0])
	if err != nil {
		return Chord{}, err
	}
	// the bass goes below the root
	diff, err := note.Diff(parts[1], rootName)
	if err != nil {
		return Chord{}, fmt.Errorf("%w: bad bass in %q: %v", ErrInvalidChord, name, err)
	}
	return Chord{Name: rootName + rest, Root: root, Intervals: iv.AddSemitone(-diff)}, nil
}

// FromRootAndSemitones names the semitones above root. Slash names get a
// new root so they read naturally: min/b6 over A becomes "C#min/A".
func FromRootAndSemitones(root note.Note, semitones []int) (Chord, error) {
	iv := IntervalsFromSemitones(semitones)
	if !strings.Contains(iv.Name, "/") {
		return Chord{Name: root.Name + iv.Name, Root: root, Intervals: iv}, nil
	}

	parts := strings.SplitN(iv.Name, "/", 2)
	bass, err := degree.ToSemitone(parts[1])
	if err != nil {
		return Chord{}, err
	}
	newRoot, err := note.New(root.Name, 0).Transpose(12 - bass)
	if err != nil {
		return Chord{}, err
	}
	name := fmt.Sprintf("%v%v/%v", newRoot.Name, parts[0], root.Name)
	return Chord{Name: name, Root: root, Intervals: iv}, nil
}

// FromMidi names a set of MIDI pitches, using the lowest one as the root.
func FromMidi(pitches []int) (Chord, error) {
	if len(pitches) == 0 {
		return Chord{}, fmt.Errorf("%w: no pitches", ErrInvalidChord)
	}
	lowest := util.Min(pitches)
	semitones := make([]int, len(pitches))
	for i, p := range pitches {
		semitones[i] = p - lowest
	}
	return FromRootAndSemitones(note.FromMidi(lowest), semitones)
}

func (c Chord) Semitones() []int {
	return slices.Clone(c.Intervals.Semitones)
}

func (c Chord) Sequence() []int {
	return c.Intervals.Sequence()
}

// Bass is the lowest note, which is below the root for slash chords.
func (c Chord) Bass() (note.Note, error) {
	if len(c.Intervals.Semitones) == 0 {
		return c.Root, nil
	}
	return c.Root.Transpose(c.Intervals.Semitones[0])
}

// Midi returns the MIDI pitches of the chord, failing when any of them is
// outside 0 to 127.
func (c Chord) Midi() ([]int, error) {
	root, err := c.Root.Midi()
	if err != nil {
		return nil, err
	}
	res := make([]int, len(c.Intervals.Semitones))
	for i, s := range c.Intervals.Semitones {
		res[i] = root + s
		if res[i] < 0 || res[i] > 127 {
			return nil, fmt.Errorf("%w: pitch %v of %v is out of MIDI range", ErrInvalidChord, res[i], c.Name)
		}
	}
	return res, nil
}

// Transpose moves the root and renames the chord after it.
func (c Chord) Transpose(shift int) (Chord, error) {
	root, err := c.Root.Transpose(shift)
	if err != nil {
		return Chord{}, err
	}
	return Chord{Name: root.Name + c.Intervals.Name, Root: root, Intervals: c.Intervals}, nil
}

// Equal compares roots (enharmonically) and semitones. Names are ignored.
func (c Chord) Equal(other Chord) bool {
	return c.Root.Equal(other.Root) && c.Intervals.Equal(other.Intervals)
}

func (c Chord) String() string {
	return fmt.Sprintf("Chord(name='%v', root=%v, intervals=%v)", c.Name, c.Root, c.Intervals)
}
