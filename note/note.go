package note

import (
	"errors"
	"fmt"
	"math"

	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/degree"
)

var ErrInvalidNote = errors.New("invalid note")

// c0 is the MIDI value of C in octave 0, so that C4 is 60.
const c0 = 12

// Note is an absolute pitch: a letter with accidentals and an octave.
type Note struct {
	Name   string
	Octave int
}

func New(name string, octave int) Note {
	return Note{Name: name, Octave: octave}
}

func (n Note) String() string {
	return fmt.Sprintf("%v%v", n.Name, n.Octave)
}

// Equal reports whether both notes are in the same octave and have the same
// or an enharmonic spelling. Note{"G#", 4} equals Note{"Ab", 4} but not
// Note{"Ab", 3}.
func (n Note) Equal(other Note) bool {
	if n.Octave != other.Octave {
		return false
	}
	return SameName(n.Name, other.Name)
}

// SameName compares spellings, treating the five enharmonic pairs as equal.
func SameName(a, b string) bool {
	if a == b {
		return true
	}
	for _, pair := range constants.Enharmonic {
		if a == pair[0] {
			return b == pair[1]
		}
		if a == pair[1] {
			return b == pair[0]
		}
	}
	return false
}

// Midi returns the MIDI note value.
func (n Note) Midi() (int, error) {
	pc, err := pitchClassOffset(n.Name)
	if err != nil {
		return 0, err
	}
	return c0 + pc + 12*n.Octave, nil
}

// pitchClassOffset is the letter's major-scale offset plus accidentals,
// without wrapping: "Cb" is -1 and "B#" is 12.
func pitchClassOffset(name string) (int, error) {
	base, shift, err := degree.SplitToBaseAndShift(name, true)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNote, name)
	}
	for i, letter := range constants.MajorFromC {
		if base == letter {
			return constants.MajorScaleOffsets[i+1] + shift, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidNote, name)
}

// FromMidi spells a MIDI value with sharps.
func FromMidi(m int) Note {
	return Note{
		Name:   constants.Chromatic[mod(m, 12)],
		Octave: floorDiv(m-c0, 12),
	}
}

// Transpose moves the note by shift semitones. The result is spelled with
// sharps; a zero shift returns the note as is.
func (n Note) Transpose(shift int) (Note, error) {
	m, err := n.Midi()
	if err != nil {
		return Note{}, err
	}
	if shift == 0 {
		return n, nil
	}
	return FromMidi(m + shift), nil
}

// TransposeDegree moves the note up, or down, by a scale degree such as
// "b2" or "5".
func (n Note) TransposeDegree(d string, down bool) (Note, error) {
	shift, err := degree.ToSemitone(d)
	if err != nil {
		return Note{}, err
	}
	if down {
		shift = -shift
	}
	return n.Transpose(shift)
}

// Sub returns the number of semitones from other up to n.
func (n Note) Sub(other Note) (int, error) {
	a, err := n.Midi()
	if err != nil {
		return 0, err
	}
	b, err := other.Midi()
	if err != nil {
		return 0, err
	}
	return a - b, nil
}

// Pitch returns the frequency in Hz, with A4 at 440.
func (n Note) Pitch() (float64, error) {
	m, err := n.Midi()
	if err != nil {
		return 0, err
	}
	return MidiToPitch(m), nil
}

func MidiToPitch(m int) float64 {
	return 440 * math.Pow(2, float64(m-69)/12)
}

// Diff counts the semitones walking up from low until reaching the pitch
// class of high. Octaves are ignored.
//
//	Diff("G", "A") == 2
//	Diff("A", "G") == 10
func Diff(low, high string) (int, error) {
	a, err := pitchClassOffset(low)
	if err != nil {
		return 0, err
	}
	b, err := pitchClassOffset(high)
	if err != nil {
		return 0, err
	}
	return mod(b-a, 12), nil
}

func mod(a, b int) int {
	return ((a % b) + b) % b
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
