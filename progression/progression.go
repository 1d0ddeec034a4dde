package progression

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/cluster"
	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/midi"
	"github.com/jsphweid/chordex/model"
)

var ErrInvalidProgression = errors.New("invalid progression")

type Progression struct {
	Chords []chord.Chord
}

type Settings struct {
	Tempo         float64
	BeatsPerChord float64
	Instrument    uint8
	Velocity      uint8
}

var DefaultSettings = Settings{Tempo: 120, BeatsPerChord: 2, Instrument: 1, Velocity: 100}

// FromString parses whitespace separated chord names. The repetition symbol
// repeats the previous chord.
func FromString(s string) (Progression, error) {
	var p Progression
	for _, name := range strings.Fields(s) {
		if name == constants.RepetitionSymbol {
			if len(p.Chords) == 0 {
				return Progression{}, fmt.Errorf("%w: can't repeat before the first chord", ErrInvalidProgression)
			}
			p.Chords = append(p.Chords, p.Chords[len(p.Chords)-1])
			continue
		}

		c, err := chord.FromName(name)
		if err != nil {
			return Progression{}, err
		}
		p.Chords = append(p.Chords, c)
	}
	return p, nil
}

func FromTxt(path string) (Progression, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return Progression{}, err
	}
	return FromString(string(dat))
}

// FromNotes groups the notes into chords and names each group.
func FromNotes(notes []model.MidiNote, grouper cluster.Grouper) (Progression, error) {
	var p Progression
	for _, group := range grouper.Group(notes) {
		pitches := make([]int, len(group))
		for i, n := range group {
			pitches[i] = int(n.Pitch)
		}
		c, err := chord.FromMidi(pitches)
		if err != nil {
			return Progression{}, err
		}
		p.Chords = append(p.Chords, c)
	}
	return p, nil
}

func FromMidiFile(path string, grouper cluster.Grouper) (Progression, error) {
	notes, err := midi.ReadNotes(path)
	if err != nil {
		return Progression{}, err
	}
	return FromNotes(notes, grouper)
}

// ToString lays the chords out in rows. A chord equal to the one before it
// is written with the repetition symbol.
func (p Progression) ToString(chordsPerRow, columnSpacing int) string {
	if len(p.Chords) == 0 {
		return ""
	}
	if chordsPerRow < 1 {
		chordsPerRow = 1
	}

	width := 0
	for _, c := range p.Chords {
		if len(c.Name) > width {
			width = len(c.Name)
		}
	}
	width += columnSpacing

	var rows []string
	var row strings.Builder
	for i, c := range p.Chords {
		name := c.Name
		if i > 0 && c.Equal(p.Chords[i-1]) {
			name = constants.RepetitionSymbol
		}
		row.WriteString(name)
		row.WriteString(strings.Repeat(" ", max(width-len(name), 1)))

		if (i+1)%chordsPerRow == 0 || i == len(p.Chords)-1 {
			rows = append(rows, strings.TrimRight(row.String(), " "))
			row.Reset()
		}
	}
	return strings.Join(rows, "\n") + "\n"
}

func (p Progression) ToTxt(path string, chordsPerRow, columnSpacing int) error {
	return os.WriteFile(path, []byte(p.ToString(chordsPerRow, columnSpacing)), 0644)
}

// Midi returns the MIDI pitches of every chord.
func (p Progression) Midi() ([][]int, error) {
	res := make([][]int, 0, len(p.Chords))
	for _, c := range p.Chords {
		m, err := c.Midi()
		if err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, nil
}

// Notes renders the progression with every chord held for the same number
// of beats.
func (p Progression) Notes(settings Settings) ([]model.MidiNote, error) {
	if settings.Tempo <= 0 || settings.BeatsPerChord <= 0 {
		return nil, fmt.Errorf("%w: tempo and beats per chord must be positive", ErrInvalidProgression)
	}
	chords, err := p.Midi()
	if err != nil {
		return nil, err
	}

	secondsPerChord := 60 / settings.Tempo * settings.BeatsPerChord
	var res []model.MidiNote
	for i, pitches := range chords {
		for _, pitch := range pitches {
			res = append(res, model.MidiNote{
				Time:     float64(i) * secondsPerChord,
				Pitch:    uint8(pitch),
				Duration: secondsPerChord,
				Velocity: settings.Velocity,
			})
		}
	}
	return res, nil
}

func (p Progression) ToMidiFile(path string, settings Settings) error {
	notes, err := p.Notes(settings)
	if err != nil {
		return err
	}
	return midi.WriteFile(path, notes, midi.Settings{Tempo: settings.Tempo, Instrument: settings.Instrument})
}
