package progression

import (
	"path/filepath"
	"testing"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/cluster"
	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(p Progression) []string {
	var res []string
	for _, c := range p.Chords {
		res = append(res, c.Name)
	}
	return res
}

func TestFromString(t *testing.T) {
	assert := assert.New(t)
	p, err := FromString("  C G -- \n Am  ")
	require.NoError(t, err)
	assert.Equal([]string{"C", "G", "G", "Am"}, names(p))
	assert.True(p.Chords[1].Equal(p.Chords[2]))

	p, err = FromString("")
	require.NoError(t, err)
	assert.Empty(p.Chords)
}

func TestFromStringErrors(t *testing.T) {
	_, err := FromString("-- C")
	assert.ErrorIs(t, err, ErrInvalidProgression)

	_, err = FromString("C goop")
	assert.ErrorIs(t, err, chord.ErrInvalidChord)
}

func TestToString(t *testing.T) {
	p, err := FromString("C G G Am F")
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal("C   G   --  Am\nF\n", p.ToString(4, 2))
	assert.Equal("C  G  --\nAm F\n", p.ToString(3, 1))
	assert.Equal("", Progression{}.ToString(4, 2))

	again, err := FromString(p.ToString(4, 2))
	require.NoError(t, err)
	assert.Equal(names(p), names(again))
}

func TestTxtRoundTrip(t *testing.T) {
	p, err := FromString("Dm7 G7 Cmaj7 --")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "song.txt")
	require.NoError(t, p.ToTxt(path, 4, 2))

	read, err := FromTxt(path)
	require.NoError(t, err)
	assert.Equal(t, names(p), names(read))
}

func TestMidi(t *testing.T) {
	p, err := FromString("C Am")
	require.NoError(t, err)

	m, err := p.Midi()
	require.NoError(t, err)
	assert.Equal(t, [][]int{{60, 64, 67}, {69, 72, 76}}, m)

	p, err = FromString("IV")
	require.NoError(t, err)
	_, err = p.Midi()
	assert.ErrorIs(t, err, note.ErrInvalidNote)
}

func TestNotes(t *testing.T) {
	p, err := FromString("C G")
	require.NoError(t, err)

	notes, err := p.Notes(DefaultSettings)
	require.NoError(t, err)

	assert := assert.New(t)
	require.Len(t, notes, 6)
	assert.Equal(model.MidiNote{Time: 0, Pitch: 60, Duration: 1, Velocity: 100}, notes[0])
	assert.Equal(model.MidiNote{Time: 1, Pitch: 74, Duration: 1, Velocity: 100}, notes[5])

	_, err = p.Notes(Settings{Tempo: 120})
	assert.ErrorIs(err, ErrInvalidProgression)

	high, err := FromString("C 10C")
	require.NoError(t, err)
	_, err = high.Notes(DefaultSettings)
	assert.ErrorIs(err, chord.ErrInvalidChord)
}

func TestFromNotes(t *testing.T) {
	notes := []model.MidiNote{
		{Time: 0, Pitch: 77, Duration: 1, Velocity: 100},
		{Time: 0.01, Pitch: 80, Duration: 1, Velocity: 100},
		{Time: 0.02, Pitch: 84, Duration: 1, Velocity: 100},
		{Time: 1, Pitch: 22, Duration: 1, Velocity: 100},
		{Time: 1, Pitch: 26, Duration: 1, Velocity: 100},
		{Time: 1, Pitch: 29, Duration: 1, Velocity: 100},
	}
	p, err := FromNotes(notes, cluster.Grouper{MinSeparation: constants.DefaultMinSeparation})
	require.NoError(t, err)
	assert.Equal(t, []string{"Fmin", "A#"}, names(p))
}

func TestMidiFileRoundTrip(t *testing.T) {
	p, err := FromString("C G Am F")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "song.mid")
	require.NoError(t, p.ToMidiFile(path, DefaultSettings))

	read, err := FromMidiFile(path, cluster.Grouper{MinSeparation: constants.DefaultMinSeparation})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "G", "Amin", "F"}, names(read))
}

func TestSongToString(t *testing.T) {
	verse, err := FromString("C G Am F")
	require.NoError(t, err)
	chorus, err := FromString("F G C C")
	require.NoError(t, err)

	song := Song{Sections: []Section{
		{Name: "Verse", Progression: verse},
		{Name: "Chorus", Progression: chorus},
		{Name: "Chorus", Progression: chorus},
		{Name: "Verse", Progression: verse},
	}}

	expected := "Verse\n" +
		"=====\n" +
		"C   G   Am  F\n" +
		"\n" +
		"Chorus (x2)\n" +
		"===========\n" +
		"F  G  C  --\n" +
		"\n" +
		"Verse\n" +
		"=====\n" +
		"C   G   Am  F\n"
	assert.Equal(t, expected, song.ToString(4, 2))
	assert.Equal(t, "", Song{}.ToString(4, 2))
}

func TestSectionEqual(t *testing.T) {
	a, err := FromString("C G")
	require.NoError(t, err)
	b, err := FromString("C Am")
	require.NoError(t, err)

	assert := assert.New(t)
	assert.True(Section{Name: "A", Progression: a}.Equal(Section{Name: "A", Progression: a}))
	assert.False(Section{Name: "A", Progression: a}.Equal(Section{Name: "B", Progression: a}))
	assert.False(Section{Name: "A", Progression: a}.Equal(Section{Name: "A", Progression: b}))
}
