package constants

// RepetitionSymbol means "repeat the previous chord" in textual progressions.
const RepetitionSymbol = "--"

// MajorScaleOffsets maps scale degrees 1-7 to semitones above the root.
var MajorScaleOffsets = map[int]int{1: 0, 2: 2, 3: 4, 4: 5, 5: 7, 6: 9, 7: 11}

var MajorFromC = []string{"C", "D", "E", "F", "G", "A", "B"}

// Roman numerals stand in for a root in relative voicings. They are never
// valid MIDI notes.
var Roman = []string{"I", "II", "III", "IV", "V", "VI", "VII"}

var Letters = append(append([]string{}, Roman...), MajorFromC...)

var Accidentals = []string{"b", "#"}

var Chromatic = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var Enharmonic = [][2]string{{"C#", "Db"}, {"D#", "Eb"}, {"F#", "Gb"}, {"G#", "Ab"}, {"A#", "Bb"}}

// ChordNames maps a canonical chord quality to its scale degrees, root excluded.
var ChordNames = map[string][]string{
	// Major
	"maj":   {"3", "5"},
	"maj7":  {"3", "5", "7"},
	"maj9":  {"3", "5", "7", "9"},
	"maj11": {"3", "5", "7", "9", "11"},
	"maj13": {"3", "5", "7", "9", "11", "13"},
	"6":     {"3", "5", "6"},
	"69":    {"3", "5", "6", "9"},
	"b6":    {"3", "5", "b6"},
	"5":     {"5"},

	// Dominant
	"7":  {"3", "5", "b7"},
	"9":  {"3", "5", "b7", "9"},
	"11": {"3", "5", "b7", "9", "11"},
	"13": {"3", "5", "b7", "9", "11", "13"},

	// Minor
	"m":     {"b3", "5"},
	"m6":    {"b3", "5", "6"},
	"m7":    {"b3", "5", "b7"},
	"m9":    {"b3", "5", "b7", "9"},
	"m11":   {"b3", "5", "b7", "9", "11"},
	"m13":   {"b3", "5", "b7", "9", "11", "13"},
	"mmaj7": {"b3", "5", "7"},

	// Diminished
	"dim":     {"b3", "b5"},
	"m7b5":    {"b3", "b5", "b7"},
	"dim7":    {"b3", "b5", "bb7"},
	"dimmaj7": {"b3", "b5", "7"},

	// Augmented
	"aug":     {"3", "#5"},
	"aug7":    {"3", "#5", "b7"},
	"augmaj7": {"3", "#5", "7"},

	// Suspended
	"7sus2": {"2", "5", "b7"},
	"7sus4": {"4", "5", "b7"},

	// Modal triads
	"phryg":     {"b2", "5"},
	"phryg7":    {"b2", "5", "b7"},
	"phrygmaj7": {"b2", "5", "7"},
	"lyd":       {"#4", "5"},
	"lyd7":      {"#4", "5", "b7"},
	"lydmaj7":   {"#4", "5", "7"},

	// Note
	"n": {},
}

// ChordAlias is one substring substitution tried when a name is not canonical.
type ChordAlias struct {
	Alias     string
	Canonical string
}

// ChordAliases are tried in order. Longer aliases that contain shorter ones
// ("dom" contains "o", "note" contains "o") must come first.
var ChordAliases = []ChordAlias{
	// Major
	{"major", "maj"},
	{"maj", "maj"},

	// Minor
	{"-", "m"},
	{"minor", "m"},
	{"min", "m"},

	// Dominant
	{"dom", "7"},

	// Note
	{"note", "n"},

	// Diminished
	{"o", "dim7"},
	{"ø", "m7b5"},

	// Augmented
	{"+", "aug"},
}

// Dyads maps the single non-root semitone of a two-note chord to its name.
var Dyads = map[int]string{3: "min(no5)", 4: "(no5)", 7: "5"}

// TriadsWithFifth maps the semitone that is neither root nor fifth to the
// name of the three-note chord.
var TriadsWithFifth = map[int]string{
	1:  "phryg",
	2:  "sus2",
	3:  "min",
	4:  "",
	5:  "sus4",
	6:  "lyd",
	8:  "b6(no3)",
	9:  "6(no3)",
	10: "7(no3)",
	11: "maj7(no3)",
}
