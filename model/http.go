package model

type NameRequestBody struct {
	Semitones []int `json:"semitones"`
}

type NameResponse struct {
	Options []string `json:"options"`
	Name    string   `json:"name"`
}

type ChordRequestBody struct {
	Name string `json:"name"`
}

type MidiRequestBody struct {
	Pitches []int `json:"pitches"`
}

type GroupRequestBody struct {
	Notes []MidiNote `json:"notes"`
}

type ChordResponse struct {
	Name          string   `json:"name"`
	Root          string   `json:"root"`
	Bass          string   `json:"bass"`
	Semitones     []int    `json:"semitones"`
	Midi          []int    `json:"midi"`
	Modifications []string `json:"modifications"`
}

type GroupResponse struct {
	Chords []ChordResponse `json:"chords"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
