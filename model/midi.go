package model

// MidiNote is one note with its onset and duration in seconds.
type MidiNote struct {
	Time     float64 `json:"time"`
	Pitch    uint8   `json:"pitch"`
	Duration float64 `json:"duration"`
	Velocity uint8   `json:"velocity"`
}

// End is the note-off time.
func (n MidiNote) End() float64 {
	return n.Time + n.Duration
}

type MidiMetadata struct {
	Year    uint   `json:"year"`
	Artist  string `json:"artist"`
	Release string `json:"release"`
	Title   string `json:"title"`
}
