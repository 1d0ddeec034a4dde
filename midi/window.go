package midi

import "github.com/jsphweid/chordex/model"

// Window keeps the notes starting in [from, to) and shifts them so the
// window starts at zero. A to of zero or less means the end of the notes.
// Notes are clipped at to.
func Window(notes []model.MidiNote, from, to float64) []model.MidiNote {
	var res []model.MidiNote
	for _, n := range notes {
		if n.Time < from || (to > 0 && n.Time >= to) {
			continue
		}
		if to > 0 && n.End() > to {
			n.Duration = to - n.Time
		}
		n.Time -= from
		res = append(res, n)
	}
	return res
}
