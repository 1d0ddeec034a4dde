package midi

import (
	"fmt"
	"math"
	"sort"

	"github.com/jsphweid/chordex/model"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const ticksPerQuarter = 960

// OverlapMargin is how much earlier, in seconds, a held note is released
// when the same pitch is struck again.
const OverlapMargin = 0.001

type Settings struct {
	Tempo      float64
	Instrument uint8
	Channel    uint8
}

var DefaultSettings = Settings{Tempo: 120, Instrument: 1}

// Event is a note on or off at an absolute time in seconds.
type Event struct {
	Time     float64
	Pitch    uint8
	Velocity uint8
	On       bool
}

// ToEvents turns notes into time ordered on/off events. At the same time,
// offs come before ons.
func ToEvents(notes []model.MidiNote) []Event {
	events := make([]Event, 0, 2*len(notes))
	for _, n := range notes {
		events = append(events,
			Event{Time: n.Time, Pitch: n.Pitch, Velocity: n.Velocity, On: true},
			Event{Time: n.End(), Pitch: n.Pitch, Velocity: n.Velocity},
		)
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Time != events[j].Time {
			return events[i].Time < events[j].Time
		}
		return !events[i].On && events[j].On
	})
	return events
}

// RemoveOverlap makes sure a pitch is never struck while it is still held:
// the held note is released margin seconds before the new onset, and the
// extra note off that would follow is dropped.
func RemoveOverlap(events []Event, margin float64) []Event {
	holds := make(map[uint8]int)
	var res []Event
	for _, e := range events {
		if e.On {
			if holds[e.Pitch] > 0 {
				res = append(res, Event{Time: math.Max(0, e.Time-margin), Pitch: e.Pitch, Velocity: e.Velocity})
			}
			res = append(res, e)
			holds[e.Pitch]++
			continue
		}
		if holds[e.Pitch] <= 1 {
			res = append(res, e)
		}
		holds[e.Pitch]--
	}
	return res
}

func secondsToTicks(seconds, tempo float64) int64 {
	return int64(math.Round(seconds * tempo / 60 * ticksPerQuarter))
}

// WriteNotes renders the notes into a single track file.
func WriteNotes(notes []model.MidiNote, settings Settings) (*smf.SMF, error) {
	if settings.Tempo <= 0 {
		return nil, fmt.Errorf("invalid tempo %v", settings.Tempo)
	}
	if settings.Channel > 15 {
		return nil, fmt.Errorf("invalid channel %v", settings.Channel)
	}

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(settings.Tempo))
	tr.Add(0, gomidi.ProgramChange(settings.Channel, settings.Instrument))

	var last int64
	for _, e := range RemoveOverlap(ToEvents(notes), OverlapMargin) {
		at := secondsToTicks(e.Time, settings.Tempo)
		delta := at - last
		if delta < 0 {
			delta = 0
		}
		if e.On {
			tr.Add(uint32(delta), gomidi.NoteOn(settings.Channel, e.Pitch, e.Velocity))
		} else {
			tr.Add(uint32(delta), gomidi.NoteOff(settings.Channel, e.Pitch))
		}
		last += delta
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)
	if err := s.Add(tr); err != nil {
		return nil, err
	}
	return s, nil
}

func WriteFile(path string, notes []model.MidiNote, settings Settings) error {
	s, err := WriteNotes(notes, settings)
	if err != nil {
		return err
	}
	return s.WriteFile(path)
}
