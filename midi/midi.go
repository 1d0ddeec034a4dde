package midi

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/jsphweid/chordex/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = &blank
			e = fmt.Errorf("error parsing midi file: %v", r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, fmt.Errorf("error reading midi file: %w", err)
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("error parsing midi file: %w", err)
	}

	return res, nil
}

// ReadNotes reads every note of every track in the file.
func ReadNotes(filepath string) ([]model.MidiNote, error) {
	s, err := ReadMidiFile(filepath)
	if err != nil {
		return nil, err
	}
	return NotesFromSMF(s), nil
}

type held struct {
	start    int64
	velocity uint8
}

func microsToSeconds(us int64) float64 {
	return float64(us) / 1e6
}

// NotesFromSMF pairs note ons with their note offs. A note that is struck
// again while still held ends at the new onset; notes never released end at
// the end of their track.
func NotesFromSMF(s *smf.SMF) []model.MidiNote {
	var res []model.MidiNote

	for _, events := range s.Tracks {
		var absTicks int64
		pressed := make(map[uint8]held)

		release := func(key uint8, end int64) {
			h, ok := pressed[key]
			if !ok {
				return
			}
			start := microsToSeconds(s.TimeAt(h.start))
			res = append(res, model.MidiNote{
				Time:     start,
				Pitch:    key,
				Duration: microsToSeconds(s.TimeAt(end)) - start,
				Velocity: h.velocity,
			})
			delete(pressed, key)
		}

		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				release(key, absTicks)
				// running status note offs are note ons without velocity
				if velocity > 0 {
					pressed[key] = held{start: absTicks, velocity: velocity}
				}
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				release(key, absTicks)
			}
		}

		for key := range pressed {
			release(key, absTicks)
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Time != res[j].Time {
			return res[i].Time < res[j].Time
		}
		return res[i].Pitch < res[j].Pitch
	})
	return res
}
