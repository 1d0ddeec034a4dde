package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/chordex/cluster"
	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/file"
	"github.com/jsphweid/chordex/midi"
	"github.com/jsphweid/chordex/progression"
	"github.com/spf13/cobra"
)

var (
	midiSettings  = progression.DefaultSettings
	chordsPerRow  int
	columnSpacing int
	minSeparation = constants.GetMinSeparation()
	windowFrom    float64
	windowTo      float64
)

func init() {
	flags := convertCmd.Flags()
	flags.Float64Var(&midiSettings.Tempo, "tempo", midiSettings.Tempo, "tempo in BPM of written MIDI")
	flags.Float64Var(&midiSettings.BeatsPerChord, "beats-per-chord", midiSettings.BeatsPerChord, "beats each chord is held in written MIDI")
	flags.Uint8Var(&midiSettings.Instrument, "instrument", midiSettings.Instrument, "General MIDI program of written MIDI")
	flags.Uint8Var(&midiSettings.Velocity, "velocity", midiSettings.Velocity, "velocity of written MIDI notes")
	flags.IntVar(&chordsPerRow, "chords-per-row", 4, "chords per row of written text")
	flags.IntVar(&columnSpacing, "column-spacing", 2, "spaces between columns of written text")
	flags.Float64Var(&minSeparation, "min-separation", minSeparation, "seconds between onsets that split chords when reading MIDI")
	flags.Float64Var(&windowFrom, "from", 0, "seconds into read MIDI to start at")
	flags.Float64Var(&windowTo, "to", 0, "seconds into read MIDI to stop at, 0 for the end")

	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Converts a chord progression between formats",
	Long: `Converts a chord progression between formats. The input is a .txt or
.mid file or the progression itself, e.g. "C G -- Am". The output is a .txt or
.mid file, or - to print the progression.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return convert(cmd.OutOrStdout(), args[0], args[1])
	},
}

func readProgression(in string) (progression.Progression, error) {
	kind := file.KindOf(in)
	if !kind.Supported() {
		return progression.Progression{}, fmt.Errorf("sorry, reading %v is not supported", kind)
	}

	switch kind {
	case file.Txt:
		return progression.FromTxt(in)
	case file.Midi:
		notes, err := midi.ReadNotes(in)
		if err != nil {
			return progression.Progression{}, err
		}
		return progression.FromNotes(midi.Window(notes, windowFrom, windowTo), cluster.Grouper{MinSeparation: minSeparation})
	}
	return progression.FromString(in)
}

func convert(w io.Writer, in, out string) error {
	p, err := readProgression(in)
	if err != nil {
		return err
	}

	if out == "-" {
		fmt.Fprint(w, p.ToString(chordsPerRow, columnSpacing))
		return nil
	}

	kind := file.KindOf(out)
	if !kind.Writable() {
		return fmt.Errorf("unknown or unsupported output format: %v", out)
	}
	if kind == file.Txt {
		err = p.ToTxt(out, chordsPerRow, columnSpacing)
	} else {
		err = p.ToMidiFile(out, midiSettings)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Wrote %v chords to %v\n", len(p.Chords), out)
	return nil
}
