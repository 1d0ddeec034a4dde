package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/chordex/chord"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <name>...",
	Short: "Shows the notes of chords",
	Long: `Shows the notes of chords given by name, e.g.

  chordex chord Amaj7 3Bbm7b5 C/E`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range args {
			c, err := chord.FromName(name)
			if err != nil {
				return err
			}
			printChord(cmd.OutOrStdout(), c)
		}
		return nil
	},
}

func printChord(w io.Writer, c chord.Chord) {
	res := toChordResponse(c)
	fmt.Fprintf(w, "%v\n", res.Name)
	fmt.Fprintf(w, "  root: %v\n", res.Root)
	fmt.Fprintf(w, "  bass: %v\n", res.Bass)
	fmt.Fprintf(w, "  semitones: %v\n", res.Semitones)
	if res.Midi != nil {
		fmt.Fprintf(w, "  midi: %v\n", res.Midi)
	}
	if len(res.Modifications) > 0 {
		fmt.Fprintf(w, "  modifications: %v\n", res.Modifications)
	}
}
