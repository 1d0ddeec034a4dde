package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chordex",
	Short: "Names chords and converts chord progressions",
	Long: `chordex names sets of notes as chords, resolves chord names to notes and
converts chord progressions between text and MIDI.`,
	SilenceUsage: true,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
