package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jsphweid/chordex/cluster"
	"github.com/jsphweid/chordex/db"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/progression"
	"github.com/jsphweid/chordex/util"
	"github.com/spf13/cobra"
)

var withMetadata bool

func init() {
	analyzeCmd.Flags().BoolVar(&withMetadata, "metadata", false, "look up song metadata in DynamoDB")
	analyzeCmd.Flags().Float64Var(&minSeparation, "min-separation", minSeparation, "seconds between onsets that split chords")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <dir> [max files]",
	Short: "Names the chords of every MIDI file in a directory",
	Long:  `Names the chords of every MIDI file in a directory`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var maxNum int
		if len(args) == 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			maxNum = n
		}

		analyzed, err := Analyze(args[0], maxNum, cluster.Grouper{MinSeparation: minSeparation})
		if err != nil {
			return err
		}

		var metadata map[string]model.MidiMetadata
		if withMetadata {
			metadata, err = db.GetMidiMetadatas(filenames(analyzed))
			if err != nil {
				return err
			}
		}
		printAnalyzed(cmd.OutOrStdout(), analyzed, metadata)
		return nil
	},
}

type AnalyzedFile struct {
	Path        string
	Progression progression.Progression
	Err         error
}

// Analyze reads every MIDI file under path. A file that can't be read is
// reported with its error rather than failing the whole run.
func Analyze(path string, maxNum int, grouper cluster.Grouper) ([]AnalyzedFile, error) {
	paths, err := util.GatherAllMidiPaths(path, maxNum)
	if err != nil {
		return nil, err
	}

	res := make([]AnalyzedFile, 0, len(paths))
	for _, p := range paths {
		prog, err := progression.FromMidiFile(p, grouper)
		res = append(res, AnalyzedFile{Path: p, Progression: prog, Err: err})
	}
	return res, nil
}

func filenames(analyzed []AnalyzedFile) []string {
	res := make([]string, len(analyzed))
	for i, a := range analyzed {
		res[i] = filepath.Base(a.Path)
	}
	return res
}

func printAnalyzed(w io.Writer, analyzed []AnalyzedFile, metadata map[string]model.MidiMetadata) {
	for _, a := range analyzed {
		fmt.Fprintf(w, "%v\n", a.Path)
		if m, ok := metadata[filepath.Base(a.Path)]; ok {
			fmt.Fprintf(w, "  %v - %v (%v, %v)\n", m.Artist, m.Title, m.Release, m.Year)
		}
		if a.Err != nil {
			fmt.Fprintf(w, "  error: %v\n", a.Err)
			continue
		}
		if len(a.Progression.Chords) == 0 {
			fmt.Fprintf(w, "  no notes\n")
			continue
		}
		rows := strings.TrimRight(a.Progression.ToString(8, 2), "\n")
		fmt.Fprintf(w, "  %v\n", strings.ReplaceAll(rows, "\n", "\n  "))
	}
	fmt.Fprintf(w, "Analyzed %v files\n", len(analyzed))
}
