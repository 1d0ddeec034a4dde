package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jsphweid/chordex/chord"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(nameCmd)
}

var nameCmd = &cobra.Command{
	Use:   "name <semitone>...",
	Short: "Names a set of semitones",
	Long: `Names a set of semitones above an implicit root, e.g.

  chordex name 4 7 11`,
	RunE: func(cmd *cobra.Command, args []string) error {
		semitones, err := parseInts(args)
		if err != nil {
			return err
		}
		printName(cmd.OutOrStdout(), semitones)
		return nil
	},
}

func parseInts(args []string) ([]int, error) {
	res := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", arg)
		}
		res = append(res, n)
	}
	return res, nil
}

func printName(w io.Writer, semitones []int) {
	options := chord.NameOptions(semitones)
	fmt.Fprintf(w, "name: %q\n", chord.Name(semitones))
	quoted := make([]string, len(options))
	for i, o := range options {
		quoted[i] = strconv.Quote(o)
	}
	fmt.Fprintf(w, "options: %v\n", strings.Join(quoted, ", "))
}
