package chord

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/degree"
	"github.com/jsphweid/chordex/util"
	"golang.org/x/exp/slices"
)

// Budget for the mutual recursion between "assume a fifth" and "split the
// triad" below.
const defaultRecursion = 5

// NameOptions returns plausible names for a set of semitones above a root,
// most reasonable first. The result is empty when nothing is found.
func NameOptions(semitones []int) []string {
	return nameOptions(semitones, defaultRecursion)
}

func nameOptions(semitones []int, rec int) []string {
	if rec == 0 {
		return []string{}
	}

	// remove octave duplicates, root first
	seen := map[int]bool{0: true}
	var folded []int
	for _, s := range util.SortedSet(semitones) {
		pc := util.Mod(s, 12)
		if seen[pc] {
			continue
		}
		seen[pc] = true
		folded = append(folded, s)
	}

	var res []string
	switch len(folded) {
	case 0:
		res = []string{"note"}
	case 1:
		res = singleSemitoneOptions(folded[0])
	case 2:
		res = twoSemitoneOptions(folded, rec)
	case 3:
		res = append(
			triadWithExtensionOptions(folded[2], folded[:2], rec),
			triadWithLowerNoteOptions(folded[0], folded[1:], rec)...,
		)
	}

	// try moving everything into the same octave
	singleOctave := make([]int, len(folded))
	for i, s := range folded {
		singleOctave[i] = util.Mod(s, 12)
	}
	singleOctave = util.SortedSet(singleOctave)
	if !slices.Equal(folded, singleOctave) {
		// intervals lose their meaning once octaves are collapsed
		for _, opt := range nameOptions(singleOctave, rec-1) {
			if !strings.Contains(opt, "interval") {
				res = append(res, opt)
			}
		}
	}

	return util.Unique(res)
}

func singleSemitoneOptions(semitone int) []string {
	var res []string
	if name, ok := constants.Dyads[semitone]; ok {
		res = append(res, name)
	}
	for _, d := range degree.Options(semitone, 1) {
		res = append(res, fmt.Sprintf("%v interval", d))
	}
	return res
}

func twoSemitoneOptions(semitones []int, rec int) []string {
	switch {
	case slices.Contains(semitones, 7):
		for _, s := range semitones {
			if name, ok := constants.TriadsWithFifth[s]; ok && s != 7 {
				return []string{name}
			}
		}
	case slices.Contains(semitones, 6):
		if slices.Contains(semitones, 3) {
			return []string{"dim"}
		}
	case slices.Contains(semitones, 8):
		if slices.Contains(semitones, 4) {
			return []string{"aug"}
		}
	}

	// name it as if it had a fifth, then take the fifth away
	var res []string
	for _, opt := range nameOptions(append(slices.Clone(semitones), 7), rec-1) {
		if strings.Contains(opt, "/") {
			continue
		}
		if !strings.Contains(opt, "(no5)") {
			opt += "(no5)"
		}
		res = append(res, opt)
	}
	return res
}

func triadWithExtensionOptions(upper int, lower []int, rec int) []string {
	switch upper {
	case 11:
		return extend(nameOptions(lower, rec-1), "maj7")
	case 10:
		res := extend(nameOptions(lower, rec-1), "7")
		if i := slices.Index(res, "dim7"); i >= 0 {
			res[i] = "min7b5"
		}
		return res
	case 9:
		if slices.Equal(lower, []int{3, 6}) {
			return []string{"dim7"}
		}
	}
	return []string{}
}

// extend adds an extension to every base name. Bare suspended triads take
// it as a prefix (maj7sus2) and omissions stay at the end (min7(no5)).
func extend(bases []string, extension string) []string {
	res := make([]string, 0, len(bases))
	for _, base := range bases {
		switch {
		case base == "sus2" || base == "sus4":
			res = append(res, extension+base)
		case strings.Contains(base, "("):
			i := strings.Index(base, "(")
			res = append(res, base[:i]+extension+base[i:])
		default:
			res = append(res, base+extension)
		}
	}
	return res
}

func triadWithLowerNoteOptions(lower int, upper []int, rec int) []string {
	bassOptions := degree.Options(12-lower, 1)
	if len(bassOptions) == 0 {
		return []string{}
	}
	bassDegree := bassOptions[0]
	bassBase, _, _ := degree.SplitToBaseAndShift(bassDegree, false)
	omitted := fmt.Sprintf("(no%v)", bassBase)

	shifted := make([]int, len(upper))
	for i, s := range upper {
		shifted[i] = s - lower
	}

	var res []string
	for _, opt := range nameOptions(shifted, rec-1) {
		name := fmt.Sprintf("%v/%v", opt, bassDegree)
		// the bass already supplies the omitted note
		if strings.Contains(name, bassDegree) && strings.Contains(name, omitted) {
			continue
		}
		res = append(res, name)
	}
	return res
}

// SelectName picks the best of the options: common chord qualities over
// bare intervals, over omissions, over slash chords.
func SelectName(options []string) string {
	options = removeIfPossible(options, func(o string) bool { return strings.Contains(o, "interval") })
	options = removeIfPossible(options, func(o string) bool { return strings.Contains(o, "(no5)") })
	options = removeIfPossible(options, func(o string) bool { return strings.Contains(o, "/") })
	if len(options) == 0 {
		return Unnamed
	}
	return options[0]
}

// Name picks the name of the semitones from the options that resolve back
// to the same pitch classes, or Unnamed when none do.
func Name(semitones []int) string {
	want := pitchClasses(NewIntervals("", semitones).Semitones)
	resolvable := util.Filter(NameOptions(semitones), func(o string) bool {
		iv, err := IntervalsFromName(o)
		return err == nil && slices.Equal(pitchClasses(iv.Semitones), want)
	})
	return SelectName(resolvable)
}

func pitchClasses(semitones []int) []int {
	res := make([]int, len(semitones))
	for i, s := range semitones {
		res[i] = util.Mod(s, 12)
	}
	return util.SortedSet(res)
}

// removeIfPossible drops the matching options unless that would drop all of them.
func removeIfPossible(options []string, pred func(string) bool) []string {
	kept := util.Filter(options, func(o string) bool { return !pred(o) })
	if len(kept) == 0 {
		return options
	}
	return kept
}
