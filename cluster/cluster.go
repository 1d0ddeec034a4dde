package cluster

import (
	"math"
	"sort"

	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/model"
	"gonum.org/v1/gonum/floats"
)

// Kernel weighs a note by its distance in seconds from a point in time.
type Kernel func(distance float64) float64

// Grouper splits a stream of notes into chords by finding dense runs of
// onsets with a kernel density estimate. MinSeparation is both the kernel
// bandwidth and the bucket width.
type Grouper struct {
	MinSeparation float64
	Kernel        Kernel
}

// GaussianKernel returns exp(-(d/bandwidth)^2).
func GaussianKernel(bandwidth float64) Kernel {
	return func(distance float64) float64 {
		return math.Exp(-math.Pow(distance/bandwidth, 2))
	}
}

// Group uses the default separation and kernel.
func Group(notes []model.MidiNote) [][]model.MidiNote {
	return Grouper{MinSeparation: constants.DefaultMinSeparation}.Group(notes)
}

// Group returns the notes grouped into chords, in time order. Every note ends
// up in exactly one chord.
func (g Grouper) Group(notes []model.MidiNote) [][]model.MidiNote {
	if len(notes) == 0 {
		return nil
	}

	minSep := g.MinSeparation
	if minSep <= 0 {
		minSep = constants.DefaultMinSeparation
	}
	kernel := g.Kernel
	if kernel == nil {
		kernel = GaussianKernel(minSep)
	}

	sorted := make([]model.MidiNote, len(notes))
	copy(sorted, notes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})

	start := sorted[0].Time
	last := sorted[len(sorted)-1]
	if last.Time-start <= minSep {
		return [][]model.MidiNote{sorted}
	}

	kde := density(sorted, kernel, start, minSep, last.End()-start)

	buckets := make(map[int][]model.MidiNote)
	atNotes := make([]float64, len(sorted))
	for i, n := range sorted {
		b := bucketOf(n.Time, start, minSep, len(kde))
		buckets[b] = append(buckets[b], n)
		atNotes[i] = kde[b]
	}

	// every note must sit above the threshold, with a little slack for
	// floating point
	threshold := floats.Min(atNotes) * 0.95

	var res [][]model.MidiNote
	var current []model.MidiNote
	for i, v := range kde {
		if v > threshold {
			current = append(current, buckets[i]...)
			continue
		}
		if len(current) > 0 {
			res = append(res, current)
		}
		current = nil
	}
	if len(current) > 0 {
		res = append(res, current)
	}
	return res
}

// density evaluates the kernel sum at every bucket, bucket i being at
// start + i*width.
func density(notes []model.MidiNote, kernel Kernel, start, width, span float64) []float64 {
	n := int(math.Ceil(span / width))
	if n < 1 {
		n = 1
	}

	kde := make([]float64, n)
	weights := make([]float64, len(notes))
	for i := range kde {
		t := start + float64(i)*width
		for j, note := range notes {
			weights[j] = kernel(math.Abs(note.Time - t))
		}
		kde[i] = floats.Sum(weights)
	}
	return kde
}

func bucketOf(t, start, width float64, n int) int {
	b := int(math.Floor((t-start)/width + 1e-9))
	if b >= n {
		b = n - 1
	}
	if b < 0 {
		b = 0
	}
	return b
}
