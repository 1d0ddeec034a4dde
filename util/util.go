package util

import (
	"io/fs"
	"path/filepath"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func GatherAllMidiPaths(path string, maxNum int) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			if strings.HasSuffix(s, ".mid") || strings.HasSuffix(s, ".midi") {
				if maxNum == 0 || len(res) < maxNum {
					res = append(res, s)
				}
			}
		}
		return nil
	}
	err := filepath.WalkDir(path, walk)
	return res, err
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// Unique keeps the first occurrence of every value, preserving order.
func Unique[A comparable](vals []A) []A {
	res := make([]A, 0, len(vals))
	seen := make(map[A]bool, len(vals))
	for _, v := range vals {
		if seen[v] {
			continue
		}
		seen[v] = true
		res = append(res, v)
	}
	return res
}

// SortedSet returns the distinct values in ascending order.
func SortedSet[A constraints.Ordered](vals []A) []A {
	res := slices.Clone(vals)
	slices.Sort(res)
	return slices.Compact(res)
}

func Filter[A any](vals []A, keep func(A) bool) []A {
	var res []A
	for _, v := range vals {
		if keep(v) {
			res = append(res, v)
		}
	}
	return res
}

func Min[A constraints.Ordered](vals []A) A {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Mod is the non-negative remainder, so Mod(-1, 12) == 11.
func Mod[A constraints.Integer](a, b A) A {
	return ((a % b) + b) % b
}
