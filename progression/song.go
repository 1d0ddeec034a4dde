package progression

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Section is a named part of a song, e.g. a verse or a chorus.
type Section struct {
	Name        string
	Progression Progression
}

type Song struct {
	Sections []Section
}

func (p Progression) Equal(other Progression) bool {
	if len(p.Chords) != len(other.Chords) {
		return false
	}
	for i := range p.Chords {
		if !p.Chords[i].Equal(other.Chords[i]) {
			return false
		}
	}
	return true
}

func (s Section) Equal(other Section) bool {
	return s.Name == other.Name && s.Progression.Equal(other.Progression)
}

// ToString writes every section under an underlined title, separated by a
// blank line. A section played several times in a row is written once with
// its count, e.g. "Chorus (x2)".
func (s Song) ToString(chordsPerRow, columnSpacing int) string {
	var parts []string
	for i := 0; i < len(s.Sections); {
		section := s.Sections[i]
		times := 1
		for i+times < len(s.Sections) && s.Sections[i+times].Equal(section) {
			times++
		}

		title := section.Name
		if times > 1 {
			title = fmt.Sprintf("%v (x%v)", section.Name, times)
		}
		parts = append(parts, fmt.Sprintf("%v\n%v\n%v",
			title,
			strings.Repeat("=", utf8.RuneCountInString(title)),
			section.Progression.ToString(chordsPerRow, columnSpacing),
		))
		i += times
	}
	return strings.Join(parts, "\n")
}
