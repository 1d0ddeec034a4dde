package file

import (
	"path/filepath"
	"strings"
)

type Kind int

const (
	// Literal is a progression written out on the command line.
	Literal Kind = iota
	Txt
	Midi
	Pdf
	Spreadsheet
)

func (k Kind) String() string {
	switch k {
	case Txt:
		return "txt"
	case Midi:
		return "midi"
	case Pdf:
		return "pdf"
	case Spreadsheet:
		return "spreadsheet"
	}
	return "literal"
}

// KindOf classifies a convert argument by its extension. Anything without a
// known extension is taken to be a literal progression.
func KindOf(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return Txt
	case ".mid", ".midi":
		return Midi
	case ".pdf":
		return Pdf
	case ".xls", ".xlsx":
		return Spreadsheet
	}
	return Literal
}

// Supported reports whether chordex can read a progression of the kind.
func (k Kind) Supported() bool {
	return k == Literal || k == Txt || k == Midi
}

// Writable reports whether chordex can write a progression as the kind. A
// literal is only ever read.
func (k Kind) Writable() bool {
	return k.Supported() && k != Literal
}
