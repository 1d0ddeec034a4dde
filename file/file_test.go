package file

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		path string
		kind Kind
	}{
		{"song.txt", Txt},
		{"dir/song.mid", Midi},
		{"SONG.MIDI", Midi},
		{"song.pdf", Pdf},
		{"song.xls", Spreadsheet},
		{"song.xlsx", Spreadsheet},
		{"C G Am F", Literal},
		{"Cmaj7", Literal},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("kind of %q", c.path), func(t *testing.T) {
			assert.Equal(t, c.kind, KindOf(c.path))
		})
	}
}

func TestSupported(t *testing.T) {
	assert := assert.New(t)
	assert.True(Literal.Supported())
	assert.True(Midi.Supported())
	assert.False(Pdf.Supported())
	assert.False(Spreadsheet.Supported())
	assert.True(Txt.Writable())
	assert.True(Midi.Writable())
	assert.False(Literal.Writable())
	assert.False(Pdf.Writable())
	assert.Equal("spreadsheet", Spreadsheet.String())
}
