//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/chordex/cluster"
	"github.com/jsphweid/chordex/cmd"
	"github.com/jsphweid/chordex/midi"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/progression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const song = "Dm7 G7 Cmaj7 -- Am"

var dir string

func TestMain(m *testing.M) {
	var err error
	dir, err = os.MkdirTemp("", "chordex-e2e")
	if err != nil {
		panic(err.Error())
	}

	p, err := progression.FromString(song)
	if err != nil {
		panic(err.Error())
	}
	if err := p.ToMidiFile(filepath.Join(dir, "song.mid"), progression.DefaultSettings); err != nil {
		panic(err.Error())
	}

	exitVal := m.Run()

	os.RemoveAll(dir)
	os.Exit(exitVal)
}

func postJSON(t *testing.T, url string, body interface{}, res interface{}) *http.Response {
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(res))
	return resp
}

func TestGroupWrittenMidiE2E(t *testing.T) {
	server := httptest.NewServer(cmd.NewRouter())
	defer server.Close()

	notes, err := midi.ReadNotes(filepath.Join(dir, "song.mid"))
	require.NoError(t, err)

	var res model.GroupResponse
	resp := postJSON(t, server.URL+"/group", model.GroupRequestBody{Notes: notes}, &res)

	assert := assert.New(t)
	assert.Equal(http.StatusOK, resp.StatusCode)

	var names []string
	for _, c := range res.Chords {
		names = append(names, c.Name)
	}
	assert.Equal([]string{"Dmin7", "G7", "Cmaj7", "Cmaj7", "Amin"}, names)
}

func TestChordsMatchNamesE2E(t *testing.T) {
	server := httptest.NewServer(cmd.NewRouter())
	defer server.Close()

	p, err := progression.FromString(song)
	require.NoError(t, err)

	for _, c := range p.Chords {
		t.Run(fmt.Sprintf("chord %v", c.Name), func(t *testing.T) {
			var res model.ChordResponse
			resp := postJSON(t, server.URL+"/chord", model.ChordRequestBody{Name: c.Name}, &res)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var byMidi model.ChordResponse
			resp = postJSON(t, server.URL+"/midi", model.MidiRequestBody{Pitches: res.Midi}, &byMidi)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, res.Midi, byMidi.Midi)
		})
	}
}

func TestAnalyzeE2E(t *testing.T) {
	analyzed, err := cmd.Analyze(dir, 0, cluster.Grouper{MinSeparation: 0.1})
	require.NoError(t, err)
	require.Len(t, analyzed, 1)
	require.NoError(t, analyzed[0].Err)

	assert.Equal(t, "Dmin7  G7     Cmaj7  --\nAmin\n", analyzed[0].Progression.ToString(4, 2))
}
