package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/cluster"
	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/progression"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the chord API over HTTP",
	Long:  `Serves the chord API over HTTP on CHORDEX_PORT (8080 by default)`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

const requestIDHeader = "X-Request-Id"

var logger = slog.Default()

func toChordResponse(c chord.Chord) model.ChordResponse {
	res := model.ChordResponse{
		Name:          c.Name,
		Root:          c.Root.String(),
		Semitones:     c.Semitones(),
		Modifications: c.Intervals.Modifications,
	}
	if res.Modifications == nil {
		res.Modifications = []string{}
	}
	if bass, err := c.Bass(); err == nil {
		res.Bass = bass.String()
	}
	// roman numeral roots have no pitch
	if midi, err := c.Midi(); err == nil {
		res.Midi = midi
	}
	return res
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("could not encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("could not decode request body: %w", err))
		return false
	}
	return true
}

func HandleName(w http.ResponseWriter, r *http.Request) {
	var input model.NameRequestBody
	if !decode(w, r, &input) {
		return
	}

	options := chord.NameOptions(input.Semitones)
	writeJSON(w, http.StatusOK, model.NameResponse{
		Options: options,
		Name:    chord.Name(input.Semitones),
	})
}

func HandleChord(w http.ResponseWriter, r *http.Request) {
	var input model.ChordRequestBody
	if !decode(w, r, &input) {
		return
	}

	c, err := chord.FromName(input.Name)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, chord.ErrInvalidChord) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, toChordResponse(c))
}

func HandleMidi(w http.ResponseWriter, r *http.Request) {
	var input model.MidiRequestBody
	if !decode(w, r, &input) {
		return
	}

	c, err := chord.FromMidi(input.Pitches)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, toChordResponse(c))
}

func HandleGroup(w http.ResponseWriter, r *http.Request) {
	var input model.GroupRequestBody
	if !decode(w, r, &input) {
		return
	}

	grouper := cluster.Grouper{MinSeparation: constants.GetMinSeparation()}
	p, err := progression.FromNotes(input.Notes, grouper)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res := model.GroupResponse{Chords: make([]model.ChordResponse, 0, len(p.Chords))}
	for _, c := range p.Chords {
		res.Chords = append(res.Chords, toChordResponse(c))
	}
	writeJSON(w, http.StatusOK, res)
}

// withRequestID tags every request and its log line with an id, reusing the
// caller's id when one is sent.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		logger.Info("request", "id", id, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(withRequestID)
	router.HandleFunc("/name", HandleName).Methods("POST")
	router.HandleFunc("/chord", HandleChord).Methods("POST")
	router.HandleFunc("/midi", HandleMidi).Methods("POST")
	router.HandleFunc("/group", HandleGroup).Methods("POST")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodPost},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	})
	return c.Handler(router)
}

func serve() {
	addr := fmt.Sprintf(":%v", constants.GetPort())
	logger.Info("listening", "addr", addr)
	if err := http.ListenAndServe(addr, NewRouter()); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
