package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/util"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var (
	inPort   int
	settleMs int
)

func init() {
	listenCmd.Flags().IntVar(&inPort, "port", 0, "MIDI in port number")
	listenCmd.Flags().IntVar(&settleMs, "settle", 80, "milliseconds to wait for keys to settle before naming")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names the chords played on a MIDI keyboard",
	Long:  `Names the chords played on a MIDI keyboard until interrupted`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listen(cmd.OutOrStdout())
	},
}

// keyboard tracks the keys held down. The MIDI driver calls in from its own
// goroutine and the debouncer from another.
type keyboard struct {
	mu   sync.Mutex
	held map[uint8]bool

	// guards shown and the writes to the output
	showMu sync.Mutex
	shown  string
}

func newKeyboard() *keyboard {
	return &keyboard{held: make(map[uint8]bool)}
}

func (k *keyboard) press(key uint8) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.held[key] = true
}

func (k *keyboard) release(key uint8) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.held, key)
}

func (k *keyboard) pitches() []int {
	k.mu.Lock()
	defer k.mu.Unlock()
	res := make([]int, 0, len(k.held))
	for _, key := range util.GetKeys(k.held) {
		res = append(res, int(key))
	}
	return res
}

// describe names what is held, or returns "" when nothing is.
func (k *keyboard) describe() string {
	pitches := k.pitches()
	if len(pitches) == 0 {
		return ""
	}
	c, err := chord.FromMidi(pitches)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%v %v", c.Name, pitches)
}

// show writes what is held unless nothing is or it was the last thing shown.
func (k *keyboard) show(w io.Writer) {
	k.showMu.Lock()
	defer k.showMu.Unlock()
	d := k.describe()
	if d == "" || d == k.shown {
		return
	}
	fmt.Fprintln(w, d)
	k.shown = d
}

func listen(w io.Writer) error {
	defer gomidi.CloseDriver()
	in, err := gomidi.InPort(inPort)
	if err != nil {
		return fmt.Errorf("can't find MIDI in port %v: %w", inPort, err)
	}

	keys := newKeyboard()
	debounced := debounce.New(time.Duration(settleMs) * time.Millisecond)
	show := func() { keys.show(w) }

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			keys.press(key)
			debounced(show)
		case msg.GetNoteEnd(&ch, &key):
			keys.release(key)
			debounced(show)
		}
	})
	if err != nil {
		return fmt.Errorf("could not listen: %w", err)
	}
	defer stop()

	fmt.Fprintf(w, "Listening on %v, ctrl-c to stop\n", in)
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	<-interrupt
	return nil
}
