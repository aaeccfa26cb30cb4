//go:build headless

package display

import (
	"log"
	"time"

	"github.com/steffenhaug/zen/config"
)

// POLL_PERIOD is the interval between frame channel polls.
const POLL_PERIOD = time.Second / 60

// Display drains the console frames without presenting them.
type Display struct {
	Verbose bool
	Console

	received uint64
}

// New creates a headless display for the console.
func New(cfg config.Config, con Console) (disp *Display, err error) {
	_, err = NewKeymap(cfg.Keys)
	if err != nil {
		return
	}

	disp = &Display{
		Verbose: cfg.Verbose,
		Console: con,
	}

	return
}

// Run blocks until the frame stream ends.
func (disp *Display) Run() (err error) {
	ticker := time.NewTicker(POLL_PERIOD)
	defer ticker.Stop()

	for range ticker.C {
		frame, ok, open := disp.Frames.TryReceive()
		if ok {
			disp.received++
			if disp.Verbose {
				log.Printf("display: frame %d", frame.Sequence)
			}
		}
		if !open {
			break
		}
	}

	if disp.Verbose {
		log.Printf("display: %d frames received, %d dropped", disp.received, disp.Frames.Dropped())
	}

	return
}
