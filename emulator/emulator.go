// Copyright 2026, The zen Authors

package emulator

import (
	"context"
	"errors"
	goio "io"
	"log"
	"sync/atomic"

	"github.com/steffenhaug/zen/config"
	"github.com/steffenhaug/zen/cpu"
	"github.com/steffenhaug/zen/io"
)

// Emulator state. CPU + frame buffer + frame channel + controller.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the CPU simulation.

	Config     config.Config    // Settings the emulator was built from.
	Frame      *io.FrameBuffer  // Pixel memory of the CPU.
	Display    *io.FrameChannel // Frames published by DRAW.
	Controller io.Controller    // Button state polled by INPUT.

	stop atomic.Bool
}

// NewEmulator creates a new emulator.
func NewEmulator(cfg config.Config) (emu *Emulator) {
	emu = &Emulator{
		Verbose: cfg.Verbose,
		Config:  cfg,
		Frame:   io.NewFrameBuffer(cfg.Width, cfg.Height),
		Display: io.NewFrameChannel(),
	}

	emu.Cpu = cpu.NewCpu(emu.Frame)
	emu.Cpu.Display = emu.Display
	emu.Cpu.Controller = &emu.Controller
	emu.Cpu.Throttle.Period = cpu.PeriodOf(cfg.Frequency)

	return
}

// Load installs a program and resets the emulator.
func (emu *Emulator) Load(prog cpu.Program) {
	emu.Cpu.Load(prog)
	emu.Reset()
}

// LoadFrom reads a flat program image and installs it.
func (emu *Emulator) LoadFrom(r goio.Reader) (err error) {
	prog, err := cpu.ReadProgram(r)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: loaded %d bytes", len(prog))
	}

	emu.Load(prog)
	return
}

// Reset the emulator state. A frame channel closed by a previous Run is
// replaced, so Frames must be fetched again after a Reset.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.Controller.Reset()
	emu.stop.Store(false)

	if emu.Display.Closed() {
		emu.Display = io.NewFrameChannel()
		emu.Cpu.Display = emu.Display
	}
}

// Frames returns the receive side of the frame channel.
func (emu *Emulator) Frames() <-chan io.Frame {
	return emu.Display.Receive()
}

// Buttons returns the sink the host feeds button events into.
func (emu *Emulator) Buttons() io.ButtonSink {
	return &emu.Controller
}

// Stop requests a running Run to end before its next cycle.
func (emu *Emulator) Stop() {
	emu.stop.Store(true)
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	ip := emu.Cpu.Ip
	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: ip, Err: err}
		}
	}()

	return emu.Cpu.Tick()
}

// Run executes until the program halts, faults or is stopped. The frame
// channel is closed on return.
func (emu *Emulator) Run(ctx context.Context) (err error) {
	defer emu.Display.Close()
	defer func() {
		if emu.Verbose {
			log.Printf("emulator: %v after %d ticks, %d frames, %d dropped",
				Reason(err), emu.Cpu.Ticks, emu.Cpu.Frames, emu.Display.Dropped())
		}
	}()

	for {
		if emu.stop.Load() {
			err = ErrStopped
			return
		}

		if ctx_err := ctx.Err(); ctx_err != nil {
			err = errors.Join(ErrStopped, ctx_err)
			return
		}

		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}
}
