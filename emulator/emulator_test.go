package emulator

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/steffenhaug/zen/config"
	"github.com/steffenhaug/zen/cpu"
	"github.com/steffenhaug/zen/io"
)

func newTestEmulator(prog cpu.Program) (emu *Emulator, output *bytes.Buffer) {
	output = &bytes.Buffer{}
	emu = NewEmulator(config.Default())
	emu.Cpu.Output = output
	emu.Load(prog)
	return
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(config.Default())

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.Equal(160, emu.Frame.Width)
	assert.Equal(144, emu.Frame.Height)
	assert.Equal(100*time.Millisecond, emu.Cpu.Throttle.Period)
	assert.Same(emu.Frame, emu.Cpu.Frame)
}

func TestEmulator_Tick(t *testing.T) {
	assert := assert.New(t)

	emu, output := newTestEmulator(cpu.Program{
		byte(cpu.LOADI), 0, 7,
		byte(cpu.PRINT), 0,
		byte(cpu.HALT),
	})

	for range 2 {
		done, err := emu.Tick()
		assert.NoError(err)
		assert.False(done)
	}

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal("PRINT     7\n", output.String())
}

func TestEmulator_TickFault(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newTestEmulator(cpu.Program{
		byte(cpu.NOP),
		byte(cpu.DIV), 0, 0, 0,
	})

	_, err := emu.Tick()
	assert.NoError(err)

	_, err = emu.Tick()
	var runtime *ErrRuntime
	if assert.ErrorAs(err, &runtime) {
		assert.Equal(1, runtime.Ip)
	}
	assert.ErrorIs(err, cpu.ErrArithmetic)
	assert.Equal(TERMINATION_ARITHMETIC, Reason(err))
}

func TestEmulator_LoadFrom(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(config.Default())
	err := emu.LoadFrom(bytes.NewReader([]byte{byte(cpu.LOADI), 3, 9, byte(cpu.HALT)}))
	assert.NoError(err)

	err = emu.Run(context.Background())
	assert.NoError(err)
	assert.Equal(uint8(9), emu.Cpu.Register[3])
}

func TestEmulator_Run(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program cpu.Program
		reason  Termination
	}){
		{"halt", cpu.Program{byte(cpu.NOP), byte(cpu.HALT)}, TERMINATION_HALTED},
		{"decode", cpu.Program{31}, TERMINATION_DECODE},
		{"program_bounds", cpu.Program{byte(cpu.JUMP), 200}, TERMINATION_PROGRAM_BOUNDS},
		{"register_range", cpu.Program{byte(cpu.INC), 64}, TERMINATION_REGISTER_RANGE},
		{"frame_bounds", cpu.Program{byte(cpu.COLORI), 0, 0, 1, byte(cpu.LOADI), 0, 200, byte(cpu.COLORI), 0, 0, 1}, TERMINATION_FRAME_BOUNDS},
		{"arithmetic", cpu.Program{byte(cpu.DIV), 0, 0, 0}, TERMINATION_ARITHMETIC},
		{"call_stack", cpu.Program{byte(cpu.RET)}, TERMINATION_CALL_STACK},
	}

	for _, entry := range table {
		emu, _ := newTestEmulator(entry.program)

		err := emu.Run(context.Background())
		assert.Equal(entry.reason, Reason(err), entry.name)
		assert.Equal(entry.reason != TERMINATION_HALTED, entry.reason.Fault(), entry.name)

		// The frame channel is closed on every exit.
		_, ok := <-emu.Frames()
		assert.False(ok, entry.name)
	}
}

func TestEmulator_RunCancel(t *testing.T) {
	assert := assert.New(t)

	// Spin forever, drawing.
	emu, _ := newTestEmulator(cpu.Program{
		byte(cpu.DRAW),
		byte(cpu.JUMP), 0,
	})

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error)
	go func() {
		result <- emu.Run(ctx)
	}()

	// Frames are flowing.
	_, ok := <-emu.Frames()
	assert.True(ok)

	cancel()
	err := <-result
	assert.ErrorIs(err, ErrStopped)
	assert.ErrorIs(err, context.Canceled)
	assert.Equal(TERMINATION_STOPPED, Reason(err))
	assert.False(Reason(err).Fault())

	// Drain to the close.
	for range emu.Frames() {
	}
}

func TestEmulator_Stop(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newTestEmulator(cpu.Program{
		byte(cpu.JUMP), 0,
	})

	result := make(chan error)
	go func() {
		result <- emu.Run(context.Background())
	}()

	emu.Stop()
	err := <-result
	assert.ErrorIs(err, ErrStopped)
	assert.Equal(TERMINATION_STOPPED, Reason(err))

	// Reset opens a new frame channel and clears the stop request.
	emu.Reset()
	assert.False(emu.Display.Closed())
	emu.Cpu.Program = cpu.Program{byte(cpu.HALT)}
	assert.NoError(emu.Run(context.Background()))
}

func TestEmulator_Frames(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newTestEmulator(cpu.Program{
		byte(cpu.COLORI), 0, 0, 0xe3,
		byte(cpu.DRAW),
		byte(cpu.HALT),
	})
	frames := emu.Frames()

	err := emu.Run(context.Background())
	assert.NoError(err)

	frame, ok := <-frames
	assert.True(ok)
	assert.Equal(uint64(1), frame.Sequence)
	assert.Equal([]byte{252, 0, 255, 255}, frame.Pix[:4])
	assert.Equal(make([]byte, len(frame.Pix)-4), frame.Pix[4:])

	_, ok = <-frames
	assert.False(ok)
}

func TestEmulator_Buttons(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newTestEmulator(cpu.Program{
		byte(cpu.INPUT), 0,
		byte(cpu.HALT),
	})

	emu.Buttons().Press(io.BUTTON_B)
	emu.Buttons().Press(io.BUTTON_DOWN)
	emu.Buttons().Press(io.BUTTON_LEFT)
	emu.Buttons().Release(io.BUTTON_LEFT)

	err := emu.Run(context.Background())
	assert.NoError(err)
	assert.Equal(uint8(0x82), emu.Cpu.Register[0])
}

func TestReason(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(TERMINATION_HALTED, Reason(nil))
	assert.Equal(TERMINATION_HOST, Reason(errors.New("disk on fire")))
	assert.True(TERMINATION_HOST.Fault())
	assert.Equal("illegal opcode", TERMINATION_DECODE.String())
	assert.Equal("call stack", TERMINATION_CALL_STACK.String())
	assert.Equal("Termination(99)", Termination(99).String())
}
