package emulator

import (
	"errors"

	"github.com/steffenhaug/zen/cpu"
)

// Termination is the reason a run ended.
type Termination int

//go:generate go tool stringer -linecomment -type=Termination
const (
	TERMINATION_HALTED         = Termination(0) // halted
	TERMINATION_STOPPED        = Termination(1) // stopped
	TERMINATION_DECODE         = Termination(2) // illegal opcode
	TERMINATION_PROGRAM_BOUNDS = Termination(3) // program bounds
	TERMINATION_REGISTER_RANGE = Termination(4) // register range
	TERMINATION_FRAME_BOUNDS   = Termination(5) // frame bounds
	TERMINATION_ARITHMETIC     = Termination(6) // arithmetic
	TERMINATION_CALL_STACK     = Termination(7) // call stack
	TERMINATION_HOST           = Termination(8) // host error
)

var faults = []struct {
	err    error
	reason Termination
}{
	{cpu.ErrDecode, TERMINATION_DECODE},
	{cpu.ErrProgramBounds, TERMINATION_PROGRAM_BOUNDS},
	{cpu.ErrRegisterRange, TERMINATION_REGISTER_RANGE},
	{cpu.ErrFrameBounds, TERMINATION_FRAME_BOUNDS},
	{cpu.ErrArithmetic, TERMINATION_ARITHMETIC},
	{cpu.ErrCallStack, TERMINATION_CALL_STACK},
}

// Reason classifies the result of Run.
func Reason(err error) Termination {
	if err == nil {
		return TERMINATION_HALTED
	}

	if errors.Is(err, ErrStopped) {
		return TERMINATION_STOPPED
	}

	for _, fault := range faults {
		if errors.Is(err, fault.err) {
			return fault.reason
		}
	}

	return TERMINATION_HOST
}

// Fault reports whether the run ended abnormally.
func (term Termination) Fault() bool {
	return term != TERMINATION_HALTED && term != TERMINATION_STOPPED
}
