package cpu

import (
	"errors"

	"github.com/steffenhaug/zen/io"
	"github.com/steffenhaug/zen/translate"
)

var f = translate.From

var (
	// Cpu faults
	ErrDecode        = errors.New(f("illegal opcode"))
	ErrProgramBounds = errors.New(f("program bounds"))
	ErrRegisterRange = errors.New(f("register range"))
	ErrFrameBounds   = io.ErrFrameBounds
	ErrArithmetic    = errors.New(f("division by zero"))
	ErrCallStack     = errors.New(f("return without call"))
)

// ErrFetch reports an instruction or operand fetch beyond the program.
type ErrFetch struct {
	Ip     int
	Length int
}

func (err ErrFetch) Error() string {
	return f("fetch at 0x%04x beyond program of %d bytes", err.Ip, err.Length)
}

func (err ErrFetch) Unwrap() error {
	return ErrProgramBounds
}

// ErrRegister reports a register operand outside the register file.
type ErrRegister uint8

func (er ErrRegister) Error() string {
	return f("register r%d invalid", uint8(er))
}

func (er ErrRegister) Unwrap() error {
	return ErrRegisterRange
}

// ErrInstruction annotates a fault with the instruction that raised it.
type ErrInstruction Code

func (ei ErrInstruction) Error() string {
	return f("0x%04x: %v", ei.Ip, Code(ei).String())
}

func (ei ErrInstruction) Is(err error) (ok bool) {
	_, ok = err.(ErrInstruction)
	return
}
