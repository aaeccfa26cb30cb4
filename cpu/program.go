package cpu

import (
	goio "io"
	"iter"
	"slices"

	"github.com/steffenhaug/zen/translate"
)

// Program is a flat byte-code image. Execution starts at offset 0.
type Program []byte

// ReadProgram reads a whole program image.
func ReadProgram(r goio.Reader) (prog Program, err error) {
	data, err := goio.ReadAll(r)
	if err != nil {
		return
	}

	prog = Program(data)
	return
}

// CodeAt fetches the instruction at ip along with its operand bytes.
func (prog Program) CodeAt(ip int) (code Code, err error) {
	if ip < 0 || ip >= len(prog) {
		err = ErrFetch{Ip: ip, Length: len(prog)}
		return
	}

	code.Ip = ip
	code.Opcode = prog[ip]
	code.Instruction = Decode(code.Opcode)

	count := code.Instruction.Operands()
	if ip+1+count > len(prog) {
		code.Args = slices.Clone(prog[ip+1:])
		err = ErrFetch{Ip: len(prog), Length: len(prog)}
		return
	}

	code.Args = slices.Clone(prog[ip+1 : ip+1+count])
	return
}

// Codes walks the program linearly, yielding each instruction.
// The walk stops at the first truncated instruction.
func (prog Program) Codes() iter.Seq2[int, Code] {
	return func(yield func(ip int, code Code) bool) {
		for ip := 0; ip < len(prog); {
			code, err := prog.CodeAt(ip)
			if err != nil {
				return
			}
			if !yield(ip, code) {
				return
			}
			ip = code.Next()
		}
	}
}

// Listing writes a linear disassembly of the program.
func (prog Program) Listing(w goio.Writer) (err error) {
	next := 0
	for ip, code := range prog.Codes() {
		_, err = translate.Fprintf(w, "%04x: %v\n", ip, code)
		if err != nil {
			return
		}
		next = code.Next()
	}

	if next < len(prog) {
		_, err = translate.Fprintf(w, "%04x: truncated %d bytes\n", next, len(prog)-next)
	}

	return
}
