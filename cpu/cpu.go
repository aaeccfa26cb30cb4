package cpu

import (
	"errors"
	"fmt"
	goio "io"
	"log"
	"os"

	"github.com/steffenhaug/zen/io"
	"github.com/steffenhaug/zen/translate"
)

// REGISTER_COUNT is the size of the register file.
const REGISTER_COUNT = 64

// Cpu is the simulation context for the zen virtual machine.
type Cpu struct {
	Verbose bool        // Set to enable verbose logging.
	Output  goio.Writer // Destination of PRINT and PRINTB. If nil, os.Stdout.

	Program  Program               // Program being executed.
	Ip       int                   // Current instruction pointer.
	Register [REGISTER_COUNT]uint8 // Register bank.
	Stack    Stack                 // Data stack.
	Calls    CallStack             // Saved return slots.
	Ret      Return                // Current return slot.
	Equal    bool                  // Set by COMP.
	Zero     bool                  // Set by AND, OR, XOR, ANDI.
	Frame    *io.FrameBuffer       // Pixel memory painted by COLOR and COLORI.
	Throttle Throttle              // JUMPDT rate gate.

	Display    io.FrameSink   // Receives DRAW snapshots. May be nil.
	Controller io.InputSource // Polled by INPUT. May be nil.

	Ticks  int // Instructions executed.
	Frames int // DRAW instructions executed.
}

// NewCpu creates a new CPU painting into the frame buffer.
func NewCpu(frame *io.FrameBuffer) (cpu *Cpu) {
	cpu = &Cpu{
		Frame: frame,
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	ret := "-"
	if cpu.Ret.Valid {
		ret = fmt.Sprintf("0x%04x", cpu.Ret.Ip)
	}

	text += fmt.Sprintf("   ip: 0x%04x\n", cpu.Ip)
	text += fmt.Sprintf("  ret: %v (depth %d)\n", ret, cpu.Calls.Depth())
	text += fmt.Sprintf("equal: %v\n", cpu.Equal)
	text += fmt.Sprintf(" zero: %v\n", cpu.Zero)
	text += fmt.Sprintf("stack: %v\n", cpu.Stack.Data)
	for row := 0; row < REGISTER_COUNT; row += 8 {
		text += fmt.Sprintf("  r%02d: % x\n", row, cpu.Register[row:row+8])
	}

	return
}

// Load installs a program. The CPU must be Reset before running it.
func (cpu *Cpu) Load(prog Program) {
	cpu.Program = prog
}

// Reset the CPU state.
// - Clears the registers, flags, data stack and call stack.
// - Clears the frame buffer.
// - Zeros statistics counters.
// - Restarts the JUMPDT period.
// - Sets the instruction pointer to the start of the program.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Stack.Reset()
	cpu.Calls.Reset()
	cpu.Ret = Return{}
	cpu.Equal = false
	cpu.Zero = false
	cpu.Ip = 0
	cpu.Ticks = 0
	cpu.Frames = 0

	if cpu.Frame != nil {
		cpu.Frame.Clear()
	}

	cpu.Throttle.Reset()
}

// Fetch reads the byte at the instruction pointer and advances past it.
func (cpu *Cpu) Fetch() (value byte, err error) {
	if cpu.Ip < 0 || cpu.Ip >= len(cpu.Program) {
		err = ErrFetch{Ip: cpu.Ip, Length: len(cpu.Program)}
		return
	}

	value = cpu.Program[cpu.Ip]
	cpu.Ip++
	return
}

// FetchCode fetches the instruction at the instruction pointer and
// advances past it and its operands.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	code.Ip = cpu.Ip
	code.Opcode, err = cpu.Fetch()
	if err != nil {
		return
	}

	code.Instruction = Decode(code.Opcode)
	count := code.Instruction.Operands()
	code.Args = make([]uint8, 0, count)
	for range count {
		var arg uint8
		arg, err = cpu.Fetch()
		if err != nil {
			return
		}
		code.Args = append(code.Args, arg)
	}

	return
}

// Tick executes a single fetch-execute cycle.
func (cpu *Cpu) Tick() (halt bool, err error) {
	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	return cpu.Execute(code)
}

// output returns the PRINT destination.
func (cpu *Cpu) output() goio.Writer {
	if cpu.Output == nil {
		return os.Stdout
	}
	return cpu.Output
}

// input returns the controller bitmask, or 0 with no controller attached.
func (cpu *Cpu) input() uint8 {
	if cpu.Controller == nil {
		return 0
	}
	return cpu.Controller.State()
}

// setPixel paints the pixel addressed by registers rx, ry.
func (cpu *Cpu) setPixel(rx, ry uint8, packed uint8) (err error) {
	if cpu.Frame == nil {
		err = ErrFrameBounds
		return
	}

	x := int(cpu.Register[rx])
	y := int(cpu.Register[ry])
	return cpu.Frame.Set(x, y, ExpandColor(packed))
}

// Execute executes a single decoded instruction. The instruction pointer
// must already point past the instruction.
func (cpu *Cpu) Execute(code Code) (halt bool, err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrInstruction(code), err)
		}
	}()
	if cpu.Verbose {
		log.Printf("%03d: %v", code.Ip, code)
	}

	kinds := code.Instruction.Args()
	if len(code.Args) != len(kinds) {
		err = ErrFetch{Ip: code.Next(), Length: len(cpu.Program)}
		return
	}

	for n, kind := range kinds {
		if kind == OPERAND_REG && int(code.Args[n]) >= REGISTER_COUNT {
			err = ErrRegister(code.Args[n])
			return
		}
	}

	reg := &cpu.Register
	args := code.Args

	switch code.Instruction {
	case HALT:
		halt = true
	case ILLEGAL:
		err = ErrDecode
	case NOP:
		// pass
	case LOADI:
		reg[args[0]] = args[1]
	case LOADR:
		reg[args[0]] = reg[args[1]]
	case ADD:
		reg[args[0]] = reg[args[1]] + reg[args[2]]
	case SUB:
		reg[args[0]] = reg[args[1]] - reg[args[2]]
	case MUL:
		reg[args[0]] = reg[args[1]] * reg[args[2]]
	case DIV:
		if reg[args[2]] == 0 {
			err = ErrArithmetic
			return
		}
		reg[args[0]] = reg[args[1]] / reg[args[2]]
	case AND:
		reg[args[0]] = reg[args[1]] & reg[args[2]]
		cpu.Zero = reg[args[0]] == 0
	case OR:
		reg[args[0]] = reg[args[1]] | reg[args[2]]
		cpu.Zero = reg[args[0]] == 0
	case XOR:
		reg[args[0]] = reg[args[1]] ^ reg[args[2]]
		cpu.Zero = reg[args[0]] == 0
	case ANDI:
		reg[args[0]] = reg[args[1]] & args[2]
		cpu.Zero = reg[args[0]] == 0
	case COMP:
		cpu.Equal = reg[args[0]] == reg[args[1]]
	case INC:
		reg[args[0]]++
	case DEC:
		reg[args[0]]--
	case JUMP:
		cpu.Ip = int(args[0])
	case JEQ:
		if cpu.Equal {
			cpu.Ip = int(args[0])
		}
	case JNEQ:
		if !cpu.Equal {
			cpu.Ip = int(args[0])
		}
	case JZ:
		if cpu.Zero {
			cpu.Ip = int(args[0])
		}
	case JNZ:
		if !cpu.Zero {
			cpu.Ip = int(args[0])
		}
	case JUMPDT:
		if cpu.Throttle.Jump() {
			cpu.Ip = int(args[0])
		}
	case CALL:
		cpu.Calls.Push(cpu.Ret)
		cpu.Ret = Return{Ip: cpu.Ip, Valid: true}
		cpu.Ip = int(args[0])
	case RET:
		if !cpu.Ret.Valid {
			err = ErrCallStack
			return
		}
		caller := cpu.Ret.Ip
		ret, ok := cpu.Calls.Pop()
		if !ok {
			err = ErrCallStack
			return
		}
		cpu.Ip = caller
		cpu.Ret = ret
	case PUSH:
		cpu.Stack.Push(reg[args[0]])
	case POP:
		// An empty stack pops as zero.
		value, _ := cpu.Stack.Pop()
		reg[args[0]] = value
	case INPUT:
		reg[args[0]] = cpu.input()
	case PRINT:
		_, err = translate.Fprintf(cpu.output(), "PRINT     %d\n", reg[args[0]])
	case PRINTB:
		_, err = translate.Fprintf(cpu.output(), "PRINT     %b\n", reg[args[0]])
	case COLOR:
		err = cpu.setPixel(args[0], args[1], reg[args[2]])
	case COLORI:
		err = cpu.setPixel(args[0], args[1], args[2])
	case DRAW:
		cpu.Frames++
		if cpu.Display != nil && cpu.Frame != nil {
			cpu.Display.Send(cpu.Frame.Snapshot())
		}
	default:
		err = ErrDecode
		return
	}

	if err != nil {
		return
	}

	cpu.Ticks++
	return
}
