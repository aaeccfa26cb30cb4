package cpu

import (
	"fmt"
	"strings"
)

// Instruction is a decoded opcode.
type Instruction uint8

//go:generate go tool stringer -linecomment -type=Instruction
const (
	HALT    = Instruction(0)   // halt
	LOADI   = Instruction(1)   // loadi
	ADD     = Instruction(2)   // add
	PRINT   = Instruction(3)   // print
	NOP     = Instruction(4)   // nop
	JUMP    = Instruction(5)   // jump
	LOADR   = Instruction(6)   // loadr
	JEQ     = Instruction(7)   // jeq
	COMP    = Instruction(8)   // comp
	JNEQ    = Instruction(9)   // jneq
	COLOR   = Instruction(10)  // color
	INC     = Instruction(11)  // inc
	DEC     = Instruction(12)  // dec
	CALL    = Instruction(13)  // call
	RET     = Instruction(14)  // ret
	INPUT   = Instruction(15)  // input
	AND     = Instruction(16)  // and
	XOR     = Instruction(17)  // xor
	OR      = Instruction(18)  // or
	SUB     = Instruction(19)  // sub
	DIV     = Instruction(20)  // div
	MUL     = Instruction(21)  // mul
	JZ      = Instruction(22)  // jz
	JNZ     = Instruction(23)  // jnz
	PRINTB  = Instruction(24)  // printb
	ANDI    = Instruction(25)  // andi
	COLORI  = Instruction(26)  // colori
	DRAW    = Instruction(27)  // draw
	PUSH    = Instruction(28)  // push
	POP     = Instruction(29)  // pop
	JUMPDT  = Instruction(30)  // jumpdt
	ILLEGAL = Instruction(255) // illegal
)

// Decode maps an opcode byte to its instruction.
// Bytes outside the instruction table decode to ILLEGAL.
func Decode(b byte) Instruction {
	switch b {
	case 0:
		return HALT
	case 1:
		return LOADI
	case 2:
		return ADD
	case 3:
		return PRINT
	case 4:
		return NOP
	case 5:
		return JUMP
	case 6:
		return LOADR
	case 7:
		return JEQ
	case 8:
		return COMP
	case 9:
		return JNEQ
	case 10:
		return COLOR
	case 11:
		return INC
	case 12:
		return DEC
	case 13:
		return CALL
	case 14:
		return RET
	case 15:
		return INPUT
	case 16:
		return AND
	case 17:
		return XOR
	case 18:
		return OR
	case 19:
		return SUB
	case 20:
		return DIV
	case 21:
		return MUL
	case 22:
		return JZ
	case 23:
		return JNZ
	case 24:
		return PRINTB
	case 25:
		return ANDI
	case 26:
		return COLORI
	case 27:
		return DRAW
	case 28:
		return PUSH
	case 29:
		return POP
	case 30:
		return JUMPDT
	default:
		return ILLEGAL
	}
}

// Operand is the kind of an operand byte.
type Operand int

const (
	OPERAND_REG  = Operand(0) // Register index, 0-63.
	OPERAND_IMM  = Operand(1) // Literal byte.
	OPERAND_ADDR = Operand(2) // Absolute program address.
)

var (
	argsNone = []Operand{}
	argsR    = []Operand{OPERAND_REG}
	argsRR   = []Operand{OPERAND_REG, OPERAND_REG}
	argsRRR  = []Operand{OPERAND_REG, OPERAND_REG, OPERAND_REG}
	argsRI   = []Operand{OPERAND_REG, OPERAND_IMM}
	argsRRI  = []Operand{OPERAND_REG, OPERAND_REG, OPERAND_IMM}
	argsA    = []Operand{OPERAND_ADDR}
)

// operandTable lists the operand bytes following each opcode.
var operandTable = map[Instruction][]Operand{
	HALT:    argsNone,
	LOADI:   argsRI,
	ADD:     argsRRR,
	PRINT:   argsR,
	NOP:     argsNone,
	JUMP:    argsA,
	LOADR:   argsRR,
	JEQ:     argsA,
	COMP:    argsRR,
	JNEQ:    argsA,
	COLOR:   argsRRR,
	INC:     argsR,
	DEC:     argsR,
	CALL:    argsA,
	RET:     argsNone,
	INPUT:   argsR,
	AND:     argsRRR,
	XOR:     argsRRR,
	OR:      argsRRR,
	SUB:     argsRRR,
	DIV:     argsRRR,
	MUL:     argsRRR,
	JZ:      argsA,
	JNZ:     argsA,
	PRINTB:  argsR,
	ANDI:    argsRRI,
	COLORI:  argsRRI,
	DRAW:    argsNone,
	PUSH:    argsR,
	POP:     argsR,
	JUMPDT:  argsA,
	ILLEGAL: argsNone,
}

// Args returns the kinds of the operand bytes for the instruction.
func (in Instruction) Args() []Operand {
	return operandTable[in]
}

// Operands returns the number of operand bytes following the opcode.
func (in Instruction) Operands() int {
	return len(operandTable[in])
}

// Code is a fetched instruction with its operand bytes.
type Code struct {
	Ip          int         // Address of the opcode byte.
	Opcode      byte        // Raw opcode byte.
	Instruction Instruction // Decoded instruction.
	Args        []uint8     // Operand bytes.
}

// Next returns the address following the instruction.
func (code Code) Next() int {
	return code.Ip + 1 + len(code.Args)
}

// String returns the disassembly of the instruction.
func (code Code) String() string {
	if code.Instruction == ILLEGAL {
		return fmt.Sprintf("illegal 0x%02x", code.Opcode)
	}

	words := []string{code.Instruction.String()}
	for n, kind := range code.Instruction.Args() {
		if n >= len(code.Args) {
			words = append(words, "?")
			continue
		}
		arg := code.Args[n]
		switch kind {
		case OPERAND_REG:
			words = append(words, fmt.Sprintf("r%d", arg))
		case OPERAND_IMM:
			words = append(words, fmt.Sprintf("%d", arg))
		case OPERAND_ADDR:
			words = append(words, fmt.Sprintf("0x%02x", arg))
		}
	}

	return strings.Join(words, " ")
}
