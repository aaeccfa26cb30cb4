package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := []Instruction{
		HALT, LOADI, ADD, PRINT, NOP, JUMP, LOADR, JEQ, COMP, JNEQ,
		COLOR, INC, DEC, CALL, RET, INPUT, AND, XOR, OR, SUB,
		DIV, MUL, JZ, JNZ, PRINTB, ANDI, COLORI, DRAW, PUSH, POP,
		JUMPDT,
	}

	for n, in := range table {
		assert.Equal(in, Decode(byte(n)), in.String())
	}

	for n := len(table); n < 256; n++ {
		assert.Equal(ILLEGAL, Decode(byte(n)), "byte %d", n)
	}
}

func TestInstruction_Operands(t *testing.T) {
	assert := assert.New(t)

	table := map[Instruction]int{
		HALT: 0, ILLEGAL: 0, NOP: 0, RET: 0, DRAW: 0,
		LOADI: 2, LOADR: 2, COMP: 2,
		ADD: 3, SUB: 3, MUL: 3, DIV: 3, AND: 3, OR: 3, XOR: 3,
		ANDI: 3, COLOR: 3, COLORI: 3,
		INC: 1, DEC: 1, PUSH: 1, POP: 1, INPUT: 1, PRINT: 1, PRINTB: 1,
		JUMP: 1, JEQ: 1, JNEQ: 1, JZ: 1, JNZ: 1, JUMPDT: 1, CALL: 1,
	}

	assert.Len(table, 32)
	for in, count := range table {
		assert.Equal(count, in.Operands(), in.String())
	}
}

func TestInstruction_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("halt", HALT.String())
	assert.Equal("jumpdt", JUMPDT.String())
	assert.Equal("colori", COLORI.String())
	assert.Equal("illegal", ILLEGAL.String())
	assert.Equal("Instruction(31)", Instruction(31).String())
}

func TestCode_String(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		code Code
		text string
	}){
		{Code{Instruction: ADD, Args: []uint8{1, 2, 3}}, "add r1 r2 r3"},
		{Code{Instruction: LOADI, Args: []uint8{0, 250}}, "loadi r0 250"},
		{Code{Instruction: JUMPDT, Args: []uint8{0x1f}}, "jumpdt 0x1f"},
		{Code{Instruction: COLORI, Args: []uint8{4, 5, 0xe3}}, "colori r4 r5 227"},
		{Code{Instruction: DRAW}, "draw"},
		{Code{Instruction: ADD, Args: []uint8{1}}, "add r1 ? ?"},
		{Code{Opcode: 0x99, Instruction: ILLEGAL}, "illegal 0x99"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.code.String())
	}
}
