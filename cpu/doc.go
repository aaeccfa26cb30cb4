// Package cpu implements the zen virtual machine.
//
// The machine consists of a byte-addressed program, an instruction pointer,
// 64 8-bit registers, a data stack, a return slot backed by an auxiliary
// call stack, and the equal and zero flags. Drawing instructions paint an
// RGBA frame buffer that is handed to the display on DRAW, and INPUT polls
// the controller bitmask.
//
// Every instruction is one opcode byte followed by a fixed number of operand
// bytes. Faults (illegal opcode, program or register overrun, frame bounds,
// division by zero, unmatched return) stop execution with an error.
package cpu
