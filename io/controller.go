package io

import (
	"strings"
	"sync/atomic"
)

// Button is a logical controller button.
type Button int

//go:generate go tool stringer -linecomment -type=Button
const (
	BUTTON_A     = Button(0) // a
	BUTTON_B     = Button(1) // b
	BUTTON_X     = Button(2) // x
	BUTTON_Y     = Button(3) // y
	BUTTON_LEFT  = Button(4) // left
	BUTTON_RIGHT = Button(5) // right
	BUTTON_UP    = Button(6) // up
	BUTTON_DOWN  = Button(7) // down
)

// buttonMask is the single bit assignment used by both press and release.
var buttonMask = [...]uint8{
	BUTTON_A:     0b00000001,
	BUTTON_B:     0b00000010,
	BUTTON_X:     0b00000100,
	BUTTON_Y:     0b00001000,
	BUTTON_LEFT:  0b00010000,
	BUTTON_RIGHT: 0b00100000,
	BUTTON_UP:    0b01000000,
	BUTTON_DOWN:  0b10000000,
}

// Buttons lists every button in bit order.
var Buttons = []Button{
	BUTTON_A, BUTTON_B, BUTTON_X, BUTTON_Y,
	BUTTON_LEFT, BUTTON_RIGHT, BUTTON_UP, BUTTON_DOWN,
}

// Mask returns the controller bit for the button, or 0 if unknown.
func (b Button) Mask() uint8 {
	if b < 0 || int(b) >= len(buttonMask) {
		return 0
	}
	return buttonMask[b]
}

// ParseButton returns the button with the given name (case-insensitive).
func ParseButton(name string) (button Button, err error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, b := range Buttons {
		if b.String() == name {
			button = b
			return
		}
	}

	err = ErrButtonUnknown
	return
}

// Controller holds the shared controller bitmask. The zero value has no
// buttons pressed and is ready for use.
type Controller struct {
	state atomic.Uint32
}

var (
	_ InputSource = (*Controller)(nil)
	_ ButtonSink  = (*Controller)(nil)
)

// Press sets the button's bit.
func (c *Controller) Press(button Button) {
	c.state.Or(uint32(button.Mask()))
}

// Release clears the button's bit.
func (c *Controller) Release(button Button) {
	c.state.And(^uint32(button.Mask()))
}

// State returns the current bitmask.
func (c *Controller) State() uint8 {
	return uint8(c.state.Load())
}

// Reset releases all buttons.
func (c *Controller) Reset() {
	c.state.Store(0)
}
