// Package io provides the devices shared between the zen engine and its host.
// It includes the RGBA frame buffer the engine paints into (FrameBuffer),
// the latest-wins mailbox that carries finished frames to the display
// (FrameChannel), and the polled controller bitmask (Controller).
package io

// FrameSink receives frame snapshots from the engine.
type FrameSink interface {
	// Send delivers a snapshot. It must never block the engine.
	Send(frame Frame)
}

// InputSource provides the current controller bitmask.
type InputSource interface {
	// State returns a snapshot of the button bits.
	State() uint8
}

// ButtonSink accepts button events from an input producer.
type ButtonSink interface {
	// Press sets the bit for the button.
	Press(button Button)
	// Release clears the bit for the button.
	Release(button Button)
}
