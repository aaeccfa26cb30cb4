// Package display presents the frames of a running console and feeds
// host input back into its controller.
//
// The default build opens a window. Building with the headless tag
// replaces it with a consumer that only drains frames.
package display

import (
	"github.com/steffenhaug/zen/io"
)

// FrameSource is the consumer side of a frame channel.
type FrameSource interface {
	TryReceive() (frame io.Frame, ok bool, open bool)
	Dropped() uint64
}

// Console is the running machine as seen by a display.
type Console struct {
	Frames  FrameSource    // Frames to present.
	Buttons io.ButtonSink  // Receives button press and release events.
	Input   io.InputSource // Current button state, for the status line.
	Stop    func()         // Requests the machine to stop. May be nil.
}

func (con Console) stop() {
	if con.Stop != nil {
		con.Stop()
	}
}

// state returns the controller bitmask, or 0 with no input attached.
func (con Console) state() uint8 {
	if con.Input == nil {
		return 0
	}
	return con.Input.State()
}
