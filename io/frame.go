package io

import (
	"image"
	"image/color"
	"slices"
	"sync"
	"sync/atomic"
)

// Frame is an immutable snapshot of a FrameBuffer.
type Frame struct {
	Pix      []byte // RGBA8, row-major, stride Width*4.
	Width    int
	Height   int
	Sequence uint64 // Snapshot number, starting at 1.
}

// FrameBuffer is the RGBA8 pixel memory painted by the engine.
// The dimensions are fixed at construction.
type FrameBuffer struct {
	Pix    []byte
	Width  int
	Height int

	sequence uint64
}

var _ image.Image = (*FrameBuffer)(nil)

// NewFrameBuffer creates a cleared frame buffer.
func NewFrameBuffer(width, height int) (fb *FrameBuffer) {
	fb = &FrameBuffer{
		Pix:    make([]byte, width*height*4),
		Width:  width,
		Height: height,
	}

	return
}

// Offset returns the byte offset of pixel (x,y), or ErrPixel if the
// coordinate lies outside the buffer.
func (fb *FrameBuffer) Offset(x, y int) (offset int, err error) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		err = ErrPixel{X: x, Y: y, Width: fb.Width, Height: fb.Height}
		return
	}

	offset = (x + y*fb.Width) * 4
	return
}

// Set writes one pixel.
func (fb *FrameBuffer) Set(x, y int, c color.RGBA) (err error) {
	i, err := fb.Offset(x, y)
	if err != nil {
		return
	}

	fb.Pix[i+0] = c.R
	fb.Pix[i+1] = c.G
	fb.Pix[i+2] = c.B
	fb.Pix[i+3] = c.A
	return
}

// Clear zeroes every pixel and the snapshot counter.
func (fb *FrameBuffer) Clear() {
	clear(fb.Pix)
	fb.sequence = 0
}

// Snapshot copies the current contents into a new Frame.
func (fb *FrameBuffer) Snapshot() Frame {
	fb.sequence++
	return Frame{
		Pix:      slices.Clone(fb.Pix),
		Width:    fb.Width,
		Height:   fb.Height,
		Sequence: fb.sequence,
	}
}

func (fb *FrameBuffer) ColorModel() color.Model {
	return color.RGBAModel
}

func (fb *FrameBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.Width, fb.Height)
}

func (fb *FrameBuffer) At(x, y int) color.Color {
	i, err := fb.Offset(x, y)
	if err != nil {
		return color.RGBA{}
	}
	return color.RGBA{R: fb.Pix[i+0], G: fb.Pix[i+1], B: fb.Pix[i+2], A: fb.Pix[i+3]}
}

// FrameChannel is a capacity-one mailbox for frames. A send never blocks;
// an undelivered frame is replaced by the newer one.
type FrameChannel struct {
	mutex   sync.Mutex
	frames  chan Frame
	closed  bool
	dropped atomic.Uint64
}

var _ FrameSink = (*FrameChannel)(nil)

// NewFrameChannel creates an open, empty frame channel.
func NewFrameChannel() *FrameChannel {
	return &FrameChannel{
		frames: make(chan Frame, 1),
	}
}

// Send delivers the frame, dropping any frame still waiting in the mailbox.
// Sends after Close are discarded.
func (fc *FrameChannel) Send(frame Frame) {
	fc.mutex.Lock()
	defer fc.mutex.Unlock()

	if fc.closed {
		return
	}

	for {
		select {
		case fc.frames <- frame:
			return
		default:
		}

		select {
		case <-fc.frames:
			fc.dropped.Add(1)
		default:
		}
	}
}

// Receive returns the receive-only side of the mailbox. It is closed once
// the engine stops producing frames.
func (fc *FrameChannel) Receive() <-chan Frame {
	return fc.frames
}

// TryReceive takes the pending frame, if any, without blocking.
// open is false once the channel is closed and drained.
func (fc *FrameChannel) TryReceive() (frame Frame, ok bool, open bool) {
	select {
	case frame, ok = <-fc.frames:
		open = ok
	default:
		open = true
	}
	return
}

// Close marks the end of the frame stream. It is safe to call more than once.
func (fc *FrameChannel) Close() {
	fc.mutex.Lock()
	defer fc.mutex.Unlock()

	if !fc.closed {
		fc.closed = true
		close(fc.frames)
	}
}

// Closed reports whether Close has been called.
func (fc *FrameChannel) Closed() bool {
	fc.mutex.Lock()
	defer fc.mutex.Unlock()

	return fc.closed
}

// Dropped returns the number of frames replaced before delivery.
func (fc *FrameChannel) Dropped() uint64 {
	return fc.dropped.Load()
}
