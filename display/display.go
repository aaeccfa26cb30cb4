//go:build !headless

package display

import (
	"errors"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/steffenhaug/zen/config"
	"github.com/steffenhaug/zen/io"
	"github.com/steffenhaug/zen/translate"
)

// gamepadButtons maps the standard gamepad layout onto the console.
var gamepadButtons = map[ebiten.StandardGamepadButton]io.Button{
	ebiten.StandardGamepadButtonRightBottom: io.BUTTON_A,
	ebiten.StandardGamepadButtonRightRight:  io.BUTTON_B,
	ebiten.StandardGamepadButtonRightLeft:   io.BUTTON_X,
	ebiten.StandardGamepadButtonRightTop:    io.BUTTON_Y,
	ebiten.StandardGamepadButtonLeftLeft:    io.BUTTON_LEFT,
	ebiten.StandardGamepadButtonLeftRight:   io.BUTTON_RIGHT,
	ebiten.StandardGamepadButtonLeftTop:     io.BUTTON_UP,
	ebiten.StandardGamepadButtonLeftBottom:  io.BUTTON_DOWN,
}

// Display is a window showing the console frames, scaled up.
type Display struct {
	Verbose bool
	Console

	title  string
	width  int
	height int
	scale  int

	keys     map[ebiten.Key]io.Button
	gamepads []ebiten.GamepadID
	image    *ebiten.Image
	frame    io.Frame
	dirty    bool
	status   bool
}

var _ ebiten.Game = (*Display)(nil)

// New creates a display for the console, sized and keyed by cfg.
func New(cfg config.Config, con Console) (disp *Display, err error) {
	km, err := NewKeymap(cfg.Keys)
	if err != nil {
		return
	}

	disp = &Display{
		Verbose: cfg.Verbose,
		Console: con,
		title:   cfg.Title,
		width:   cfg.Width,
		height:  cfg.Height,
		scale:   cfg.Scale,
		keys:    map[ebiten.Key]io.Button{},
	}

	for key := ebiten.Key(0); key <= ebiten.KeyMax; key++ {
		button, ok := km.Lookup(key.String())
		if ok {
			disp.keys[key] = button
		}
	}

	if len(disp.keys) != len(km) {
		log.Printf("display: %d of %d configured keys are unknown", len(km)-len(disp.keys), len(km))
	}

	return
}

// Run opens the window and blocks until the frame stream ends or the
// window is closed.
func (disp *Display) Run() (err error) {
	ebiten.SetWindowSize(disp.width*disp.scale, disp.height*disp.scale)
	ebiten.SetWindowTitle(disp.title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetRunnableOnUnfocused(true)

	err = ebiten.RunGame(disp)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	return
}

func (disp *Display) Update() error {
	if ebiten.IsWindowBeingClosed() {
		disp.stop()
		return ebiten.Termination
	}

	frame, ok, open := disp.Frames.TryReceive()
	if ok {
		disp.frame = frame
		disp.dirty = true
	}
	if !open {
		if disp.Verbose {
			log.Printf("display: frame stream closed after %d frames", disp.frame.Sequence)
		}
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		disp.status = !disp.status
	}

	disp.handleKeys()
	disp.handleGamepads()

	return nil
}

func (disp *Display) handleKeys() {
	for key, button := range disp.keys {
		if inpututil.IsKeyJustPressed(key) {
			disp.Buttons.Press(button)
		}
		if inpututil.IsKeyJustReleased(key) {
			disp.Buttons.Release(button)
		}
	}
}

func (disp *Display) handleGamepads() {
	disp.gamepads = ebiten.AppendGamepadIDs(disp.gamepads[:0])
	for _, id := range disp.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for pad, button := range gamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, pad) {
				disp.Buttons.Press(button)
			}
			if inpututil.IsStandardGamepadButtonJustReleased(id, pad) {
				disp.Buttons.Release(button)
			}
		}
	}
}

func (disp *Display) Draw(screen *ebiten.Image) {
	if disp.image == nil {
		disp.image = ebiten.NewImage(disp.width, disp.height)
	}

	if disp.dirty && len(disp.frame.Pix) == disp.width*disp.height*4 {
		disp.image.WritePixels(disp.frame.Pix)
		disp.dirty = false
	}
	screen.DrawImage(disp.image, nil)

	if disp.status {
		text.Draw(screen, disp.statusLine(), basicfont.Face7x13, 2, 12, color.White)
	}
}

func (disp *Display) statusLine() string {
	return translate.From("f%d d%d %08b", disp.frame.Sequence, disp.Frames.Dropped(), disp.state())
}

func (disp *Display) Layout(outsideWidth, outsideHeight int) (int, int) {
	return disp.width, disp.height
}
