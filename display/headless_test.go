//go:build headless

package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/steffenhaug/zen/config"
	"github.com/steffenhaug/zen/io"
)

func TestDisplay_Headless(t *testing.T) {
	assert := assert.New(t)

	frames := io.NewFrameChannel()
	disp, err := New(config.Default(), Console{Frames: frames})
	assert.NoError(err)

	frames.Send(io.Frame{Sequence: 1})
	frames.Close()

	err = disp.Run()
	assert.NoError(err)
	assert.Equal(uint64(1), disp.received)
}
