package emulator

import (
	"errors"

	"github.com/steffenhaug/zen/translate"
)

var f = translate.From

var (
	ErrStopped = errors.New(f("stopped"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip  int
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("ip 0x%04x: %v", err.Ip, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
