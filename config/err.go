package config

import (
	"errors"

	"github.com/steffenhaug/zen/translate"
)

var f = translate.From

var (
	ErrFormat  = errors.New(f("unsupported configuration format"))
	ErrInvalid = errors.New(f("invalid configuration"))
)

// ErrSetting reports a setting with an unusable value.
type ErrSetting struct {
	Name  string
	Value any
}

func (err ErrSetting) Error() string {
	return f("setting %v: invalid value %v", err.Name, err.Value)
}

func (err ErrSetting) Unwrap() error {
	return ErrInvalid
}

// ErrUnknownSetting reports a setting the configuration does not have.
type ErrUnknownSetting string

func (err ErrUnknownSetting) Error() string {
	return f("unknown setting %v", string(err))
}

func (err ErrUnknownSetting) Unwrap() error {
	return ErrInvalid
}
