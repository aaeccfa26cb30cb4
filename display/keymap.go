package display

import (
	"strings"

	"github.com/steffenhaug/zen/io"
)

// Keymap resolves host key names to console buttons. Key names compare
// without regard to case or surrounding space.
type Keymap map[string]io.Button

// NewKeymap builds a keymap from key name to button name pairs.
func NewKeymap(keys map[string]string) (km Keymap, err error) {
	km = Keymap{}
	for key, name := range keys {
		var button io.Button
		button, err = io.ParseButton(name)
		if err != nil {
			km = nil
			return
		}
		km[normalize(key)] = button
	}

	return
}

// Lookup returns the button bound to the key, if any.
func (km Keymap) Lookup(key string) (button io.Button, ok bool) {
	button, ok = km[normalize(key)]
	return
}

func normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
