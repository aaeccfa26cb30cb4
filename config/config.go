// Package config holds the host settings of the zen console: frame size,
// JUMPDT frequency, window scale and the keyboard mapping.
//
// Settings are read from a TOML document, or from a Starlark script whose
// globals name the same settings.
package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/steffenhaug/zen/io"
)

const (
	DEFAULT_WIDTH     = 160  // Frame width in pixels.
	DEFAULT_HEIGHT    = 144  // Frame height in pixels.
	DEFAULT_FREQUENCY = 10   // JUMPDT frequency, in Hz.
	DEFAULT_SCALE     = 4    // Window pixels per frame pixel.
	MAX_DIMENSION     = 256  // Coordinates are register values.
	MAX_FREQUENCY     = 1000 // JUMPDT periods are whole milliseconds.
)

// Config is the host configuration.
type Config struct {
	Width     int               `toml:"width"`
	Height    int               `toml:"height"`
	Frequency uint              `toml:"frequency"`
	Scale     int               `toml:"scale"`
	Title     string            `toml:"title"`
	Verbose   bool              `toml:"verbose"`
	Keys      map[string]string `toml:"keys"` // Key name to button name.
}

// DefaultKeys maps the arrow keys to the D-pad and Z, X, A, S to the
// A, B, X, Y buttons.
func DefaultKeys() map[string]string {
	return map[string]string{
		"ArrowLeft":  "left",
		"ArrowRight": "right",
		"ArrowUp":    "up",
		"ArrowDown":  "down",
		"Z":          "a",
		"X":          "b",
		"A":          "x",
		"S":          "y",
	}
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Width:     DEFAULT_WIDTH,
		Height:    DEFAULT_HEIGHT,
		Frequency: DEFAULT_FREQUENCY,
		Scale:     DEFAULT_SCALE,
		Title:     "Zen",
		Keys:      DefaultKeys(),
	}
}

// Load reads a configuration file. The format is chosen by extension:
// .toml or .star. Settings not named in the file keep their defaults.
func Load(path string) (cfg Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("cannot read %s: %w", path, err)
		return
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		cfg, err = ParseToml(data)
	case ".star":
		cfg, err = ParseStarlark(path, data)
	default:
		err = fmt.Errorf("%s: %w", path, ErrFormat)
		return
	}
	if err != nil {
		err = fmt.Errorf("parse error in %s: %w", path, err)
		return
	}

	err = cfg.Validate()
	if err != nil {
		err = fmt.Errorf("%s: %w", path, err)
	}
	return
}

// ParseToml parses a TOML document over the defaults. A [keys] table
// replaces the default key mapping.
func ParseToml(data []byte) (cfg Config, err error) {
	cfg = Default()
	cfg.Keys = nil

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		err = ErrUnknownSetting(undecoded[0].String())
		return
	}

	if !md.IsDefined("keys") {
		cfg.Keys = DefaultKeys()
	}

	return
}

// ParseStarlark executes a Starlark script and reads its globals over the
// defaults. The script may compute settings from the predeclared
// DEFAULT_* values.
func ParseStarlark(name string, data []byte) (cfg Config, err error) {
	cfg = Default()

	thread := starlark.Thread{Name: name}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"DEFAULT_WIDTH":     starlark.MakeInt(DEFAULT_WIDTH),
		"DEFAULT_HEIGHT":    starlark.MakeInt(DEFAULT_HEIGHT),
		"DEFAULT_FREQUENCY": starlark.MakeInt(DEFAULT_FREQUENCY),
		"DEFAULT_SCALE":     starlark.MakeInt(DEFAULT_SCALE),
	}

	globals, err := starlark.ExecFileOptions(&opts, &thread, name, data, pred)
	if err != nil {
		return
	}

	frequency := int(cfg.Frequency)
	for _, step := range []error{
		starInt(globals, "width", &cfg.Width),
		starInt(globals, "height", &cfg.Height),
		starInt(globals, "frequency", &frequency),
		starInt(globals, "scale", &cfg.Scale),
		starString(globals, "title", &cfg.Title),
		starBool(globals, "verbose", &cfg.Verbose),
		starKeys(globals, "keys", &cfg.Keys),
	} {
		if step != nil {
			err = step
			return
		}
	}

	if frequency < 0 {
		err = ErrSetting{Name: "frequency", Value: frequency}
		return
	}
	cfg.Frequency = uint(frequency)

	return
}

func starInt(globals starlark.StringDict, name string, value *int) (err error) {
	st_value, ok := globals[name]
	if !ok {
		return
	}

	st_int, ok := st_value.(starlark.Int)
	if !ok {
		err = ErrSetting{Name: name, Value: st_value}
		return
	}

	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrSetting{Name: name, Value: st_value}
		return
	}

	*value = int(st_int64)
	return
}

func starString(globals starlark.StringDict, name string, value *string) (err error) {
	st_value, ok := globals[name]
	if !ok {
		return
	}

	str, ok := starlark.AsString(st_value)
	if !ok {
		err = ErrSetting{Name: name, Value: st_value}
		return
	}

	*value = str
	return
}

func starBool(globals starlark.StringDict, name string, value *bool) (err error) {
	st_value, ok := globals[name]
	if !ok {
		return
	}

	st_bool, ok := st_value.(starlark.Bool)
	if !ok {
		err = ErrSetting{Name: name, Value: st_value}
		return
	}

	*value = bool(st_bool)
	return
}

func starKeys(globals starlark.StringDict, name string, value *map[string]string) (err error) {
	st_value, ok := globals[name]
	if !ok {
		return
	}

	st_dict, ok := st_value.(*starlark.Dict)
	if !ok {
		err = ErrSetting{Name: name, Value: st_value}
		return
	}

	keys := map[string]string{}
	for _, item := range st_dict.Items() {
		key, ok_key := starlark.AsString(item[0])
		button, ok_button := starlark.AsString(item[1])
		if !ok_key || !ok_button {
			err = ErrSetting{Name: name, Value: item}
			return
		}
		keys[key] = button
	}

	*value = keys
	return
}

// Validate checks the settings against the limits of the machine.
func (cfg Config) Validate() (err error) {
	switch {
	case cfg.Width <= 0 || cfg.Width > MAX_DIMENSION:
		err = ErrSetting{Name: "width", Value: cfg.Width}
	case cfg.Height <= 0 || cfg.Height > MAX_DIMENSION:
		err = ErrSetting{Name: "height", Value: cfg.Height}
	case cfg.Frequency == 0 || cfg.Frequency > MAX_FREQUENCY:
		err = ErrSetting{Name: "frequency", Value: cfg.Frequency}
	case cfg.Scale <= 0:
		err = ErrSetting{Name: "scale", Value: cfg.Scale}
	}
	if err != nil {
		return
	}

	for _, key := range slices.Sorted(maps.Keys(cfg.Keys)) {
		if strings.TrimSpace(key) == "" {
			err = ErrSetting{Name: "keys", Value: fmt.Sprintf("%q", key)}
			return
		}
		_, err = io.ParseButton(cfg.Keys[key])
		if err != nil {
			err = ErrSetting{Name: "keys." + key, Value: cfg.Keys[key]}
			return
		}
	}

	return
}
