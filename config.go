package main

import (
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidConfig = errors.New("invalid config")

	nameRx = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

// PinPair is a physical pin usable both as a GPIO and through the RTC mux.
type PinPair struct {
	GPIO int
	RTC  int
}

// Descriptor describes one sensor signal that gets its own pin choice.
type Descriptor struct {
	Name    string
	Prompt  string
	Help    string
	Default int
}

type Config struct {
	Filename   string
	Generator  string
	Descriptor []Descriptor
	Pin        []PinPair
}

// DefaultConfig returns the built-in sensor and pin tables.
func DefaultConfig() (Config, error) {
	return decodeConfig(configFile, "built-in")
}

// LoadConfig reads the tables from a TOML file, or returns the built-in
// tables if path is empty.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig()
	}
	var c Config
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return c, errors.Wrapf(err, "decode %s", path)
	}
	return c, finishDecode(&c, md, path)
}

func decodeConfig(data, name string) (Config, error) {
	var c Config
	md, err := toml.Decode(data, &c)
	if err != nil {
		return c, errors.Wrapf(err, "decode %s", name)
	}
	return c, finishDecode(&c, md, name)
}

func finishDecode(c *Config, md toml.MetaData, name string) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.Wrapf(ErrInvalidConfig, "%s: unknown keys %s", name, strings.Join(keys, ", "))
	}
	if c.Filename == "" {
		c.Filename = DefaultFilename
	}
	if c.Generator == "" {
		c.Generator = DefaultGenerator
	}
	return nil
}

// PinByGPIO returns the pin pair with the given GPIO number.
func (c Config) PinByGPIO(gpio int) (PinPair, bool) {
	for _, p := range c.Pin {
		if p.GPIO == gpio {
			return p, true
		}
	}
	return PinPair{}, false
}

// DanglingDefaults returns the descriptors whose default GPIO is not in the
// pin table. Their generated choice would reference a missing option.
func (c Config) DanglingDefaults() []Descriptor {
	var dangling []Descriptor
	for _, d := range c.Descriptor {
		if _, ok := c.PinByGPIO(d.Default); !ok {
			dangling = append(dangling, d)
		}
	}
	return dangling
}

// Validate checks the tables for problems that would produce an invalid
// Kconfig fragment. Dangling defaults are only logged unless strict is set.
func (c Config) Validate(strict bool) error {
	if len(c.Descriptor) == 0 {
		return errors.Wrap(ErrInvalidConfig, "no descriptors configured")
	}
	if len(c.Pin) == 0 {
		return errors.Wrap(ErrInvalidConfig, "no pins configured")
	}

	names := make(map[string]bool, len(c.Descriptor))
	for i, d := range c.Descriptor {
		if !nameRx.MatchString(d.Name) {
			return errors.Wrapf(ErrInvalidConfig, "descriptor #%d: invalid name '%s'", i, d.Name)
		}
		if names[d.Name] {
			return errors.Wrapf(ErrInvalidConfig, "descriptor #%d: duplicate name '%s'", i, d.Name)
		}
		names[d.Name] = true
	}

	gpios := make(map[int]bool, len(c.Pin))
	for i, p := range c.Pin {
		if gpios[p.GPIO] {
			return errors.Wrapf(ErrInvalidConfig, "pin #%d: duplicate GPIO %d", i, p.GPIO)
		}
		gpios[p.GPIO] = true
	}

	dangling := c.DanglingDefaults()
	for _, d := range dangling {
		log.WithFields(log.Fields{
			"ID":      d.Name,
			"Default": d.Default,
		}).Warnln("default pin is not in the pin table")
	}
	if strict && len(dangling) > 0 {
		return errors.Wrapf(ErrInvalidConfig, "descriptor '%s': default GPIO %d is not in the pin table", dangling[0].Name, dangling[0].Default)
	}

	return nil
}
