package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestDefaultConfig(t *testing.T) {
	c, err := DefaultConfig()
	if err != nil {
		t.Fatalf("got error decoding built-in config: %v", err)
	}

	assertStrings(t, c.Filename, DefaultFilename)
	assertStrings(t, c.Generator, DefaultGenerator)
	assertInts(t, len(c.Descriptor), 6)
	assertInts(t, len(c.Pin), 8)

	assertStrings(t, c.Descriptor[0].Name, "SPV_SENSOR_MICROPHONE_CS")
	assertInts(t, c.Descriptor[0].Default, 13)
	assertStrings(t, c.Descriptor[4].Prompt, "I²C SDA pin")

	p, ok := c.PinByGPIO(27)
	if !ok {
		t.Fatal("GPIO 27 missing from pin table")
	}
	assertInts(t, p.RTC, 17)

	for _, strapping := range []int{0, 2, 12, 15, 34, 35, 36, 37, 38, 39} {
		if _, ok := c.PinByGPIO(strapping); ok {
			t.Errorf("GPIO %d should not be selectable", strapping)
		}
	}

	err = c.Validate(true)
	if err != nil {
		t.Errorf("built-in config does not validate: %v", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pins.toml")
	err := os.WriteFile(path, []byte(`
[[Descriptor]]
	Name = "X"
	Prompt = "X pin"
	Help = "Pin for X."
	Default = 13
[[Pin]]
	GPIO = 4
	RTC = 10
[[Pin]]
	GPIO = 13
	RTC = 14
`), 0644)
	if err != nil {
		t.Fatal(err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("got error loading config: %v", err)
	}
	assertStrings(t, c.Filename, DefaultFilename)
	assertInts(t, len(c.Descriptor), 1)
	assertInts(t, len(c.Pin), 2)
	assertInts(t, c.Pin[1].RTC, 14)
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pins.toml")
	err := os.WriteFile(path, []byte(`
[[Pin]]
	GPIO = 4
	RCT = 10
`), 0644)
	if err != nil {
		t.Fatal(err)
	}

	_, err = LoadConfig(path)
	if errors.Cause(err) != ErrInvalidConfig {
		t.Errorf("got %v, want ErrInvalidConfig", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Error("got nil error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		strict bool
		valid  bool
	}{
		{"example", func(c *Config) {}, true, true},
		{"no descriptors", func(c *Config) { c.Descriptor = nil }, false, false},
		{"no pins", func(c *Config) { c.Pin = nil }, false, false},
		{"empty name", func(c *Config) { c.Descriptor[0].Name = "" }, false, false},
		{"bad name", func(c *Config) { c.Descriptor[0].Name = "X-Y" }, false, false},
		{"duplicate name", func(c *Config) { c.Descriptor = append(c.Descriptor, c.Descriptor[0]) }, false, false},
		{"duplicate gpio", func(c *Config) { c.Pin = append(c.Pin, PinPair{4, 11}) }, false, false},
		{"dangling default", func(c *Config) { c.Descriptor[0].Default = 5 }, false, true},
		{"dangling default strict", func(c *Config) { c.Descriptor[0].Default = 5 }, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := exampleConfig()
			tt.modify(&c)

			err := c.Validate(tt.strict)
			if tt.valid && err != nil {
				t.Errorf("got error: %v", err)
			}
			if !tt.valid && errors.Cause(err) != ErrInvalidConfig {
				t.Errorf("got %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestDanglingDefaults(t *testing.T) {
	c := exampleConfig()
	c.Descriptor = append(c.Descriptor, Descriptor{Name: "Y", Default: 2})

	dangling := c.DanglingDefaults()
	assertInts(t, len(dangling), 1)
	assertStrings(t, dangling[0].Name, "Y")
}
