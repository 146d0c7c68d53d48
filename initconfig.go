package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const DefaultConfigPath = "sensor_pins.toml"

var ErrConfigExists = errors.New("config file already exists")

// initConfig writes the built-in tables to path so they can be edited and
// passed back with --config. An existing file is only replaced if reset is set.
func initConfig(path string, reset bool) error {
	if path == "" {
		path = DefaultConfigPath
	}

	_, err := os.Stat(path)
	if err == nil && !reset {
		return errors.Wrap(ErrConfigExists, path)
	}

	os.MkdirAll(filepath.Dir(path), 0755)
	dst, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create config")
	}
	defer dst.Close()

	_, err = io.WriteString(dst, configFile)
	if err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return errors.Wrapf(dst.Close(), "close %s", path)
}
