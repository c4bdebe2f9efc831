package main

import (
	"github.com/joacominatel/tablepeek/internal/config"
	"github.com/pkg/errors"
)

// saveConnection adds conn to the config file at path. cfg must be what was
// read from that file: when loading it failed, saving would replace the file
// with conn alone, so nothing is written.
func saveConnection(cfg *config.Config, loadErr error, conn config.Connection, path string) error {
	if loadErr != nil {
		return errors.Wrap(loadErr, "config was not loaded, refusing to overwrite it")
	}
	return config.SaveConnection(cfg, conn, path)
}
