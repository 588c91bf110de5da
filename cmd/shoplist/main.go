package main

import (
	"os"

	"github.com/jask/shoplist/internal/config"
	"github.com/jask/shoplist/internal/logging"
	"github.com/jask/shoplist/internal/shell"
	"github.com/jask/shoplist/internal/textlist"
)

func main() {
	boot := logging.Bootstrap(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		boot.Fatal().Err(err).Msg("config")
	}

	logger, closeLog, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		boot.Fatal().Err(err).Msg("logger")
	}
	defer closeLog()

	list, err := newList(cfg.List)
	if err != nil {
		boot.Fatal().Err(err).Msg("create list")
	}
	logger.Debug().Int("capacity", list.Cap()).Int("seeded", list.Len()).Msg("list ready")

	if err := shell.New(os.Stdin, os.Stdout, list, cfg, logger).Run(); err != nil {
		logger.Error().Err(err).Msg("shell")
		_ = closeLog()
		os.Exit(1)
	}
}

// newList starts from the configured seed items when there are any, and
// from an empty list of the configured capacity otherwise.
func newList(cfg config.ListConfig) (*textlist.List, error) {
	if len(cfg.SeedItems) > 0 {
		return textlist.NewFrom(cfg.SeedItems)
	}
	return textlist.NewWithCapacity(cfg.InitialCapacity)
}
