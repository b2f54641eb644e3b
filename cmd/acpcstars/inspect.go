package main

import (
	"io"
	"os"

	"github.com/coder/quartz"

	"github.com/lox/acpcstars/internal/convert"
	"github.com/lox/acpcstars/internal/statistics"
)

// InspectCmd replays a log without writing anything.
type InspectCmd struct {
	RunFlags `embed:""`
}

func (c *InspectCmd) Run(g *Globals) error {
	settings, err := c.settings(g)
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, settings.LogLevel)
	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	in, err := openInput(c.Input)
	if err != nil {
		return err
	}
	defer in.Close()

	r := runner{
		settings: settings,
		encoder:  convert.Discard{},
		stats:    statistics.NewCollector(),
		logger:   logger,
		clock:    quartz.NewReal(),
	}
	sum, err := convert.New(r.options()).Run(ctx, in, io.Discard)
	if err != nil {
		logger.Error("Invalid hand", "valid", sum.Hands, "error", err)
		return err
	}
	if err := r.stats.Validate(); err != nil {
		return err
	}

	logger.Info("Log is valid",
		"hands", r.stats.Hands,
		"showdowns", r.stats.Showdowns,
		"uncontested", r.stats.Uncontested,
		"chops", r.stats.Chops,
		"largest_pot", r.stats.MaxPot)
	return nil
}
