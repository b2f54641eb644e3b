package main

import (
	"os"

	"github.com/coder/quartz"

	"github.com/lox/acpcstars/internal/convert"
)

// PHHCmd writes PHH TOML sections.
type PHHCmd struct {
	RunFlags    `embed:""`
	OutputFlags `embed:""`
}

func (c *PHHCmd) Run(g *Globals) error {
	settings, err := c.settings(g)
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, settings.LogLevel)
	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	r := runner{
		settings: settings,
		encoder:  convert.PHH{},
		logger:   logger,
		clock:    quartz.NewReal(),
	}
	sum, err := r.run(ctx, c.Input, c.OutputFlags)
	if err != nil {
		logger.Error("PHH export failed", "hands", sum.Hands, "error", err)
	}
	return err
}
