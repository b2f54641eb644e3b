package main

import (
	"os"

	"github.com/coder/quartz"

	"github.com/lox/acpcstars/internal/convert"
	"github.com/lox/acpcstars/internal/report"
	"github.com/lox/acpcstars/internal/statistics"
)

// ConvertCmd writes PokerStars transcripts.
type ConvertCmd struct {
	RunFlags    `embed:""`
	OutputFlags `embed:""`

	DescribeHands bool `name:"describe-hands" help:"Name the made hand on showdown lines"`
	Report        bool `help:"Print a run summary to stderr"`
	NoColor       bool `name:"no-color" help:"Disable colour in the run summary"`
}

func (c *ConvertCmd) Run(g *Globals) error {
	settings, err := c.settings(g)
	if err != nil {
		return err
	}
	if c.DescribeHands {
		settings.DescribeHands = true
	}
	logger := newLogger(os.Stderr, settings.LogLevel)
	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	r := runner{
		settings: settings,
		encoder:  convert.PokerStars{DescribeHands: settings.DescribeHands},
		logger:   logger,
		clock:    quartz.NewReal(),
	}
	if c.Report {
		r.stats = statistics.NewCollector()
	}

	sum, err := r.run(ctx, c.Input, c.OutputFlags)
	if err != nil {
		logger.Error("Conversion failed", "hands", sum.Hands, "error", err)
		return err
	}
	if r.stats != nil {
		return report.Write(os.Stderr, r.stats, c.NoColor)
	}
	return nil
}
