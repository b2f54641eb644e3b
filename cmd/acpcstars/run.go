package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/acpcstars/internal/config"
	"github.com/lox/acpcstars/internal/convert"
	"github.com/lox/acpcstars/internal/fileutil"
	"github.com/lox/acpcstars/internal/statistics"
)

// RunFlags are the run-level settings. Zero values defer to the config file,
// then to the log header.
type RunFlags struct {
	Input      string `arg:"" name:"input" help:"ACPC log file, or - for stdin" default:"-"`
	Table      string `help:"Table identifier (default: last token of the log header)"`
	Game       string `help:"Betting structure, limit or nolimit (default: from the log header)"`
	BigBlind   int    `name:"big-blind" help:"Big blind size (default: 10 limit, 100 no-limit)"`
	Workers    int    `help:"Hands replayed in parallel"`
	MaxRecords int    `name:"max-records" help:"Abort when the log holds more records than this"`
}

// OutputFlags select where converted hands go.
type OutputFlags struct {
	Output string `short:"o" help:"Output file (default: stdout)" type:"path"`
	Atomic bool   `help:"Only replace the output file once every hand converted"`
}

// settings merges the config file, flags and globals, in rising precedence.
func (f RunFlags) settings(g *Globals) (*config.ConverterSettings, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	s := cfg.Converter
	if f.Table != "" {
		s.Table = f.Table
	}
	if f.Game != "" {
		s.Game = f.Game
	}
	if f.BigBlind != 0 {
		s.BigBlind = f.BigBlind
	}
	if f.Workers != 0 {
		s.Workers = f.Workers
	}
	if f.MaxRecords != 0 {
		s.MaxRecords = f.MaxRecords
	}
	if g.LogLevel != "" {
		s.LogLevel = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return s, nil
}

type runner struct {
	settings *config.ConverterSettings
	encoder  convert.Encoder
	stats    *statistics.Collector
	logger   *log.Logger
	clock    quartz.Clock
}

func (r runner) options() convert.Options {
	return convert.Options{
		Table:      r.settings.Table,
		Game:       r.settings.Game,
		BigBlind:   r.settings.BigBlind,
		Workers:    r.settings.Workers,
		MaxRecords: r.settings.MaxRecords,
		Encoder:    r.encoder,
		Clock:      r.clock,
		Logger:     r.logger,
		Stats:      r.stats,
	}
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// run converts input to out.
func (r runner) run(ctx context.Context, input string, out OutputFlags) (convert.Summary, error) {
	in, err := openInput(input)
	if err != nil {
		return convert.Summary{}, err
	}
	defer in.Close()

	switch {
	case out.Output == "" || out.Output == "-":
		return r.stream(ctx, in, os.Stdout)

	case out.Atomic:
		f, err := fileutil.CreateAtomic(out.Output, 0644)
		if err != nil {
			return convert.Summary{}, err
		}
		defer f.Abort()
		sum, err := r.stream(ctx, in, f)
		if err != nil {
			return sum, err
		}
		return sum, f.Commit()

	default:
		f, err := os.Create(out.Output)
		if err != nil {
			return convert.Summary{}, err
		}
		sum, err := r.stream(ctx, in, f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		return sum, err
	}
}

// stream buffers output and flushes it even when the run fails, so hands
// converted before the failure are kept.
func (r runner) stream(ctx context.Context, in io.Reader, w io.Writer) (convert.Summary, error) {
	bw := bufio.NewWriter(w)
	sum, err := convert.New(r.options()).Run(ctx, in, bw)
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	return sum, err
}
