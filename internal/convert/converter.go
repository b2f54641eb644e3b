// Package convert drives a run: it reads ACPC records, replays them and
// writes the encoded hands in input order.
package convert

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/acpcstars/internal/acpc"
	"github.com/lox/acpcstars/internal/game"
	"github.com/lox/acpcstars/internal/statistics"
)

const (
	defaultTable   = "1"
	handsPerWorker = 16
	maxLineBytes   = 1 << 20
)

// Options configure a Converter.
type Options struct {
	// Table, Game and BigBlind override the log header. Empty values fall
	// back to the header, then to table "1", limit and the game's default
	// big blind.
	Table    string
	Game     string
	BigBlind int

	Workers    int
	MaxRecords int
	Encoder    Encoder
	Clock      quartz.Clock
	Logger     *log.Logger
	Stats      *statistics.Collector // optional
}

// Summary describes a finished run.
type Summary struct {
	Records int // STATE lines read
	Hands   int // hands written
	Skipped int // other lines ignored
}

// Converter converts one input stream. It is not reusable across runs
// because the seat map is captured from the first hand.
type Converter struct {
	opts   Options
	logger *log.Logger
	clock  quartz.Clock
	seats  SeatMap
	header acpc.Header
}

type job struct {
	seq  int
	line int
	raw  string
	rec  acpc.HandRecord
	at   time.Time
}

type result struct {
	hand *game.Hand
	out  game.Outcome
	data []byte
	err  error
}

// New creates a Converter, filling in defaults for unset options.
func New(opts Options) *Converter {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Encoder == nil {
		opts.Encoder = PokerStars{}
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Converter{
		opts:   opts,
		logger: logger.WithPrefix("convert"),
		clock:  opts.Clock,
	}
}

// Run reads records from r and writes encoded hands to w. Hands are replayed
// in parallel batches but always written in input order. The first failing
// record aborts the run; hands before it have already been written.
func (c *Converter) Run(ctx context.Context, r io.Reader, w io.Writer) (Summary, error) {
	var sum Summary
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	batch := make([]job, 0, c.opts.Workers*handsPerWorker)
	flush := func() error {
		n, err := c.flush(ctx, batch, w)
		sum.Hands += n
		batch = batch[:0]
		return err
	}

	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		raw := strings.TrimRight(scanner.Text(), "\r")

		if !acpc.IsState(raw) {
			if h, ok := acpc.ParseHeader(raw); ok && sum.Records == 0 {
				c.header = h
				if !h.HasGame {
					c.logger.Warn("Log header has no known game type", "line", line)
				}
				c.logger.Debug("Read log header", "table", h.Table, "game", h.Game)
			}
			sum.Skipped++
			continue
		}

		sum.Records++
		if c.opts.MaxRecords > 0 && sum.Records > c.opts.MaxRecords {
			if err := flush(); err != nil {
				return sum, err
			}
			return sum, &RecordError{Line: line, Raw: raw,
				Err: fmt.Errorf("%w: more than %d records", ErrRecordCountExceeded, c.opts.MaxRecords)}
		}

		rec, err := c.parse(raw)
		if err == nil {
			err = c.seats.Observe(rec.Players)
		}
		if err != nil {
			// Earlier records are written first so failures surface in input order.
			if ferr := flush(); ferr != nil {
				return sum, ferr
			}
			return sum, &RecordError{Line: line, Raw: raw, Err: err}
		}

		batch = append(batch, job{seq: sum.Records, line: line, raw: raw, rec: rec, at: c.clock.Now()})
		if len(batch) == cap(batch) {
			if err := flush(); err != nil {
				return sum, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return sum, fmt.Errorf("reading input: %w", err)
	}
	if err := flush(); err != nil {
		return sum, err
	}

	c.logger.Info("Converted hands", "hands", sum.Hands, "skipped", sum.Skipped)
	return sum, nil
}

func (c *Converter) parse(raw string) (acpc.HandRecord, error) {
	g := acpc.Limit
	switch {
	case c.opts.Game != "":
		parsed, err := acpc.ParseGameType(c.opts.Game)
		if err != nil {
			return acpc.HandRecord{}, err
		}
		g = parsed
	case c.header.HasGame:
		g = c.header.Game
	}
	bb := c.opts.BigBlind
	if bb == 0 {
		bb = g.DefaultBigBlind()
	}
	return acpc.Parse(raw, acpc.ParseOptions{Game: g, BigBlind: bb})
}

func (c *Converter) table() string {
	switch {
	case c.opts.Table != "":
		return c.opts.Table
	case c.header.Table != "":
		return c.header.Table
	default:
		return defaultTable
	}
}

// flush replays a batch concurrently, then writes results in order up to the
// first failure.
func (c *Converter) flush(ctx context.Context, batch []job, w io.Writer) (int, error) {
	if len(batch) == 0 {
		return 0, nil
	}

	results := make([]result, len(batch))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Workers)
	for i := range batch {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = c.process(batch[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	for i, res := range results {
		j := batch[i]
		if res.err != nil {
			return i, &RecordError{Line: j.line, Raw: j.raw, Err: res.err}
		}
		if _, err := w.Write(res.data); err != nil {
			return i, fmt.Errorf("writing hand %d: %w", j.rec.ID, err)
		}
		if c.opts.Stats != nil {
			c.opts.Stats.Add(res.hand, res.out)
		}
		c.logger.Debug("Converted hand",
			"hand", j.rec.ID,
			"pot", res.out.Pot,
			"showdown", res.out.Showdown,
			"winners", len(res.out.Winners))
	}
	return len(batch), nil
}

func (c *Converter) process(j job) result {
	hand, err := game.Replay(j.rec)
	if err != nil {
		return result{err: err}
	}
	out, err := game.ResolvePot(hand.State, j.rec.Results)
	if err != nil {
		return result{err: fmt.Errorf("hand %d: %w", j.rec.ID, err)}
	}
	data, err := c.opts.Encoder.Encode(Converted{
		Seq:     j.seq,
		Hand:    hand,
		Outcome: out,
		Table:   c.table(),
		Seats:   c.seats.Seats(),
		Time:    j.at,
	})
	if err != nil {
		return result{err: fmt.Errorf("hand %d: %w", j.rec.ID, err)}
	}
	return result{hand: hand, out: out, data: data}
}
