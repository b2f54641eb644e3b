// Package report renders a run summary for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/lox/acpcstars/internal/statistics"
)

type styles struct {
	header  lipgloss.Style
	label   lipgloss.Style
	cell    lipgloss.Style
	winning lipgloss.Style
	losing  lipgloss.Style
	border  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1),
		label:   r.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		cell:    r.NewStyle().Padding(0, 1),
		winning: r.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#96CEB4")),
		losing:  r.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#FF6B6B")),
		border:  r.NewStyle().Foreground(lipgloss.Color("#626262")),
	}
}

// Write renders the collector to w. Colour follows the terminal behind w;
// plain forces uncoloured output.
func Write(w io.Writer, c *statistics.Collector, plain bool) error {
	var opts []termenv.OutputOption
	if plain {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	r := lipgloss.NewRenderer(w, opts...)
	st := newStyles(r)

	summary := []struct {
		label string
		value string
	}{
		{"Hands", strconv.Itoa(c.Hands)},
		{"Showdowns", strconv.Itoa(c.Showdowns)},
		{"Uncontested", strconv.Itoa(c.Uncontested)},
		{"Chopped pots", strconv.Itoa(c.Chops)},
		{"Uncalled chips returned", strconv.Itoa(c.UncalledChips)},
		{"Largest pot", fmt.Sprintf("%d (hand %d)", c.MaxPot, c.MaxPotHand)},
		{"Ended preflop/flop/turn/river", fmt.Sprintf("%d/%d/%d/%d",
			c.StreetsReached[0], c.StreetsReached[1], c.StreetsReached[2], c.StreetsReached[3])},
	}
	for _, line := range summary {
		if _, err := fmt.Fprintf(w, "%s %s\n", st.label.Render(line.label+":"), line.value); err != nil {
			return err
		}
	}

	players := c.Players()
	rows := make([][]string, 0, len(players))
	means := make([]float64, 0, len(players))
	for _, p := range players {
		low, high := p.ConfidenceInterval95()
		rows = append(rows, []string{
			p.Name,
			strconv.Itoa(p.Hands),
			fmt.Sprintf("%+.2f", p.AllBB),
			fmt.Sprintf("%+.3f", p.Mean()),
			fmt.Sprintf("%.3f", p.StdDev()),
			fmt.Sprintf("[%+.3f, %+.3f]", low, high),
			fmt.Sprintf("%+.2f", p.ShowdownBB),
			fmt.Sprintf("%+.2f", p.NonShowdownBB),
		})
		means = append(means, p.Mean())
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.border).
		Headers("Player", "Hands", "Net bb", "bb/hand", "Std dev", "95% CI", "Showdown bb", "Non-showdown bb").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return st.header
			case col == 3 && row >= 0 && row < len(means) && means[row] > 0:
				return st.winning
			case col == 3 && row >= 0 && row < len(means) && means[row] < 0:
				return st.losing
			default:
				return st.cell
			}
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
