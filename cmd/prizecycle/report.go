package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/prizecycle/construct"
	"github.com/katalvlaran/prizecycle/localsearch"
	"github.com/katalvlaran/prizecycle/runner"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
)

var summaryHeaders = []string{"METHOD", "RUNS", "MIN", "MEAN", "MAX", "MOVES", "TIME", "BEST RUN"}

// writeSummary prints one row per method.
func writeSummary(w io.Writer, points int, sums []runner.Summary) error {
	rows := make([][]string, len(sums))
	for i, s := range sums {
		rows[i] = []string{
			string(s.Method),
			strconv.Itoa(s.Runs),
			strconv.FormatInt(s.Min, 10),
			strconv.FormatFloat(s.Mean, 'f', 1, 64),
			strconv.FormatInt(s.Max, 10),
			strconv.FormatFloat(s.MeanApplied, 'f', 1, 64),
			s.MeanElapsed.String(),
			strconv.Itoa(s.Best.Run),
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(summaryHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle
			default:
				return numberStyle
			}
		})

	_, err := fmt.Fprintf(w, "%s\n%s\n", titleStyle.Render(fmt.Sprintf("%d points", points)), t.Render())

	return err
}

type solveReport struct {
	method  localsearch.Method
	start   construct.Strategy
	initial int64
	final   int64
	stats   localsearch.Stats
	tour    []int
}

// writeSolve prints the outcome of one descent.
func writeSolve(w io.Writer, r solveReport) error {
	_, err := fmt.Fprintf(w, "%s\ninitial: %d\nfinal: %d\napplied: %d\nevaluated: %d\ntour: %v\n",
		titleStyle.Render(fmt.Sprintf("%s from %s", r.method, r.start)),
		r.initial, r.final, r.stats.Applied, r.stats.Evaluated, r.tour)

	return err
}
