package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"softypoker/internal/simulator"
	"softypoker/pkg/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
)

// SimulateCmd plays sessions headlessly
type SimulateCmd struct {
	Sessions int    `short:"n" help:"Number of sessions (overrides config)"`
	Rounds   int    `short:"r" help:"Most rounds per session (overrides config)"`
	Workers  int    `short:"w" help:"Number of parallel workers (overrides config)"`
	Gamble   bool   `short:"g" help:"Risk every prize on one high-low guess"`
	Seed     *int64 `help:"Seed for reproducible results (overrides config)"`
	JSON     bool   `help:"Print the report as JSON"`
}

// Run runs the simulation and prints the report
func (s *SimulateCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := simulator.Options{
		Sessions: firstPositive(s.Sessions, cfg.Simulate.Sessions),
		Rounds:   firstPositive(s.Rounds, cfg.Simulate.Rounds),
		Workers:  firstPositive(s.Workers, cfg.Simulate.Workers),
		Gamble:   s.Gamble || cfg.Simulate.Gamble,
		Seed:     cfg.Seed,
		Game:     gameOptions(cfg, s.Seed),
	}

	if s.Seed != nil {
		opts.Seed = *s.Seed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	report, err := simulator.Run(ctx, logrus.StandardLogger(), opts)
	if err != nil {
		return err
	}

	if s.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printReport(os.Stdout, report, time.Since(start))
	return nil
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}

	return 0
}

func printReport(out io.Writer, report *simulator.Report, duration time.Duration) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("hits"),
		headerStyle.Render("rate"))

	for cat := poker.SuperRoyal; cat >= poker.NoWin; cat-- {
		_, _ = fmt.Fprintf(w, "%s\t%d\t%s\n",
			categoryStyle.Render(cat.String()),
			report.Hits[cat],
			percentStyle.Render(fmt.Sprintf("%.3f%%", report.HitRate(cat)*100)))
	}

	_ = w.Flush()

	_, _ = fmt.Fprintf(out, "\n%d sessions, %d rounds, %d game overs\n", report.Sessions, report.Rounds, report.GameOvers)
	_, _ = fmt.Fprintf(out, "wagered %d, won %d, gamble net %d\n", report.Wagered, report.Won, report.GambleNet)
	if report.GamblesWon+report.GamblesLost > 0 {
		_, _ = fmt.Fprintf(out, "gambles won %d, lost %d\n", report.GamblesWon, report.GamblesLost)
	}

	_, _ = fmt.Fprintf(out, "return to player %.2f%%\n", report.RTP()*100)
	_, _ = fmt.Fprintf(out, "completed in %v\n", duration.Truncate(time.Millisecond))
}
