package simulator

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"softypoker/internal/rng"
	"softypoker/internal/util"
	"softypoker/pkg/playable/videopoker"
)

// Options controls a simulation run
type Options struct {
	Sessions int
	// Rounds is the most rounds a session plays before it stops
	Rounds  int
	Workers int
	// Gamble makes the player risk every prize on a single high-low guess
	Gamble bool
	// Seed makes the run reproducible. 0 uses crypto/rand.
	Seed int64
	Game videopoker.Options
}

// Run plays the sessions across the workers and returns the combined report
// Every session is independent and single-threaded, with its own decks and generator.
func Run(ctx context.Context, logger logrus.FieldLogger, opts Options) (*Report, error) {
	if opts.Sessions <= 0 {
		return nil, errors.New("sessions must be > 0")
	}

	if opts.Rounds <= 0 {
		return nil, errors.New("rounds must be > 0")
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	if workers > opts.Sessions {
		workers = opts.Sessions
	}

	logger.WithFields(logrus.Fields{
		"sessions": opts.Sessions,
		"rounds":   opts.Rounds,
		"workers":  workers,
		"gamble":   opts.Gamble,
	}).Info("starting simulation")

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan int)
	results := make(chan *Report, workers)

	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < opts.Sessions; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}

			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range jobs {
				report, err := playSession(logger, opts, i)
				if err != nil {
					return err
				}

				select {
				case results <- report:
				case <-ctx.Done():
					return ctx.Err()
				}
			}

			return nil
		})
	}

	go func() {
		defer close(results)
		_ = g.Wait()
	}()

	total := newReport()
	for report := range results {
		total.merge(report)
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"rounds":  total.Rounds,
		"wagered": total.Wagered,
		"rtp":     total.RTP(),
	}).Info("simulation complete")

	return total, nil
}

func generatorFor(seed int64, session int) rng.Generator {
	if seed == 0 {
		return rng.Crypto{}
	}

	return rng.NewSeeded(seed + int64(session))
}

// playSession plays one session until it runs out of rounds or credits
func playSession(logger logrus.FieldLogger, opts Options, index int) (*Report, error) {
	game := opts.Game
	game.Generator = generatorFor(opts.Seed, index)

	s, err := videopoker.NewSession(logger.WithField("player", util.RandomName(game.Generator)), game)
	if err != nil {
		return nil, err
	}

	report := newReport()
	report.Sessions = 1
	report.StartingCredits = s.Credits()

	if !s.Start() {
		return nil, fmt.Errorf("session %d could not start", index)
	}

	premium := s.Paytable().PremiumSuit()
	for round := 0; round < opts.Rounds && s.Phase() != videopoker.PhaseGameOver; round++ {
		target := game.MaxBet
		if s.Credits() < target {
			target = s.Credits()
		}

		for s.Bet() != target {
			s.IncreaseBet()
		}

		bet := s.Bet()
		if !s.Deal() {
			return nil, fmt.Errorf("session %d could not deal: %v", index, s.LastRejection())
		}

		for _, position := range ChooseHolds(s.Hand(), premium) {
			s.ToggleHold(position)
		}

		s.Redraw()
		s.Collect()

		state := s.Snapshot()
		report.Rounds++
		report.Wagered += bet
		report.Won += state.Prize
		report.Hits[state.Category]++

		if opts.Gamble && s.CanPerform(videopoker.ActionGamble) {
			gamble(s, report)
		}
	}

	if s.Phase() == videopoker.PhaseGameOver {
		report.GameOvers++
	}

	report.FinalCredits = s.Credits()
	return report, nil
}

// gamble risks the prize on one guess and cashes out if it was right
func gamble(s *videopoker.Session, report *Report) {
	before := s.Credits()

	s.Gamble()
	s.Guess(GuessHigher(s.Snapshot().GambleCard))

	if s.Phase() == videopoker.PhaseGambling {
		s.CashOut()
		report.GamblesWon++
	} else {
		report.GamblesLost++
	}

	report.GambleNet += s.Credits() - before
}
