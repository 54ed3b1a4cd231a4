package generator

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gamingleaderboard/loadgen/pkg/client"
	"github.com/gamingleaderboard/loadgen/pkg/config"
	"github.com/gamingleaderboard/loadgen/pkg/stats"
)

// Simulator drives one sequential user session: each iteration submits a
// score, fetches the top players, and looks up the rank for a fresh random
// user, with a think-time sleep in between. It runs until ctx is cancelled;
// the statistics report is flushed on the way out regardless of how the loop
// ends.
type Simulator struct {
	Client   *client.Client
	Recorder *stats.Recorder
	SleepMin time.Duration
	SleepMax time.Duration
	Out      io.Writer
}

// NewSimulator creates a continuous driver with think-time pacing from cfg.
func NewSimulator(cfg *config.Config, c *client.Client, rec *stats.Recorder) *Simulator {
	return &Simulator{
		Client:   c,
		Recorder: rec,
		SleepMin: cfg.SimSleepMin,
		SleepMax: cfg.SimSleepMax,
		Out:      os.Stdout,
	}
}

// Run loops until ctx is cancelled, then prints a stop notice and the
// statistics report.
func (s *Simulator) Run(ctx context.Context) {
	fmt.Fprintln(s.Out, "Starting continuous simulation...")
	fmt.Fprintf(s.Out, "Target API: %s\n", s.Client.BaseURL())
	fmt.Fprintln(s.Out, "Press Ctrl+C to stop")

	defer stats.Report(s.Out, s.Recorder)

	for iteration := 1; ; iteration++ {
		if ctx.Err() != nil {
			fmt.Fprintln(s.Out, "\nSimulation stopped")
			return
		}

		userID := PickUserID()
		fmt.Fprintf(s.Out, "\n--- Iteration %d ---\n", iteration)
		fmt.Fprintln(s.Out, s.Client.SubmitScore(ctx, userID))
		fmt.Fprintln(s.Out, s.Client.TopPlayers(ctx))
		fmt.Fprintln(s.Out, s.Client.UserRank(ctx, userID))

		sleepCtx(ctx, time.Duration(randBetween(int64(s.SleepMin), int64(s.SleepMax))))
	}
}
