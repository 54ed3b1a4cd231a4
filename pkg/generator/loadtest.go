package generator

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gamingleaderboard/loadgen/pkg/client"
	"github.com/gamingleaderboard/loadgen/pkg/config"
	"github.com/gamingleaderboard/loadgen/pkg/stats"
)

// LoadTest drives bounded-duration traffic: fixed-size batches of concurrent
// requests with a fork-join barrier between batches. Each slot in a batch
// independently draws an operation and a fresh user id. The deadline is
// checked between batches only, so the last batch may overrun it by one
// batch's worth of work.
type LoadTest struct {
	Client     *client.Client
	Recorder   *stats.Recorder
	Duration   time.Duration
	Workers    int
	PrintEvery int
	SleepMin   time.Duration
	SleepMax   time.Duration
	Out        io.Writer
}

// NewLoadTest creates a bounded-duration driver with pacing from cfg.
func NewLoadTest(cfg *config.Config, c *client.Client, rec *stats.Recorder, duration time.Duration, workers int) *LoadTest {
	return &LoadTest{
		Client:     c,
		Recorder:   rec,
		Duration:   duration,
		Workers:    workers,
		PrintEvery: cfg.PrintEvery,
		SleepMin:   cfg.BatchSleepMin,
		SleepMax:   cfg.BatchSleepMax,
		Out:        os.Stdout,
	}
}

// Run issues batches until the duration elapses or ctx is cancelled, then
// prints the totals and the statistics report.
func (lt *LoadTest) Run(ctx context.Context) {
	fmt.Fprintf(lt.Out, "Starting load test for %v with %d workers...\n", lt.Duration, lt.Workers)
	fmt.Fprintf(lt.Out, "Target API: %s\n", lt.Client.BaseURL())
	fmt.Fprintln(lt.Out, strings.Repeat("=", 60))

	start := time.Now()
	requestCount := 0

	for time.Since(start) < lt.Duration && ctx.Err() == nil {
		results := make([]string, lt.Workers)
		var wg sync.WaitGroup

		for i := 0; i < lt.Workers; i++ {
			requestCount++
			op := PickOperation()
			userID := PickUserID()
			wg.Add(1)
			go func(slot int) {
				defer wg.Done()
				results[slot] = lt.runOp(ctx, op, userID)
			}(i)
		}
		wg.Wait()

		// print every PrintEvery-th completed result, counted across batches
		for i, line := range results {
			seq := requestCount - lt.Workers + i + 1
			if lt.PrintEvery > 0 && seq%lt.PrintEvery == 0 {
				fmt.Fprintln(lt.Out, line)
			}
		}

		sleepCtx(ctx, time.Duration(randBetween(int64(lt.SleepMin), int64(lt.SleepMax))))
	}

	elapsed := time.Since(start)
	fmt.Fprintln(lt.Out, "\nLoad test completed!")
	fmt.Fprintf(lt.Out, "Total requests: %d\n", requestCount)
	fmt.Fprintf(lt.Out, "Total time: %.2f seconds\n", elapsed.Seconds())
	fmt.Fprintf(lt.Out, "Requests per second: %.2f\n", float64(requestCount)/elapsed.Seconds())

	stats.Report(lt.Out, lt.Recorder)
}

func (lt *LoadTest) runOp(ctx context.Context, op stats.Operation, userID int) string {
	switch op {
	case stats.OpSubmit:
		return lt.Client.SubmitScore(ctx, userID)
	case stats.OpTop:
		return lt.Client.TopPlayers(ctx)
	default:
		return lt.Client.UserRank(ctx, userID)
	}
}

// sleepCtx sleeps for d or until ctx is cancelled, whichever comes first.
func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
