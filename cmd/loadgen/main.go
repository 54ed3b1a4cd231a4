package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gamingleaderboard/loadgen/pkg/client"
	"github.com/gamingleaderboard/loadgen/pkg/config"
	"github.com/gamingleaderboard/loadgen/pkg/generator"
	"github.com/gamingleaderboard/loadgen/pkg/metrics"
	"github.com/gamingleaderboard/loadgen/pkg/stats"
)

const (
	modeContinuous = "continuous"
	modeLoad       = "load"
	modeHeavy      = "heavy"
)

func main() {
	mode := flag.String("mode", "", "run mode: continuous, load or heavy (empty: interactive menu)")
	duration := flag.Duration("duration", 0, "load test duration, overrides the mode preset")
	workers := flag.Int("workers", 0, "worker pool size, overrides the mode preset")
	flag.Parse()

	if err := config.SetupLogging(); err != nil {
		log.Fatalf("setup logging: %v", err)
	}
	cfg := config.New()

	metrics.Init()
	if cfg.MetricsAddr != "" {
		go func() {
			if err := http.ListenAndServe(cfg.MetricsAddr, metrics.Handler()); err != nil {
				log.Printf("metrics server: %v", err)
			}
		}()
	}

	selected := *mode
	if selected == "" {
		selected = promptMode()
	}

	var runDuration time.Duration
	var runWorkers int
	switch selected {
	case modeLoad:
		runDuration, runWorkers = 60*time.Second, 10
	case modeHeavy:
		selected = modeLoad
		runDuration, runWorkers = 300*time.Second, 20
	case modeContinuous:
	default:
		log.Printf("Unknown mode %q, running continuous simulation", selected)
		selected = modeContinuous
	}
	if *duration > 0 {
		runDuration = *duration
	}
	if *workers > 0 {
		runWorkers = *workers
	}

	// one interrupt handler for both modes: cancel the root context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rec := stats.NewRecorder()
	c := client.New(cfg.BaseURL, cfg.RequestTimeout, rec)

	fmt.Println("GAMING LEADERBOARD - TRAFFIC GENERATOR")
	fmt.Println()

	if selected == modeLoad {
		generator.NewLoadTest(cfg, c, rec, runDuration, runWorkers).Run(ctx)
		return
	}
	generator.NewSimulator(cfg, c, rec).Run(ctx)
}

// promptMode shows the interactive menu used when no -mode flag is given.
// An unrecognized choice falls back to continuous mode with a warning.
func promptMode() string {
	fmt.Println("Choose mode:")
	fmt.Println("1. Continuous simulation")
	fmt.Println("2. Load test (60 seconds, 10 workers)")
	fmt.Println("3. Heavy load test (5 minutes, 20 workers)")
	fmt.Print("\nEnter choice (1/2/3): ")

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		log.Println("No choice read, running continuous simulation")
		return modeContinuous
	}
	switch strings.TrimSpace(line) {
	case "1":
		return modeContinuous
	case "2":
		return modeLoad
	case "3":
		return modeHeavy
	default:
		log.Println("Invalid choice, running continuous simulation")
		return modeContinuous
	}
}
