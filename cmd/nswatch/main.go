package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	nightscout "github.com/mrcode/nightscout-go"
	"github.com/mrcode/nightscout-go/internal/alert"
	"github.com/mrcode/nightscout-go/internal/config"
	"github.com/mrcode/nightscout-go/internal/watch"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	pollSeconds := flag.Int("poll", 0, "refresh interval in seconds (optional)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nswatch: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "nswatch: %v\n", err)
		return 1
	}
	if *pollSeconds > 0 {
		cfg.RefreshSeconds = *pollSeconds
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	thresholds := alert.Thresholds{
		UrgentLow:  cfg.UrgentLow,
		TargetLow:  cfg.TargetLow,
		TargetHigh: cfg.TargetHigh,
		UrgentHigh: cfg.UrgentHigh,
	}
	alerts := alert.NewManager(thresholds,
		time.Duration(cfg.AlertRepeatMinutes)*time.Minute, cfg.UseMmol())

	opts := watch.Options{
		Fetcher:    nightscout.NewClient(cfg.URL, cfg.AccessToken, cfg.APISecret),
		Alerts:     alerts,
		Thresholds: thresholds,
		UseMmol:    cfg.UseMmol(),
		PollEvery:  time.Duration(cfg.RefreshSeconds) * time.Second,
	}
	if err := watch.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "nswatch: %v\n", err)
		return 1
	}
	return 0
}
