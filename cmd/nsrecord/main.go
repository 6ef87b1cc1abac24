package main

import (
	"context"
	"flag"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron"

	nightscout "github.com/mrcode/nightscout-go"
	"github.com/mrcode/nightscout-go/internal/config"
	"github.com/mrcode/nightscout-go/internal/store"
)

const fetchCount = 50

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	schedule := flag.String("schedule", "", "cron schedule (overrides config)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("load config", "error", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		return 1
	}
	if *schedule != "" {
		cfg.RecordSchedule = *schedule
	}

	db, err := store.OpenBolt(cfg.DatabasePath)
	if err != nil {
		logger.Error("open store", "error", err)
		return 1
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("close store", "error", err)
		}
	}()

	client := nightscout.NewClient(cfg.URL, cfg.AccessToken, cfg.APISecret)

	record := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		params := url.Values{"count": {strconv.Itoa(fetchCount)}}
		readings, err := client.GetSGVs(ctx, params)
		if err != nil {
			logger.Error("fetch readings", "error", err)
			return
		}
		if err := db.Put(readings); err != nil {
			logger.Error("store readings", "error", err)
			return
		}
		logger.Info("recorded readings", "count", len(readings))
	}

	logger.Info("starting recorder",
		"schedule", cfg.RecordSchedule, "database", cfg.DatabasePath)

	c := cron.New()
	if err := c.AddFunc(cfg.RecordSchedule, record); err != nil {
		logger.Error("bad schedule", "schedule", cfg.RecordSchedule, "error", err)
		return 1
	}
	record()
	c.Start()
	defer c.Stop()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	<-ctx.Done()

	logger.Info("shutting down")
	return 0
}
