package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"

	nightscout "github.com/mrcode/nightscout-go"
	"github.com/mrcode/nightscout-go/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	serverURL := flag.String("url", "", "server URL (overrides config)")
	accessToken := flag.String("t", "", "access token (overrides config)")
	apiSecret := flag.String("s", "", "API secret (overrides config, deprecated)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// A .env file is optional; real environment variables still apply.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("load config", "error", err)
		return 1
	}
	if *serverURL != "" {
		cfg.URL = *serverURL
	}
	if *accessToken != "" {
		cfg.AccessToken = *accessToken
	}
	if *apiSecret != "" {
		cfg.APISecret = *apiSecret
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client := nightscout.NewClient(cfg.URL, cfg.AccessToken, cfg.APISecret)
	if err := report(ctx, client); err != nil {
		logger.Error("fetch", "error", err)
		return 1
	}
	return 0
}

func report(ctx context.Context, client *nightscout.Client) error {
	entries, err := client.GetSGVs(ctx, nil)
	if err != nil {
		return err
	}
	fmt.Println("SGV values in mg/dL:")
	for _, entry := range entries {
		if entry.Sgv != nil {
			fmt.Printf("  %v %s\n", *entry.Sgv, entry.TrendArrow())
		}
	}
	fmt.Println("SGV values in mmol/L:")
	for _, entry := range entries {
		if entry.SgvMmol != nil {
			fmt.Printf("  %v\n", *entry.SgvMmol)
		}
	}

	treatments, err := client.GetTreatments(ctx, nil)
	if err != nil {
		return err
	}
	fmt.Println("\nTreatments:")
	for _, treatment := range treatments {
		fmt.Printf("  %s %s\n", treatment.Time().Format(time.RFC3339), treatment.EventType)
	}

	profiles, err := client.GetProfiles(ctx, nil)
	if err != nil {
		return err
	}
	definition, err := profiles.ActiveAt(time.Now().UTC())
	if err != nil {
		return err
	}
	profile, err := definition.GetDefaultProfile()
	if err != nil {
		return err
	}
	if profile.DIA != nil {
		fmt.Printf("\nDuration of insulin action = %v\n", *profile.DIA)
	}
	fiveThirtyPM := time.Date(2017, 3, 24, 17, 30, 0, 0, profile.Timezone)
	if rate, err := profile.Basal.ValueAt(fiveThirtyPM); err == nil {
		fmt.Printf("Scheduled basal rate at 5:30pm is = %v\n", rate)
	}

	status, err := client.GetServerStatus(ctx, nil)
	if err != nil {
		return err
	}
	fmt.Printf("\nserver status: %s (version %s)\n", status.Status, status.Version)

	devices, err := client.GetLatestDevicesStatus(ctx, url.Values{"count": {"20"}})
	if err != nil {
		return err
	}
	fmt.Println("\nDevices:")
	for device, deviceStatus := range devices {
		if deviceStatus.Uploader != nil && deviceStatus.Uploader.Battery != nil {
			fmt.Printf("  %s battery: %d%%\n", device, *deviceStatus.Uploader.Battery)
		} else {
			fmt.Printf("  %s\n", device)
		}
	}
	return nil
}
