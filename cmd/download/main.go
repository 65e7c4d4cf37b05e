package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/ivlev/urbanwatch/internal/config"
	"github.com/ivlev/urbanwatch/internal/earthengine"
	"github.com/ivlev/urbanwatch/internal/system"
)

func main() {
	// .env is optional; the variables may come from the environment directly.
	_ = godotenv.Load()

	configPtr := flag.String("config", "", "Path to a YAML config (optional, defaults are compiled in)")
	dataPtr := flag.String("data", "", "Override the data directory")
	flag.Parse()

	cfg := config.Default()
	if *configPtr != "" {
		var err error
		cfg, err = config.Load(*configPtr)
		if err != nil {
			log.Fatalf("[-] Config error: %v", err)
		}
	}
	if *dataPtr != "" {
		cfg.DataDir = *dataPtr
	}

	if err := system.EnsureDirs(cfg.DataDir); err != nil {
		log.Fatalf("[-] Could not create %s: %v", cfg.DataDir, err)
	}

	token := os.Getenv("EARTHENGINE_TOKEN")
	project := os.Getenv("EARTHENGINE_PROJECT")
	if project == "" {
		project = cfg.Project
	}
	if token == "" {
		log.Fatalf("[-] Not authenticated. Run `earthengine authenticate`, then export EARTHENGINE_TOKEN (or put it in .env)")
	}
	fmt.Println("[*] Earth Engine client initialized")

	client := earthengine.NewClient(cfg.BaseURL, project, token)
	region := earthengine.BufferedBounds(cfg.CenterLon, cfg.CenterLat, cfg.BufferMeters)

	fmt.Printf("\n[*] Starting download for years %d-%d\n", cfg.StartYear, cfg.EndYear)
	fmt.Printf("[*] Region: %.2fE %.2fN (%.1f km buffer)\n",
		cfg.CenterLon, cfg.CenterLat, cfg.BufferMeters/1000)
	fmt.Println("--------------------------------------------------")

	ctx := context.Background()
	for _, year := range cfg.Years() {
		fmt.Printf("\n[*] Processing year %d\n", year)

		fmt.Println("[*] Fetching Sentinel-2 composite...")
		req := earthengine.SentinelComposite(year, region, cfg.ScaleMeters, cfg.MaxCloudPercent)
		download(ctx, client, req, cfg.SentinelPath(year))

		fmt.Println("[*] Fetching Dynamic World labels...")
		req = earthengine.LandCoverLabels(year, region, cfg.ScaleMeters)
		download(ctx, client, req, cfg.LandCoverPath(year))
	}

	fmt.Println("\n==================================================")
	fmt.Printf("[+++] All downloads complete! Data saved in %s\n", cfg.DataDir)
}

// download reports a failure and lets the loop continue with the next
// dataset; an auth failure is fatal since every later request would fail
// the same way.
func download(ctx context.Context, client *earthengine.Client, req earthengine.ImageRequest, path string) {
	if err := client.FetchImage(ctx, req, path); err != nil {
		if errors.Is(err, earthengine.ErrUnauthorized) {
			log.Fatalf("[-] Authentication rejected. Refresh your token with `earthengine authenticate` and export EARTHENGINE_TOKEN")
		}
		fmt.Printf("[!] Failed to download %s: %v\n", path, err)
		return
	}
	fmt.Printf("[*] Saved to %s\n", path)
}
