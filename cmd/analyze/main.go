package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/ivlev/urbanwatch/internal/config"
	"github.com/ivlev/urbanwatch/internal/pipeline"
	"github.com/ivlev/urbanwatch/internal/system"
)

func main() {
	system.InitResourceLimits()

	configPtr := flag.String("config", "", "Path to a YAML config (optional, defaults are compiled in)")
	dataPtr := flag.String("data", "", "Override the data directory")
	outputPtr := flag.String("output", "", "Override the output directory")
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
	if *outputPtr != "" {
		cfg.OutputDir = *outputPtr
	}

	fmt.Println("--- [URBANWATCH: ANALYSIS] ---")
	fmt.Printf("[*] Years: %d-%d | Data: %s | Output: %s\n",
		cfg.StartYear, cfg.EndYear, cfg.DataDir, cfg.OutputDir)
	system.ReportMemory()
	fmt.Println("------------------------------")

	project := pipeline.NewProject(cfg)
	if err := project.Run(); err != nil {
		log.Fatalf("[-] Analysis failed: %v", err)
	}

	fmt.Println("[+++] Analysis complete!")
}
