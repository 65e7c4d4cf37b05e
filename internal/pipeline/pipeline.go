// Package pipeline orchestrates the multi-year analysis: per-year urban
// statistics and visualizations, change detection over the first and last
// processed years, and the text report.
package pipeline

import (
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/urbanwatch/internal/analysis"
	"github.com/ivlev/urbanwatch/internal/config"
	"github.com/ivlev/urbanwatch/internal/indices"
	"github.com/ivlev/urbanwatch/internal/raster"
	"github.com/ivlev/urbanwatch/internal/render"
	"github.com/ivlev/urbanwatch/internal/report"
)

type Project struct {
	Config *config.Config
}

func NewProject(cfg *config.Config) *Project {
	return &Project{Config: cfg}
}

// Run processes every configured year in order. Years without a label
// raster are skipped; any error past that point aborts the run.
func (p *Project) Run() error {
	cfg := p.Config
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return err
	}

	var stats []analysis.YearStat

	for _, year := range cfg.Years() {
		lcPath := cfg.LandCoverPath(year)
		if !fileExists(lcPath) {
			fmt.Printf("[!] Skipping year %d: data not found\n", year)
			continue
		}
		fmt.Printf("[*] Processing year %d...\n", year)

		labels, err := raster.Read(lcPath)
		if err != nil {
			return err
		}

		pct := analysis.UrbanPercent(labels)
		stats = append(stats, analysis.YearStat{Year: year, UrbanPercent: pct})
		fmt.Printf("    -> Urban coverage: %.2f%%\n", pct)

		var composite *raster.Raster
		if s2Path := cfg.SentinelPath(year); fileExists(s2Path) {
			if composite, err = raster.Read(s2Path); err != nil {
				return err
			}
		}

		// The year's artifacts are independent of each other; write them
		// in parallel and join before the next year starts.
		var g errgroup.Group
		g.Go(func() error {
			return render.SaveClassMap(cfg.MapPath(year), labels)
		})
		g.Go(func() error {
			return raster.WriteUint8(cfg.ClassificationPath(year), labels)
		})
		if composite != nil {
			g.Go(func() error {
				return render.SaveTrueColor(cfg.SatellitePath(year), composite)
			})
			g.Go(func() error {
				features, err := indices.Stack(composite)
				if err != nil {
					return err
				}
				return raster.WriteFloat32(cfg.FeaturesPath(year), features)
			})
		}
		if err := g.Wait(); err != nil {
			return fmt.Errorf("year %d artifacts: %w", year, err)
		}
	}

	if len(stats) >= 2 {
		fmt.Println("[*] Generating change map...")
		if err := p.changeMap(stats); err != nil {
			return err
		}
		fmt.Printf("[*] Change map saved to %s\n", cfg.ChangeMapPath())
	}

	fmt.Println("[*] Generating report...")
	if err := report.Write(cfg.ReportPath(), stats); err != nil {
		return err
	}
	fmt.Printf("[+] Report saved to %s\n", cfg.ReportPath())
	return nil
}

// changeMap diffs the persisted classification rasters of the first and
// last processed years into the urban expansion map.
func (p *Project) changeMap(stats []analysis.YearStat) error {
	cfg := p.Config

	start, err := raster.Read(cfg.ClassificationPath(stats[0].Year))
	if err != nil {
		return err
	}
	end, err := raster.Read(cfg.ClassificationPath(stats[len(stats)-1].Year))
	if err != nil {
		return err
	}

	mask, err := analysis.NewUrbanMask(start, end)
	if err != nil {
		return err
	}
	return render.SaveChangeMap(cfg.ChangeMapPath(), mask)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
