package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the pipeline parameters shared by both CLIs. The compiled-in
// defaults describe the Bangalore study region.
type Config struct {
	StartYear int `yaml:"start_year"`
	EndYear   int `yaml:"end_year"`

	CenterLon    float64 `yaml:"center_lon"`
	CenterLat    float64 `yaml:"center_lat"`
	BufferMeters float64 `yaml:"buffer_meters"`

	MaxCloudPercent float64 `yaml:"max_cloud_percent"`
	ScaleMeters     float64 `yaml:"scale_meters"`

	DataDir   string `yaml:"data_dir"`
	OutputDir string `yaml:"output_dir"`

	BaseURL string `yaml:"base_url"`
	Project string `yaml:"project"`
}

func Default() *Config {
	return &Config{
		StartYear:       2018,
		EndYear:         2025,
		CenterLon:       77.64,
		CenterLat:       13.05,
		BufferMeters:    7500,
		MaxCloudPercent: 10,
		ScaleMeters:     10,
		DataDir:         "data",
		OutputDir:       "results",
		BaseURL:         "https://earthengine.googleapis.com",
	}
}

// Load reads a YAML override file on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Years lists the configured year range, inclusive.
func (c *Config) Years() []int {
	var years []int
	for y := c.StartYear; y <= c.EndYear; y++ {
		years = append(years, y)
	}
	return years
}

// Raw raster layout under DataDir.

func (c *Config) SentinelPath(year int) string {
	return filepath.Join(c.DataDir, fmt.Sprintf("Sentinel2_%d.tif", year))
}

func (c *Config) LandCoverPath(year int) string {
	return filepath.Join(c.DataDir, fmt.Sprintf("LandCover_%d.tif", year))
}

// Derived artifact layout under OutputDir.

func (c *Config) MapPath(year int) string {
	return filepath.Join(c.OutputDir, fmt.Sprintf("map_%d.png", year))
}

func (c *Config) SatellitePath(year int) string {
	return filepath.Join(c.OutputDir, fmt.Sprintf("satellite_%d.png", year))
}

func (c *Config) ClassificationPath(year int) string {
	return filepath.Join(c.OutputDir, fmt.Sprintf("classification_%d.tif", year))
}

func (c *Config) FeaturesPath(year int) string {
	return filepath.Join(c.OutputDir, fmt.Sprintf("features_%d.tif", year))
}

func (c *Config) ChangeMapPath() string {
	return filepath.Join(c.OutputDir, "change_map.png")
}

func (c *Config) ReportPath() string {
	return filepath.Join(c.OutputDir, "analysis_report.txt")
}
