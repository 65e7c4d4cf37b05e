package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ivlev/urbanwatch/internal/indices"
	"github.com/ivlev/urbanwatch/internal/landcover"
	"github.com/ivlev/urbanwatch/internal/raster"
)

func TestClassMapUsesPalette(t *testing.T) {
	labels := raster.New(raster.Profile{Width: 3, Height: 1}, 1)
	labels.Bands[0][0] = float64(landcover.Water)
	labels.Bands[0][1] = float64(landcover.BuiltArea)
	labels.Bands[0][2] = 42 // out of domain

	img := ClassMap(labels)

	if got := img.NRGBAAt(0, 0); got != landcover.Colors[landcover.Water] {
		t.Errorf("Water pixel: expected %v, got %v", landcover.Colors[landcover.Water], got)
	}
	if got := img.NRGBAAt(1, 0); got != landcover.Colors[landcover.BuiltArea] {
		t.Errorf("Built pixel: expected %v, got %v", landcover.Colors[landcover.BuiltArea], got)
	}
	if got := img.NRGBAAt(2, 0); got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("Out-of-domain pixel should be black, got %v", got)
	}
}

func TestChangeMapColors(t *testing.T) {
	mask := raster.New(raster.Profile{Width: 2, Height: 1}, 1)
	mask.Bands[0][1] = 1

	img := ChangeMap(mask)

	if got := img.NRGBAAt(0, 0); got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("Unchanged pixel should be white, got %v", got)
	}
	if got := img.NRGBAAt(1, 0); got != changeColor {
		t.Errorf("Changed pixel: expected %v, got %v", changeColor, got)
	}
}

func TestTrueColorStretch(t *testing.T) {
	composite := raster.New(raster.Profile{Width: 10, Height: 10}, 6)
	// Red band ramps from 0 to 9900, other channels stay dark.
	for i := range composite.Bands[indices.Red] {
		composite.Bands[indices.Red][i] = float64(i * 100)
	}

	img, err := TrueColor(composite)
	if err != nil {
		t.Fatalf("TrueColor failed: %v", err)
	}

	var minR, maxR uint8 = 255, 0
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			r := img.NRGBAAt(x, y).R
			if r < minR {
				minR = r
			}
			if r > maxR {
				maxR = r
			}
		}
	}
	if minR != 0 {
		t.Errorf("Stretch should clip the low percentile to 0, got min %d", minR)
	}
	if maxR != 255 {
		t.Errorf("Stretch should clip the high percentile to 255, got max %d", maxR)
	}
}

func TestTrueColorRejectsTooFewBands(t *testing.T) {
	composite := raster.New(raster.Profile{Width: 2, Height: 2}, 2)
	if _, err := TrueColor(composite); err == nil {
		t.Fatal("Expected an error for a 2-band composite")
	}
}

func TestTrueColorConstantInput(t *testing.T) {
	composite := raster.New(raster.Profile{Width: 4, Height: 4}, 6)
	for b := 0; b < 3; b++ {
		for i := range composite.Bands[b] {
			composite.Bands[b][i] = 1200
		}
	}

	// A flat image has equal percentiles; must not divide by zero.
	if _, err := TrueColor(composite); err != nil {
		t.Fatalf("TrueColor failed on constant input: %v", err)
	}
}

func TestSaveClassMapScalesToTarget(t *testing.T) {
	labels := raster.New(raster.Profile{Width: 8, Height: 4}, 1)
	path := filepath.Join(t.TempDir(), "map_2020.png")

	if err := SaveClassMap(path, labels); err != nil {
		t.Fatalf("SaveClassMap failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig failed: %v", err)
	}
	if cfg.Width != targetLongSide || cfg.Height != targetLongSide/2 {
		t.Errorf("Expected %dx%d, got %dx%d", targetLongSide, targetLongSide/2, cfg.Width, cfg.Height)
	}
}
