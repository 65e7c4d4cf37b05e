// Package render turns rasters into PNG artifacts: classification maps,
// true-color composites and the urban change map.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"sort"

	xdraw "golang.org/x/image/draw"
	"gonum.org/v1/gonum/stat"

	"github.com/ivlev/urbanwatch/internal/indices"
	"github.com/ivlev/urbanwatch/internal/landcover"
	"github.com/ivlev/urbanwatch/internal/raster"
)

// Output PNGs are scaled so their long side matches this.
const targetLongSide = 1024

// Contrast stretch percentiles for true-color composites.
const (
	stretchLow  = 0.02
	stretchHigh = 0.98
)

var changeColor = color.NRGBA{R: 178, G: 24, B: 43, A: 255} // new urban area

// ClassMap paints a label raster with the land-cover palette. Values
// outside the class domain come out black.
func ClassMap(labels *raster.Raster) *image.NRGBA {
	w, h := labels.Profile.Width, labels.Profile.Height
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i, v := range labels.Bands[0] {
		c := color.NRGBA{A: 255}
		if code := int(v); code >= 0 && code < landcover.NumClasses {
			c = landcover.Colors[code]
		}
		img.SetNRGBA(i%w, i/w, c)
	}
	return img
}

// TrueColor builds an RGB composite from the Red, Green and Blue bands of
// a Sentinel-2 stack, contrast-stretched between the 2nd and 98th
// percentile of the three displayed bands.
func TrueColor(composite *raster.Raster) (*image.NRGBA, error) {
	if composite.NumBands() < 3 {
		return nil, fmt.Errorf("render: true color needs at least 3 bands, got %d", composite.NumBands())
	}

	channels := [3][]float64{
		composite.Bands[indices.Red],
		composite.Bands[indices.Green],
		composite.Bands[indices.Blue],
	}

	vals := make([]float64, 0, 3*composite.Size())
	for _, ch := range channels {
		vals = append(vals, ch...)
	}
	sort.Float64s(vals)
	lo := stat.Quantile(stretchLow, stat.Empirical, vals, nil)
	hi := stat.Quantile(stretchHigh, stat.Empirical, vals, nil)
	if hi <= lo {
		hi = lo + 1
	}

	w, h := composite.Profile.Width, composite.Profile.Height
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < composite.Size(); i++ {
		img.SetNRGBA(i%w, i/w, color.NRGBA{
			R: stretch(channels[0][i], lo, hi),
			G: stretch(channels[1][i], lo, hi),
			B: stretch(channels[2][i], lo, hi),
			A: 255,
		})
	}
	return img, nil
}

// ChangeMap paints a binary change mask: white background, red where a
// pixel turned urban.
func ChangeMap(mask *raster.Raster) *image.NRGBA {
	w, h := mask.Profile.Width, mask.Profile.Height
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i, v := range mask.Bands[0] {
		c := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
		if v != 0 {
			c = changeColor
		}
		img.SetNRGBA(i%w, i/w, c)
	}
	return img
}

// SaveClassMap writes the classification map PNG for a label raster.
// Class maps are scaled with nearest-neighbor so labels never blend.
func SaveClassMap(path string, labels *raster.Raster) error {
	return savePNG(path, scaleTo(ClassMap(labels), xdraw.NearestNeighbor))
}

// SaveTrueColor writes the satellite reference PNG for a band composite.
func SaveTrueColor(path string, composite *raster.Raster) error {
	img, err := TrueColor(composite)
	if err != nil {
		return err
	}
	return savePNG(path, scaleTo(img, xdraw.ApproxBiLinear))
}

// SaveChangeMap writes the urban expansion PNG for a binary change mask.
func SaveChangeMap(path string, mask *raster.Raster) error {
	return savePNG(path, scaleTo(ChangeMap(mask), xdraw.NearestNeighbor))
}

func stretch(v, lo, hi float64) uint8 {
	s := (v - lo) / (hi - lo)
	if s < 0 {
		s = 0
	} else if s > 1 {
		s = 1
	}
	return uint8(math.Round(s * 255))
}

func scaleTo(src image.Image, interp xdraw.Interpolator) image.Image {
	b := src.Bounds()
	long := b.Dx()
	if b.Dy() > long {
		long = b.Dy()
	}
	if long == targetLongSide {
		return src
	}

	f := float64(targetLongSide) / float64(long)
	dw := int(math.Round(float64(b.Dx()) * f))
	dh := int(math.Round(float64(b.Dy()) * f))
	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	interp.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
