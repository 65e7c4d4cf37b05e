// Package indices derives spectral ratio indices from Sentinel-2 band
// composites for vegetation, built-up and water discrimination.
package indices

import (
	"fmt"

	"github.com/ivlev/urbanwatch/internal/raster"
)

// Band order expected in a downloaded Sentinel-2 composite.
const (
	Blue = iota
	Green
	Red
	NIR
	SWIR1
	SWIR2

	numInputBands
)

// Positions of the derived bands in the output stack.
const (
	NDVI = numInputBands + iota
	NDBI
	MNDWI
)

// epsilon keeps denominators away from zero on dark pixels.
const epsilon = 1e-8

// Stack appends NDVI, NDBI and MNDWI planes to a 6-band composite.
// The six input bands are carried through unchanged in their original
// positions.
func Stack(r *raster.Raster) (*raster.Raster, error) {
	if r.NumBands() != numInputBands {
		return nil, fmt.Errorf("indices: expected %d bands, got %d", numInputBands, r.NumBands())
	}

	out := raster.New(r.Profile, numInputBands+3)
	for b := 0; b < numInputBands; b++ {
		copy(out.Bands[b], r.Bands[b])
	}

	for i := 0; i < r.Size(); i++ {
		green := r.Bands[Green][i]
		red := r.Bands[Red][i]
		nir := r.Bands[NIR][i]
		swir1 := r.Bands[SWIR1][i]

		out.Bands[NDVI][i] = (nir - red) / (nir + red + epsilon)
		out.Bands[NDBI][i] = (swir1 - nir) / (swir1 + nir + epsilon)
		out.Bands[MNDWI][i] = (green - swir1) / (green + swir1 + epsilon)
	}
	return out, nil
}
