package raster

// Profile carries the georeferencing of a raster: pixel dimensions,
// the affine geotransform and the projection as WKT.
type Profile struct {
	Width        int
	Height       int
	GeoTransform [6]float64
	Projection   string
}

// Raster is an in-memory multi-band image. Bands are stored band-major,
// each as a float64 plane of Width*Height samples in row-major order.
type Raster struct {
	Profile Profile
	Bands   [][]float64
}

// New allocates a zero-filled raster with the given profile and band count.
func New(profile Profile, nBands int) *Raster {
	bands := make([][]float64, nBands)
	for i := range bands {
		bands[i] = make([]float64, profile.Width*profile.Height)
	}
	return &Raster{Profile: profile, Bands: bands}
}

func (r *Raster) NumBands() int {
	return len(r.Bands)
}

// Size returns the pixel count of a single band.
func (r *Raster) Size() int {
	return r.Profile.Width * r.Profile.Height
}

// At returns the sample of band b at (row, col).
func (r *Raster) At(b, row, col int) float64 {
	return r.Bands[b][row*r.Profile.Width+col]
}

// Set writes the sample of band b at (row, col).
func (r *Raster) Set(b, row, col int, v float64) {
	r.Bands[b][row*r.Profile.Width+col] = v
}

// SameShape reports whether two rasters cover the same pixel grid.
func (r *Raster) SameShape(other *Raster) bool {
	return r.Profile.Width == other.Profile.Width &&
		r.Profile.Height == other.Profile.Height
}
