package earthengine

import (
	"fmt"
	"math"
)

// Source collections for the acquisition pipeline.
const (
	SentinelCollection  = "COPERNICUS/S2_SR_HARMONIZED"
	LandCoverCollection = "GOOGLE/DYNAMICWORLD/V1"
)

// Analysis bands in the order the index calculator expects:
// Blue, Green, Red, NIR, SWIR1, SWIR2.
var sentinelBands = []string{"B2", "B3", "B4", "B8", "B11", "B12"}

// ImageRequest describes one composited export: a collection filtered to a
// region and date range, reduced across time, clipped to the region and
// rendered as a single GeoTIFF.
type ImageRequest struct {
	Collection  string       `json:"collection"`
	StartDate   string       `json:"startDate"`
	EndDate     string       `json:"endDate"`
	Bands       []string     `json:"bands"`
	Reducer     string       `json:"reducer"`
	MaxCloud    float64      `json:"maxCloudPercent,omitempty"`
	Region      [][2]float64 `json:"region"`
	ScaleMeters float64      `json:"scale"`
	Format      string       `json:"format"`
}

// SentinelComposite requests the cloud-filtered median composite of the six
// analysis bands for one calendar year.
func SentinelComposite(year int, region [][2]float64, scaleMeters, maxCloud float64) ImageRequest {
	return ImageRequest{
		Collection:  SentinelCollection,
		StartDate:   fmt.Sprintf("%d-01-01", year),
		EndDate:     fmt.Sprintf("%d-12-31", year),
		Bands:       sentinelBands,
		Reducer:     "median",
		MaxCloud:    maxCloud,
		Region:      region,
		ScaleMeters: scaleMeters,
		Format:      "GEO_TIFF",
	}
}

// LandCoverLabels requests the modal Dynamic World label raster for one
// calendar year.
func LandCoverLabels(year int, region [][2]float64, scaleMeters float64) ImageRequest {
	return ImageRequest{
		Collection:  LandCoverCollection,
		StartDate:   fmt.Sprintf("%d-01-01", year),
		EndDate:     fmt.Sprintf("%d-12-31", year),
		Bands:       []string{"label"},
		Reducer:     "mode",
		Region:      region,
		ScaleMeters: scaleMeters,
		Format:      "GEO_TIFF",
	}
}

// BufferedBounds returns the closed ring of the axis-aligned bounding box
// of a circular buffer around a point, in lon/lat degrees.
func BufferedBounds(lon, lat, bufferMeters float64) [][2]float64 {
	const metersPerDegree = 111320.0
	dLat := bufferMeters / metersPerDegree
	dLon := bufferMeters / (metersPerDegree * math.Cos(lat*math.Pi/180))

	return [][2]float64{
		{lon - dLon, lat - dLat},
		{lon + dLon, lat - dLat},
		{lon + dLon, lat + dLat},
		{lon - dLon, lat + dLat},
		{lon - dLon, lat - dLat},
	}
}
