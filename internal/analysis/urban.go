// Package analysis computes per-year urban coverage statistics and the
// multi-year change mask from land-cover label rasters.
package analysis

import (
	"github.com/ivlev/urbanwatch/internal/landcover"
	"github.com/ivlev/urbanwatch/internal/raster"
)

// YearStat is the urban share of one processed year.
type YearStat struct {
	Year         int
	UrbanPercent float64
}

// UrbanPercent returns the share of label pixels classified as Built Area,
// in percent of the total pixel count.
func UrbanPercent(labels *raster.Raster) float64 {
	plane := labels.Bands[0]
	urban := 0
	for _, v := range plane {
		if int(v) == landcover.BuiltArea {
			urban++
		}
	}
	return float64(urban) / float64(len(plane)) * 100
}

// Growth returns the last urban percentage minus the first.
func Growth(stats []YearStat) float64 {
	return stats[len(stats)-1].UrbanPercent - stats[0].UrbanPercent
}
