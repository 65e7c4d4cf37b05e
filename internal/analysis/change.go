package analysis

import (
	"fmt"

	"github.com/ivlev/urbanwatch/internal/landcover"
	"github.com/ivlev/urbanwatch/internal/raster"
)

// NewUrbanMask compares two label rasters of identical shape and returns a
// binary mask that is 1 exactly where a pixel was not built up at the start
// but is at the end. The mask inherits the start raster's georeferencing.
func NewUrbanMask(start, end *raster.Raster) (*raster.Raster, error) {
	if !start.SameShape(end) {
		return nil, fmt.Errorf("change: shape mismatch: %dx%d vs %dx%d",
			start.Profile.Width, start.Profile.Height,
			end.Profile.Width, end.Profile.Height)
	}

	mask := raster.New(start.Profile, 1)
	for i := range start.Bands[0] {
		if int(start.Bands[0][i]) != landcover.BuiltArea &&
			int(end.Bands[0][i]) == landcover.BuiltArea {
			mask.Bands[0][i] = 1
		}
	}
	return mask, nil
}
