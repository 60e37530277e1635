package assess

import (
	"math"

	"github.com/hamburgroadsurfer-create/LRP/core/model"
)

// Classify maps a distance to its traffic-light band. NaN means the distance
// could not be computed and yields missing-data. Both thresholds are
// inclusive upper bounds.
func (b Bands) Classify(distanceKM float64) model.Band {
	switch {
	case math.IsNaN(distanceKM):
		return model.BandMissingData
	case distanceKM <= b.GreenKM:
		return model.BandGreen
	case distanceKM <= b.YellowKM:
		return model.BandYellow
	default:
		return model.BandRed
	}
}
