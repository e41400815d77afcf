package geometry

import (
	"math"

	"github.com/Houeta/field-weather-service/internal/models"
)

// Match is the outcome of a nearest station lookup.
type Match struct {
	Station    models.Station
	DistanceKm float64
}

// FindClosestStation scans stations and returns the one closest to the point.
// On equal distances the station listed first wins. Unmeasurable distances rank last. It returns false for an empty list.
func FindClosestStation(point models.Coordinates, stations []models.Station) (Match, bool) {
	var (
		best  Match
		found bool
	)

	for _, st := range stations {
		km := HaversineDistance(point.Latitude, point.Longitude, st.Latitude, st.Longitude)
		if math.IsNaN(km) {
			km = math.Inf(1)
		}
		if !found || km < best.DistanceKm {
			best = Match{Station: st, DistanceKm: km}
			found = true
		}
	}

	return best, found
}
