// Package geometry holds the numeric core of the service: polygon centroids, areas,
// great-circle distances and the nearest station lookup.
package geometry

import (
	"errors"
	"math"

	"github.com/Houeta/field-weather-service/internal/models"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
	"github.com/umahmood/haversine"
)

// SquareMetersPerAcre is the international acre.
const SquareMetersPerAcre = 4046.8564224

// earthRadiusKm matches the mean radius used by the haversine package.
const earthRadiusKm = 6371

// minRelativeArea is the smallest ring area, relative to its bounding box, still treated as a polygon.
const minRelativeArea = 1e-12

// ErrDegeneratePolygon is returned when a ring encloses no area and has no meaningful centroid.
var ErrDegeneratePolygon = errors.New("polygon is degenerate")

// CentroidOfRing returns the area-weighted centroid of a ring of [lon, lat] positions.
// The closing position may be present or not. Rings with fewer than three positions,
// non-finite positions or (almost) zero area yield ErrDegeneratePolygon.
func CentroidOfRing(ring orb.Ring) (models.Coordinates, error) {
	const minPositions = 3
	if len(ring) < minPositions {
		return models.Coordinates{}, ErrDegeneratePolygon
	}

	for _, p := range ring {
		if !isFinite(p[0]) || !isFinite(p[1]) {
			return models.Coordinates{}, ErrDegeneratePolygon
		}
	}

	bound := ring.Bound()
	boxArea := (bound.Right() - bound.Left()) * (bound.Top() - bound.Bottom())
	if boxArea == 0 {
		return models.Coordinates{}, ErrDegeneratePolygon
	}

	// Work relative to the first position so that rounding does not give collinear rings an area.
	origin := ring[0]
	shifted := make(orb.Ring, len(ring))
	for i, p := range ring {
		shifted[i] = orb.Point{p[0] - origin[0], p[1] - origin[1]}
	}

	centroid, area := planar.CentroidArea(shifted)
	if math.Abs(area) <= minRelativeArea*boxArea || !isFinite(centroid[0]) || !isFinite(centroid[1]) {
		return models.Coordinates{}, ErrDegeneratePolygon
	}

	return models.Coordinates{Latitude: centroid.Lat() + origin[1], Longitude: centroid.Lon() + origin[0]}, nil
}

// HaversineDistance returns the great-circle distance in kilometers between two points given in degrees.
// The result never exceeds half the Earth's circumference.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: lat1, Lon: lon1},
		haversine.Coord{Lat: lat2, Lon: lon2},
	)

	// Rounding near the antipode can push the haversine term past 1, which yields NaN.
	if math.IsNaN(km) && isFinite(lat1) && isFinite(lon1) && isFinite(lat2) && isFinite(lon2) {
		return math.Pi * earthRadiusKm
	}

	return math.Min(km, math.Pi*earthRadiusKm)
}

// AreaAcres returns the geodesic area of a polygon in acres.
func AreaAcres(polygon orb.Polygon) float64 {
	return math.Abs(geo.Area(polygon)) / SquareMetersPerAcre
}

// RingsMatch reports whether two rings list the same positions in the same order,
// allowing each coordinate to drift by at most tolerance degrees.
func RingsMatch(a, b orb.Ring, tolerance float64) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if math.Abs(a[i][0]-b[i][0]) > tolerance || math.Abs(a[i][1]-b[i][1]) > tolerance {
			return false
		}
	}

	return true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
