package geometry_test

import (
	"math"

	"github.com/paulmach/orb"
)

const metersPerDegreeLat = 111195.0

// squareRing builds a closed square of the given side in meters with its south-west corner at (lon, lat).
func squareRing(lon, lat, sideMeters float64) orb.Ring {
	dLat := sideMeters / metersPerDegreeLat
	dLon := sideMeters / (metersPerDegreeLat * math.Cos(lat*math.Pi/180))

	return orb.Ring{
		{lon, lat},
		{lon + dLon, lat},
		{lon + dLon, lat + dLat},
		{lon, lat + dLat},
		{lon, lat},
	}
}
