package entity

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// worldBound is the valid WGS84 range.
var worldBound = orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}

// Location is a WGS84 coordinate pair.
type Location struct {
	Latitude  float64
	Longitude float64
}

// Point returns the location as an orb point (longitude first).
func (l Location) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

// IsValid reports whether the coordinates lie inside the WGS84 range.
func (l Location) IsValid() bool {
	return worldBound.Contains(l.Point())
}

// DistanceKm returns the great-circle distance to other in kilometres.
func (l Location) DistanceKm(other Location) float64 {
	return geo.DistanceHaversine(l.Point(), other.Point()) / 1000
}
