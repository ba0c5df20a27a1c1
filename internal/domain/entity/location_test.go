package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocation_IsValid(t *testing.T) {
	assert.True(t, Location{Latitude: -23.55, Longitude: -46.63}.IsValid())
	assert.True(t, Location{Latitude: 90, Longitude: 180}.IsValid())
	assert.False(t, Location{Latitude: 91, Longitude: 0}.IsValid())
	assert.False(t, Location{Latitude: 0, Longitude: -181}.IsValid())
}

func TestLocation_DistanceKm(t *testing.T) {
	saoPaulo := Location{Latitude: -23.5505, Longitude: -46.6333}
	rio := Location{Latitude: -22.9068, Longitude: -43.1729}

	assert.InDelta(t, 358, saoPaulo.DistanceKm(rio), 5)
	assert.Zero(t, saoPaulo.DistanceKm(saoPaulo))
}
