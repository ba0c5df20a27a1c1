package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseFileType(t *testing.T) {
	tests := []struct {
		raw    string
		want   FileType
		wantOK bool
	}{
		{"png", FileTypePNG, true},
		{".JPG", FileTypeJPG, true},
		{" jpeg ", FileTypeJPEG, true},
		{"gif", FileType("GIF"), false},
		{"", FileType(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseFileType(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestDaysPassed(t *testing.T) {
	now := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysPassed(now.Add(-23*time.Hour), now))
	assert.Equal(t, 1, DaysPassed(now.Add(-24*time.Hour), now))
	assert.Equal(t, 30, DaysPassed(now.AddDate(0, 0, -30), now))
	assert.Equal(t, 30, DaysPassed(now.AddDate(0, 0, -31).Add(time.Minute), now))
}

func TestPackage_HasStatusAndDeliveredBy(t *testing.T) {
	deliveryPersonID := uuid.New()
	pack := &Package{Status: PackageStatusDelivered, DeliveryPersonID: &deliveryPersonID}

	assert.True(t, pack.HasStatus(PackageStatusAvailablePickup, PackageStatusDelivered))
	assert.False(t, pack.HasStatus(PackageStatusWaiting))
	assert.True(t, pack.DeliveredBy(deliveryPersonID))
	assert.False(t, pack.DeliveredBy(uuid.New()))
	assert.False(t, (&Package{}).DeliveredBy(deliveryPersonID))
}

func TestPackageStatus_IsValid(t *testing.T) {
	for _, status := range PackageStatuses {
		assert.True(t, status.IsValid(), status)
	}
	assert.False(t, PackageStatus("lost").IsValid())
}
