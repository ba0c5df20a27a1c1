package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PackageStatus is a node of the delivery state machine.
//
//	waiting -> delivered -> availablePickup -> pickup -> returned
//	              \__________________________/
//
// Pickup is also accepted straight from delivered. Soft deletion is orthogonal
// to the status and terminal.
type PackageStatus string

const (
	PackageStatusWaiting         PackageStatus = "waiting"
	PackageStatusDelivered       PackageStatus = "delivered"
	PackageStatusAvailablePickup PackageStatus = "availablePickup"
	PackageStatusPickup          PackageStatus = "pickup"
	PackageStatusReturned        PackageStatus = "returned"
)

// PackageStatuses lists every status in lifecycle order.
var PackageStatuses = []PackageStatus{
	PackageStatusWaiting,
	PackageStatusDelivered,
	PackageStatusAvailablePickup,
	PackageStatusPickup,
	PackageStatusReturned,
}

// String returns the string representation of the status.
func (s PackageStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known value.
func (s PackageStatus) IsValid() bool {
	return slices.Contains(PackageStatuses, s)
}

// FileType is an accepted attachment format.
type FileType string

const (
	FileTypePNG  FileType = "PNG"
	FileTypeJPG  FileType = "JPG"
	FileTypeJPEG FileType = "JPEG"
)

// ParseFileType normalises raw (extension or MIME subtype, any case) and reports
// whether it is an accepted attachment format.
func ParseFileType(raw string) (FileType, bool) {
	ft := FileType(strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(raw), ".")))
	switch ft {
	case FileTypePNG, FileTypeJPG, FileTypeJPEG:
		return ft, true
	default:
		return ft, false
	}
}

// Photo is the attachment trio. It is stored all-or-none.
type Photo struct {
	FileName string
	FileType FileType
	FileBody []byte
}

// Package is one shipped product instance moving through delivery.
type Package struct {
	ID                uuid.UUID
	ProductID         uuid.UUID  // Immutable after creation.
	RecipientID       uuid.UUID  // Immutable after creation.
	DeliveryPersonID  *uuid.UUID // Set by the deliver transition.
	ProductQuantity   int
	Status            PackageStatus
	Location          Location // Last known location.
	Photo             *Photo   // Latest attachment, nil until a photo transition.
	CreatedAt         time.Time
	DeliveryAt        *time.Time
	AvailablePickupAt *time.Time
	PickupAt          *time.Time
	ReturnedAt        *time.Time
	IsDeleted         bool
	DeletedAt         *time.Time
}

// HasStatus reports whether the package is in one of statuses.
func (p *Package) HasStatus(statuses ...PackageStatus) bool {
	return slices.Contains(statuses, p.Status)
}

// DeliveredBy reports whether deliveryPersonID is the assigned delivery person.
func (p *Package) DeliveredBy(deliveryPersonID uuid.UUID) bool {
	return p.DeliveryPersonID != nil && *p.DeliveryPersonID == deliveryPersonID
}

// DaysPassed returns the number of whole days elapsed between since and now.
func DaysPassed(since, now time.Time) int {
	return int(now.Sub(since) / (24 * time.Hour))
}
