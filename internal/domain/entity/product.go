package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item with a fixed pickup location.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Location    Location // Where new packages of this product start.
	CreatedAt   time.Time
}
