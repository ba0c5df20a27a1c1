package service

import (
	"github.com/google/uuid"
)

// LabelService renders and reads the QR tracking label stuck on a package.
type LabelService interface {
	// GeneratePackageLabel returns a PNG QR code encoding the package id.
	GeneratePackageLabel(packageID uuid.UUID) ([]byte, error)

	// ParsePackageLabel decodes the QR payload and returns the package id.
	ParsePackageLabel(qrData string) (uuid.UUID, error)
}
