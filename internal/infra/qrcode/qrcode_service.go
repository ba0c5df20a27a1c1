package qrcode

import (
	"encoding/json"
	"strings"

	"parcel/config"
	"parcel/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	labelType   = "package_label"
)

type labelService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// LabelData represents the QR code data structure
type LabelData struct {
	PackageID string `json:"package_id"`
	Type      string `json:"type"`
	TrackURL  string `json:"track_url,omitempty"`
}

// NewLabelService creates a new package label service from the qrcode config section.
func NewLabelService(cfg *config.Config) service.LabelService {
	qrCfg := &config.QRCodeConfig{}
	if cfg != nil && cfg.QRCode != nil {
		qrCfg = cfg.QRCode
	}

	return newLabelService(qrCfg.Size, qrCfg.ErrorCorrectionLevel, qrCfg.BaseURL)
}

func newLabelService(size int, errorCorrectionLevel, baseURL string) *labelService {
	if size <= 0 {
		size = defaultSize
	}

	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &labelService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GeneratePackageLabel renders the tracking label of a package as a PNG QR code
func (s *labelService) GeneratePackageLabel(packageID uuid.UUID) ([]byte, error) {
	data := LabelData{
		PackageID: packageID.String(),
		Type:      labelType,
	}
	if s.baseURL != "" {
		data.TrackURL = s.baseURL + "/package/" + packageID.String()
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal label data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParsePackageLabel parses the QR payload and returns the package ID
func (s *labelService) ParsePackageLabel(qrData string) (uuid.UUID, error) {
	var data LabelData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal label data")
	}

	if data.Type != labelType {
		return uuid.Nil, errors.Errorf("invalid label type: %s", data.Type)
	}

	packageID, err := uuid.Parse(data.PackageID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse package ID")
	}

	return packageID, nil
}
