package qrcode

import (
	"bytes"
	"encoding/json"
	"image/png"
	"testing"

	"parcel/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLabelService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
		want                 qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "H", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newLabelService(256, tt.errorCorrectionLevel, "")
			assert.Equal(t, tt.want, service.errorCorrectionLevel)
		})
	}
}

func TestNewLabelService_Defaults(t *testing.T) {
	service, ok := NewLabelService(&config.Config{}).(*labelService)
	require.True(t, ok)
	assert.Equal(t, defaultSize, service.size)
	assert.Equal(t, qrcode.Medium, service.errorCorrectionLevel)
}

func TestLabelService_GeneratePackageLabel(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newLabelService(tt.size, "M", "https://parcel.example.com/")

			pngBytes, err := service.GeneratePackageLabel(uuid.New())
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(pngBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.size, img.Bounds().Dx())
		})
	}
}

func TestLabelService_ParsePackageLabel(t *testing.T) {
	service := newLabelService(256, "M", "")
	packageID := uuid.New()

	jsonData, err := json.Marshal(LabelData{PackageID: packageID.String(), Type: labelType})
	require.NoError(t, err)

	parsedID, err := service.ParsePackageLabel(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, packageID, parsedID)
}

func TestLabelService_ParsePackageLabel_Errors(t *testing.T) {
	service := newLabelService(256, "M", "")

	tests := []struct {
		name    string
		payload string
		wantErr string
	}{
		{"invalid json", "invalid json", "failed to unmarshal label data"},
		{"invalid type", `{"package_id":"` + uuid.NewString() + `","type":"subscription"}`, "invalid label type"},
		{"invalid uuid", `{"package_id":"not-a-valid-uuid","type":"package_label"}`, "failed to parse package ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParsePackageLabel(tt.payload)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
