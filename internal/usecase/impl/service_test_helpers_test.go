package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"parcel/config"
	"parcel/internal/domain/entity"
	"parcel/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(returnPeriodDays int) *config.Config {
	return &config.Config{
		Delivery: &config.DeliveryConfig{
			ReturnPeriodDays: returnPeriodDays,
		},
	}
}

func newTestMetrics() (*metrics.Metrics, *prometheus.Registry) {
	registry := prometheus.NewRegistry()

	return metrics.NewWithRegistry(registry), registry
}

// countSeries returns the number of label sets gathered for metric.
func countSeries(t *testing.T, registry *prometheus.Registry, metric string) int {
	t.Helper()

	count, err := testutil.GatherAndCount(registry, metric)
	require.NoError(t, err)

	return count
}

func newAdmin() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Name:     "Admin",
		CPF:      "52998224725",
		Email:    "admin@example.com",
		Role:     entity.RoleAdmin,
		Location: entity.Location{Latitude: -23.55, Longitude: -46.63},
	}
}

func newDeliveryman(adminID uuid.UUID) *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Name:     "Carlos",
		CPF:      "11144477735",
		Email:    "carlos@example.com",
		Role:     entity.RoleDeliveryman,
		Location: entity.Location{Latitude: -22.90, Longitude: -43.20},
		AdminID:  &adminID,
	}
}

func newRecipient() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Name:     "Maria",
		CPF:      "39053344705",
		Email:    "maria@example.com",
		Role:     entity.RoleRecipient,
		Location: entity.Location{Latitude: -15.79, Longitude: -47.88},
	}
}

func newPackage(recipientID uuid.UUID, status entity.PackageStatus) *entity.Package {
	return &entity.Package{
		ID:              uuid.New(),
		ProductID:       uuid.New(),
		RecipientID:     recipientID,
		ProductQuantity: 1,
		Status:          status,
		CreatedAt:       time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}
