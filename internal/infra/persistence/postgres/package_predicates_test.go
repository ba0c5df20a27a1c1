package postgres

import (
	"testing"

	"parcel/internal/domain/entity"
	"parcel/internal/domain/repository"
	"parcel/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestPackagePredicates(t *testing.T) {
	status := entity.PackageStatusDelivered
	deliveryPersonID := uuid.New()
	recipientID := uuid.New()
	notDeleted := false
	fileName := "proof.png"

	tests := []struct {
		name   string
		filter repository.PackageFilter
		want   []predicate
	}{
		{
			name:   "empty filter",
			filter: repository.PackageFilter{},
			want:   nil,
		},
		{
			name:   "file name lookup",
			filter: repository.PackageFilter{FileName: &fileName, IsDeleted: &notDeleted},
			want: []predicate{
				{"is_deleted = ?", []any{false}},
				{"file_name = ?", []any{"proof.png"}},
			},
		},
		{
			name: "every field in fixed order",
			filter: repository.PackageFilter{
				Status:           &status,
				DeliveryPersonID: &deliveryPersonID,
				RecipientID:      &recipientID,
				IsDeleted:        &notDeleted,
				FileName:         &fileName,
			},
			want: []predicate{
				{"status = ?", []any{"delivered"}},
				{"delivery_person_id = ?", []any{deliveryPersonID}},
				{"recipient_id = ?", []any{recipientID}},
				{"is_deleted = ?", []any{false}},
				{"file_name = ?", []any{"proof.png"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, packagePredicates(tt.filter))
		})
	}
}

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{
		DSN: "host=localhost user=parcel dbname=parcel sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)

	return db
}

func buildListSQL(t *testing.T, filter repository.PackageFilter) (string, []any) {
	t.Helper()

	pagination := filter.Pagination.Normalize()

	var packageModels []*model.PackageModel
	stmt := applyPredicates(newDryRunDB(t).Model(&model.PackageModel{}), packagePredicates(filter)).
		Clauses(packageOrder(filter)).
		Offset(pagination.Page).
		Limit(pagination.Limit).
		Find(&packageModels).Statement

	return stmt.SQL.String(), stmt.Vars
}

func TestPackageListSQL_CreatedAtOrder(t *testing.T) {
	recipientID := uuid.New()

	sql, vars := buildListSQL(t, repository.PackageFilter{
		RecipientID: &recipientID,
		Pagination:  repository.Pagination{Page: 20, Limit: 10},
	})

	assert.Contains(t, sql, `FROM "packages" WHERE recipient_id = $1`)
	assert.Contains(t, sql, `ORDER BY "created_at","id"`)
	assert.Contains(t, sql, "LIMIT $2 OFFSET $3")
	require.Len(t, vars, 3)
	assert.Equal(t, recipientID, vars[0])
}

func TestPackageListSQL_NearOrdersByDistance(t *testing.T) {
	deliveryPersonID := uuid.New()

	sql, vars := buildListSQL(t, repository.PackageFilter{
		DeliveryPersonID: &deliveryPersonID,
		Near:             &entity.Location{Latitude: -23.5505, Longitude: -46.6333},
	})

	assert.Contains(t, sql, "WHERE delivery_person_id = $1")
	assert.Contains(t, sql, "ORDER BY $2 * acos(least(1, cos(radians($3))")
	assert.NotContains(t, sql, `"created_at"`)
	require.Len(t, vars, 6)
	assert.Equal(t, []any{deliveryPersonID, earthRadiusKm, -23.5505, -46.6333, -23.5505}, vars[:5])
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_now`, escapeLike("50% off_now"))
	assert.Equal(t, `back\\slash`, escapeLike(`back\slash`))
}
