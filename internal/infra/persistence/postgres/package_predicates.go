package postgres

import (
	"parcel/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const earthRadiusKm = 6371

// predicate is one parameterized WHERE fragment.
type predicate struct {
	query string
	args  []any
}

// packagePredicates translates the set fields of filter, in a fixed order.
func packagePredicates(filter repository.PackageFilter) []predicate {
	var preds []predicate

	if filter.Status != nil {
		preds = append(preds, predicate{"status = ?", []any{filter.Status.String()}})
	}
	if filter.DeliveryPersonID != nil {
		preds = append(preds, predicate{"delivery_person_id = ?", []any{*filter.DeliveryPersonID}})
	}
	if filter.RecipientID != nil {
		preds = append(preds, predicate{"recipient_id = ?", []any{*filter.RecipientID}})
	}
	if filter.IsDeleted != nil {
		preds = append(preds, predicate{"is_deleted = ?", []any{*filter.IsDeleted}})
	}
	if filter.FileName != nil {
		preds = append(preds, predicate{"file_name = ?", []any{*filter.FileName}})
	}

	return preds
}

// packageOrder sorts by creation time, or by haversine distance to Near when set.
func packageOrder(filter repository.PackageFilter) clause.OrderBy {
	if filter.Near == nil {
		return clause.OrderBy{Columns: []clause.OrderByColumn{
			{Column: clause.Column{Name: "created_at"}},
			{Column: clause.Column{Name: "id"}},
		}}
	}

	lat, lng := filter.Near.Latitude, filter.Near.Longitude

	return clause.OrderBy{Expression: clause.Expr{
		SQL: "? * acos(least(1, cos(radians(?)) * cos(radians(latitude)) * cos(radians(longitude) - radians(?)) + " +
			"sin(radians(?)) * sin(radians(latitude)))) ASC, id ASC",
		Vars: []any{earthRadiusKm, lat, lng, lat},
	}}
}

func applyPredicates(db *gorm.DB, preds []predicate) *gorm.DB {
	for _, p := range preds {
		db = db.Where(p.query, p.args...)
	}

	return db
}
