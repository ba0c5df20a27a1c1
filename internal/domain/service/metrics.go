package service

import "parcel/internal/domain/entity"

// LifecycleMetrics records package transitions and use case outcomes.
type LifecycleMetrics interface {
	// RecordTransition counts a package entering status.
	RecordTransition(status entity.PackageStatus)

	// RecordFailure counts an operation failure, labelled by domain kind or "internal".
	RecordFailure(operation string, err error)

	// RecordNotification counts a notification dispatch outcome.
	RecordNotification(delivered bool)
}
