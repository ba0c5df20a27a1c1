package usecase

import (
	"context"

	"parcel/internal/domain/entity"
	"parcel/internal/domain/repository"

	"github.com/google/uuid"
)

// FetchNotificationsInput searches an admin's notification log. Email or Title is required.
type FetchNotificationsInput struct {
	AdminID    *uuid.UUID
	Email      string
	Title      string
	Pagination repository.Pagination
}

// NotificationUsecase defines the interface for notification history use cases
type NotificationUsecase interface {
	Fetch(ctx context.Context, input *FetchNotificationsInput) (*repository.Page[*entity.Notification], error)
}
