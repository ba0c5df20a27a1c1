package impl

import (
	"context"

	"parcel/internal/domain/entity"
	domainerrors "parcel/internal/domain/errors"
	"parcel/internal/domain/repository"
	"parcel/internal/usecase"

	"github.com/pkg/errors"
)

type notificationService struct {
	guard

	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
) usecase.NotificationUsecase {
	return &notificationService{
		guard:            guard{userRepo: userRepo},
		notificationRepo: notificationRepo,
	}
}

// Fetch searches the notification log of an admin by recipient address and/or title.
func (s *notificationService) Fetch(ctx context.Context, input *usecase.FetchNotificationsInput) (*repository.Page[*entity.Notification], error) {
	if input.Email == "" && input.Title == "" {
		return nil, domainerrors.ParamsNotProvided("email or title")
	}

	admin, err := s.findAdmin(ctx, input.AdminID)
	if err != nil {
		return nil, err
	}

	filter := repository.NotificationFilter{
		AdminID:    admin.ID,
		Pagination: input.Pagination.Normalize(),
	}
	if input.Email != "" {
		filter.Email = &input.Email
	}
	if input.Title != "" {
		filter.Title = &input.Title
	}

	page, err := s.notificationRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return page, nil
}
