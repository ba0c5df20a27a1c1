package postgres

import (
	"context"

	"parcel/internal/domain/entity"
	domainerrors "parcel/internal/domain/errors"
	"parcel/internal/domain/repository"
	"parcel/internal/infra/persistence/model"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create persists a sent notification.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	if err := repo.db.WithContext(ctx).Create(fromNotificationDomain(notification)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	return nil
}

// List returns the notifications of an admin, newest first.
func (repo *notificationRepository) List(ctx context.Context, filter repository.NotificationFilter) (*repository.Page[*entity.Notification], error) {
	pagination := filter.Pagination.Normalize()

	query := repo.db.WithContext(ctx).Where("admin_id = ?", filter.AdminID)
	if filter.Email != nil {
		query = query.Where("? = ANY(emails)", *filter.Email)
	}
	if filter.Title != nil {
		query = query.Where("title = ?", *filter.Title)
	}

	var notificationModels []*model.NotificationModel

	if err := query.
		Order("created_at DESC").
		Order("id DESC").
		Offset(pagination.Page).
		Limit(pagination.Limit).
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return repository.NewPage(notifications, pagination), nil
}

func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	return &entity.Notification{
		ID:        data.ID,
		Emails:    []string(data.Emails),
		Title:     data.Title,
		Content:   data.Content,
		AdminID:   data.AdminID,
		CreatedAt: data.CreatedAt,
	}
}

func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	emails := data.Emails
	if emails == nil {
		emails = []string{}
	}

	return &model.NotificationModel{
		ID:        data.ID,
		Emails:    pq.StringArray(emails),
		Title:     data.Title,
		Content:   data.Content,
		AdminID:   data.AdminID,
		CreatedAt: data.CreatedAt,
	}
}
