// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"parcel/internal/domain/entity"
	domainerrors "parcel/internal/domain/errors"
	"parcel/internal/domain/repository"
	"parcel/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", email)
}

// FindByCPF retrieves a single user by their digits-only CPF.
func (repo *userRepository) FindByCPF(ctx context.Context, cpf string) (*entity.User, error) {
	return repo.findOne(ctx, "cpf = ?", cpf)
}

func (repo *userRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).Where(query, arg).First(&userM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// ListByAdminID lists the delivery personnel owned by adminID, oldest first.
func (repo *userRepository) ListByAdminID(ctx context.Context, adminID uuid.UUID, pagination repository.Pagination) (*repository.Page[*entity.User], error) {
	pagination = pagination.Normalize()

	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("admin_id = ?", adminID).
		Order("created_at ASC").
		Order("id ASC").
		Offset(pagination.Page).
		Limit(pagination.Limit).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users by admin")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return repository.NewPage(users, pagination), nil
}

// Create persists a new user. A collision on email or CPF returns ErrUserAlreadyExists.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrUserAlreadyExists, "email or cpf already registered")
		}
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(repository.ErrUserNotFound, "admin reference does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt

	return nil
}

// Update changes the set fields of update and returns the stored user.
func (repo *userRepository) Update(ctx context.Context, id uuid.UUID, update repository.UserUpdate) (*entity.User, error) {
	columns := map[string]any{}
	if update.Name != nil {
		columns["name"] = *update.Name
	}
	if update.Password != nil {
		columns["password"] = *update.Password
	}
	if update.Location != nil {
		columns["latitude"] = update.Location.Latitude
		columns["longitude"] = update.Location.Longitude
	}
	if len(columns) == 0 {
		return repo.FindByID(ctx, id)
	}

	var userM model.UserModel

	result := repo.db.WithContext(ctx).
		Model(&userM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrUserNotFound
	}

	return toUserDomain(&userM), nil
}

// Delete removes the user row.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func toUserDomain(data *model.UserModel) *entity.User {
	return &entity.User{
		ID:        data.ID,
		Name:      data.Name,
		CPF:       data.CPF,
		Email:     data.Email,
		Password:  data.Password,
		Role:      entity.Role(data.Role),
		Location:  entity.Location{Latitude: data.Latitude, Longitude: data.Longitude},
		AdminID:   data.AdminID,
		CreatedAt: data.CreatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:        data.ID,
		Name:      data.Name,
		CPF:       data.CPF,
		Email:     data.Email,
		Password:  data.Password,
		Role:      data.Role.String(),
		Latitude:  data.Location.Latitude,
		Longitude: data.Location.Longitude,
		AdminID:   data.AdminID,
		CreatedAt: data.CreatedAt,
	}
}
