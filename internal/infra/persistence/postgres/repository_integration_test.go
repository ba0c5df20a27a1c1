//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"parcel/internal/domain/entity"
	"parcel/internal/domain/repository"
	"parcel/internal/infra/persistence/postgres"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// RepositoryIntegrationTestSuite runs the repositories against a disposable PostgreSQL container.
type RepositoryIntegrationTestSuite struct {
	suite.Suite

	container        *tcpostgres.PostgresContainer
	db               *gorm.DB
	packageRepo      repository.PackageRepository
	userRepo         repository.UserRepository
	productRepo      repository.ProductRepository
	notificationRepo repository.NotificationRepository
}

func TestRepositoryIntegration(t *testing.T) {
	suite.Run(t, new(RepositoryIntegrationTestSuite))
}

func (s *RepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("parcel"),
		tcpostgres.WithUsername("parcel"),
		tcpostgres.WithPassword("parcel"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	s.Require().NoError(err)
	s.db = db

	s.Require().NoError(postgres.Migrate(ctx, db))

	s.packageRepo = postgres.NewPackageRepository(db)
	s.userRepo = postgres.NewUserRepository(db)
	s.productRepo = postgres.NewProductRepository(db)
	s.notificationRepo = postgres.NewNotificationRepository(db)
}

func (s *RepositoryIntegrationTestSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *RepositoryIntegrationTestSuite) SetupTest() {
	s.Require().NoError(s.db.Exec("TRUNCATE packages, products, notifications, users").Error)
}

func (s *RepositoryIntegrationTestSuite) newUser(role entity.Role, cpf, email string, adminID *uuid.UUID) *entity.User {
	user := &entity.User{
		ID:        uuid.New(),
		Name:      email,
		CPF:       cpf,
		Email:     email,
		Password:  "hash",
		Role:      role,
		Location:  entity.Location{Latitude: -23.55, Longitude: -46.63},
		AdminID:   adminID,
		CreatedAt: time.Now(),
	}
	s.Require().NoError(s.userRepo.Create(context.Background(), user))

	return user
}

func (s *RepositoryIntegrationTestSuite) newPackage(recipientID uuid.UUID, location entity.Location, createdAt time.Time) *entity.Package {
	pack := &entity.Package{
		ID:              uuid.New(),
		ProductID:       uuid.New(),
		RecipientID:     recipientID,
		ProductQuantity: 1,
		Status:          entity.PackageStatusWaiting,
		Location:        location,
		CreatedAt:       createdAt,
	}
	s.Require().NoError(s.packageRepo.Create(context.Background(), pack))

	return pack
}

func (s *RepositoryIntegrationTestSuite) TestPackageLifecycle() {
	ctx := context.Background()
	recipientID := uuid.New()
	deliveryPersonID := uuid.New()
	pack := s.newPackage(recipientID, entity.Location{Latitude: 1, Longitude: 1}, time.Now())

	delivered, err := s.packageRepo.ChangeStatusToDelivered(ctx, pack.ID, deliveryPersonID, entity.Location{Latitude: 2, Longitude: 2})
	s.Require().NoError(err)
	s.Equal(entity.PackageStatusDelivered, delivered.Status)
	s.True(delivered.DeliveredBy(deliveryPersonID))
	s.NotNil(delivered.DeliveryAt)
	s.Equal(2.0, delivered.Location.Latitude)

	photo := entity.Photo{FileName: "shelf.png", FileType: entity.FileTypePNG, FileBody: []byte{0x89, 'P', 'N', 'G'}}
	available, err := s.packageRepo.ChangeStatusToAvailablePickup(ctx, pack.ID, photo, entity.Location{Latitude: 3, Longitude: 3})
	s.Require().NoError(err)
	s.Equal(entity.PackageStatusAvailablePickup, available.Status)
	s.Require().NotNil(available.Photo)
	s.Equal(photo, *available.Photo)

	picked, err := s.packageRepo.ChangeStatusToPickup(ctx, pack.ID, entity.Photo{FileName: "door.jpg", FileType: entity.FileTypeJPG}, entity.Location{Latitude: 4, Longitude: 4})
	s.Require().NoError(err)
	s.NotNil(picked.PickupAt)

	returned, err := s.packageRepo.ChangeStatusToReturned(ctx, pack.ID, entity.Photo{FileName: "back.jpeg", FileType: entity.FileTypeJPEG}, entity.Location{Latitude: 5, Longitude: 5})
	s.Require().NoError(err)
	s.Equal(entity.PackageStatusReturned, returned.Status)
	s.NotNil(returned.ReturnedAt)
	s.Equal("back.jpeg", returned.Photo.FileName)
}

func (s *RepositoryIntegrationTestSuite) TestPackageSoftDeleteGuardsUpdates() {
	ctx := context.Background()
	pack := s.newPackage(uuid.New(), entity.Location{}, time.Now())

	deleted, err := s.packageRepo.Delete(ctx, pack.ID)
	s.Require().NoError(err)
	s.True(deleted.IsDeleted)
	s.NotNil(deleted.DeletedAt)

	_, err = s.packageRepo.ChangeStatusToDelivered(ctx, pack.ID, uuid.New(), entity.Location{})
	s.True(errors.Is(err, repository.ErrPackageNotFound))

	_, err = s.packageRepo.Delete(ctx, pack.ID)
	s.True(errors.Is(err, repository.ErrPackageNotFound))

	found, err := s.packageRepo.FindByID(ctx, pack.ID)
	s.Require().NoError(err)
	s.True(found.IsDeleted)
	s.Equal(entity.PackageStatusWaiting, found.Status)
}

func (s *RepositoryIntegrationTestSuite) TestPackageListFilters() {
	ctx := context.Background()
	recipientID := uuid.New()
	base := time.Now().Add(-time.Hour)

	first := s.newPackage(recipientID, entity.Location{Latitude: 10, Longitude: 10}, base)
	second := s.newPackage(recipientID, entity.Location{Latitude: 0.1, Longitude: 0.1}, base.Add(time.Minute))
	s.newPackage(uuid.New(), entity.Location{}, base.Add(2*time.Minute))

	page, err := s.packageRepo.List(ctx, repository.PackageFilter{RecipientID: &recipientID})
	s.Require().NoError(err)
	s.Require().Len(page.Entities, 2)
	s.Equal(first.ID, page.Entities[0].ID)
	s.Equal(second.ID, page.Entities[1].ID)
	s.Equal(2, page.NextPage)

	near, err := s.packageRepo.List(ctx, repository.PackageFilter{
		RecipientID: &recipientID,
		Near:        &entity.Location{Latitude: 0, Longitude: 0},
	})
	s.Require().NoError(err)
	s.Require().Len(near.Entities, 2)
	s.Equal(second.ID, near.Entities[0].ID)

	offset, err := s.packageRepo.List(ctx, repository.PackageFilter{
		RecipientID: &recipientID,
		Pagination:  repository.Pagination{Page: 1, Limit: 10},
	})
	s.Require().NoError(err)
	s.Require().Len(offset.Entities, 1)
	s.Equal(second.ID, offset.Entities[0].ID)
	s.Equal(2, offset.NextPage)
}

func (s *RepositoryIntegrationTestSuite) TestPackageListByFileName() {
	ctx := context.Background()
	live := s.newPackage(uuid.New(), entity.Location{}, time.Now())
	gone := s.newPackage(uuid.New(), entity.Location{}, time.Now())

	_, err := s.packageRepo.ChangeStatusToDelivered(ctx, live.ID, uuid.New(), entity.Location{})
	s.Require().NoError(err)
	_, err = s.packageRepo.ChangeStatusToAvailablePickup(ctx, live.ID, entity.Photo{FileName: "live.png", FileType: entity.FileTypePNG}, entity.Location{})
	s.Require().NoError(err)
	_, err = s.packageRepo.ChangeStatusToDelivered(ctx, gone.ID, uuid.New(), entity.Location{})
	s.Require().NoError(err)
	_, err = s.packageRepo.ChangeStatusToAvailablePickup(ctx, gone.ID, entity.Photo{FileName: "gone.png", FileType: entity.FileTypePNG}, entity.Location{})
	s.Require().NoError(err)
	_, err = s.packageRepo.Delete(ctx, gone.ID)
	s.Require().NoError(err)

	notDeleted := false
	for name, want := range map[string]int{"live.png": 1, "gone.png": 0} {
		fileName := name
		page, err := s.packageRepo.List(ctx, repository.PackageFilter{FileName: &fileName, IsDeleted: &notDeleted})
		s.Require().NoError(err)
		s.Len(page.Entities, want, fileName)
	}
}

func (s *RepositoryIntegrationTestSuite) TestUserUniqueness() {
	ctx := context.Background()
	s.newUser(entity.RoleRecipient, "52998224725", "ana@parcel.test", nil)

	duplicateEmail := &entity.User{ID: uuid.New(), CPF: "11144477735", Email: "ana@parcel.test", Role: entity.RoleRecipient}
	s.True(errors.Is(s.userRepo.Create(ctx, duplicateEmail), repository.ErrUserAlreadyExists))

	duplicateCPF := &entity.User{ID: uuid.New(), CPF: "52998224725", Email: "bia@parcel.test", Role: entity.RoleRecipient}
	s.True(errors.Is(s.userRepo.Create(ctx, duplicateCPF), repository.ErrUserAlreadyExists))

	byCPF, err := s.userRepo.FindByCPF(ctx, "52998224725")
	s.Require().NoError(err)
	s.Equal("ana@parcel.test", byCPF.Email)

	_, err = s.userRepo.FindByEmail(ctx, "nobody@parcel.test")
	s.True(errors.Is(err, repository.ErrUserNotFound))
}

func (s *RepositoryIntegrationTestSuite) TestUserUpdateListDelete() {
	ctx := context.Background()
	admin := s.newUser(entity.RoleAdmin, "52998224725", "admin@parcel.test", nil)
	courier := s.newUser(entity.RoleDeliveryman, "11144477735", "courier@parcel.test", &admin.ID)
	s.newUser(entity.RoleRecipient, "39053344705", "buyer@parcel.test", nil)

	hashed := "new-hash"
	location := entity.Location{Latitude: 1.5, Longitude: 2.5}
	updated, err := s.userRepo.Update(ctx, courier.ID, repository.UserUpdate{Password: &hashed, Location: &location})
	s.Require().NoError(err)
	s.Equal(hashed, updated.Password)
	s.Equal(location, updated.Location)
	s.Equal(courier.Email, updated.Email)

	page, err := s.userRepo.ListByAdminID(ctx, admin.ID, repository.Pagination{})
	s.Require().NoError(err)
	s.Require().Len(page.Entities, 1)
	s.Equal(courier.ID, page.Entities[0].ID)

	s.Require().NoError(s.userRepo.Delete(ctx, courier.ID))
	s.True(errors.Is(s.userRepo.Delete(ctx, courier.ID), repository.ErrUserNotFound))

	_, err = s.userRepo.Update(ctx, courier.ID, repository.UserUpdate{Password: &hashed})
	s.True(errors.Is(err, repository.ErrUserNotFound))
}

func (s *RepositoryIntegrationTestSuite) TestProductListByName() {
	ctx := context.Background()
	for i, name := range []string{"Blue Mug", "blue pen", "Red Mug"} {
		s.Require().NoError(s.productRepo.Create(ctx, &entity.Product{
			ID:        uuid.New(),
			Name:      name,
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		}))
	}

	page, err := s.productRepo.ListByName(ctx, "BLUE", repository.Pagination{})
	s.Require().NoError(err)
	s.Require().Len(page.Entities, 2)
	s.Equal("Blue Mug", page.Entities[0].Name)
	s.Equal("blue pen", page.Entities[1].Name)

	none, err := s.productRepo.ListByName(ctx, "%", repository.Pagination{})
	s.Require().NoError(err)
	s.Empty(none.Entities)
}

func (s *RepositoryIntegrationTestSuite) TestNotificationList() {
	ctx := context.Background()
	adminID := uuid.New()
	otherAdminID := uuid.New()
	base := time.Now().Add(-time.Hour)

	records := []*entity.Notification{
		{ID: uuid.New(), Emails: []string{"a@parcel.test"}, Title: "Package tracking", AdminID: &adminID, CreatedAt: base},
		{ID: uuid.New(), Emails: []string{"b@parcel.test", "a@parcel.test"}, Title: "Package tracking", AdminID: &adminID, CreatedAt: base.Add(time.Minute)},
		{ID: uuid.New(), Emails: []string{"a@parcel.test"}, Title: "Goodbye", AdminID: &adminID, CreatedAt: base.Add(2 * time.Minute)},
		{ID: uuid.New(), Emails: []string{"a@parcel.test"}, Title: "Package tracking", AdminID: &otherAdminID, CreatedAt: base},
	}
	for _, record := range records {
		s.Require().NoError(s.notificationRepo.Create(ctx, record))
	}

	email := "a@parcel.test"
	title := "Package tracking"
	page, err := s.notificationRepo.List(ctx, repository.NotificationFilter{AdminID: adminID, Email: &email, Title: &title})
	s.Require().NoError(err)
	s.Require().Len(page.Entities, 2)
	s.Equal(records[1].ID, page.Entities[0].ID)
	s.Equal(records[0].ID, page.Entities[1].ID)
	s.ElementsMatch(records[1].Emails, page.Entities[0].Emails)

	byEmail, err := s.notificationRepo.List(ctx, repository.NotificationFilter{AdminID: adminID, Email: &email})
	s.Require().NoError(err)
	s.Len(byEmail.Entities, 3)
}
