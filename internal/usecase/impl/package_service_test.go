package impl

import (
	"context"
	"testing"
	"time"

	"parcel/internal/domain/entity"
	domainerrors "parcel/internal/domain/errors"
	"parcel/internal/domain/repository"
	"parcel/internal/domain/service"
	mockRepo "parcel/internal/mocks/repository"
	mockSvc "parcel/internal/mocks/service"
	"parcel/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// packageServiceFixtures holds all test dependencies for package service tests.
type packageServiceFixtures struct {
	service     usecase.PackageUsecase
	packageRepo *mockRepo.MockPackageRepository
	productRepo *mockRepo.MockProductRepository
	userRepo    *mockRepo.MockUserRepository
	emailSender *mockSvc.MockEmailSender
	labels      *mockSvc.MockLabelService
	registry    *prometheus.Registry
}

func createTestPackageService(t *testing.T) packageServiceFixtures {
	packageRepo := mockRepo.NewMockPackageRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	emailSender := mockSvc.NewMockEmailSender(t)
	labels := mockSvc.NewMockLabelService(t)
	m, registry := newTestMetrics()

	svc := NewPackageService(PackageServiceParams{
		PackageRepo: packageRepo,
		ProductRepo: productRepo,
		UserRepo:    userRepo,
		EmailSender: emailSender,
		Labels:      labels,
		Metrics:     m,
		Config:      newTestConfig(30),
		Logger:      newDiscardLogger(),
	})
	svc.(*packageService).now = func() time.Time { return fixedNow }

	return packageServiceFixtures{
		service:     svc,
		packageRepo: packageRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		emailSender: emailSender,
		labels:      labels,
		registry:    registry,
	}
}

func (fx packageServiceFixtures) expectSend(email string) {
	fx.emailSender.EXPECT().
		Send(mock.Anything, mock.MatchedBy(func(input service.SendInput) bool {
			return len(input.Emails) == 1 && input.Emails[0] == email
		})).
		Return(&entity.Notification{ID: uuid.New()}, nil).
		Once()
}

func (fx packageServiceFixtures) assertNoMutation(t *testing.T) {
	t.Helper()

	fx.packageRepo.AssertNotCalled(t, "ChangeStatusToDelivered", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	fx.packageRepo.AssertNotCalled(t, "ChangeStatusToAvailablePickup", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	fx.packageRepo.AssertNotCalled(t, "ChangeStatusToPickup", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	fx.packageRepo.AssertNotCalled(t, "ChangeStatusToReturned", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	fx.packageRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func pngAttachment(name string) usecase.AttachmentInput {
	return usecase.AttachmentInput{FileName: name, FileType: ".png", FileBody: []byte("png")}
}

func (fx packageServiceFixtures) expectFileNameFree(name string) {
	fx.packageRepo.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(filter repository.PackageFilter) bool {
			return filter.FileName != nil && *filter.FileName == name &&
				filter.IsDeleted != nil && !*filter.IsDeleted
		})).
		Return(repository.NewPage([]*entity.Package{}, repository.Pagination{Limit: 1}), nil).
		Once()
}

func TestPackageService_Create_Success(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()
	recipient := newRecipient()
	product := &entity.Product{
		ID:       uuid.New(),
		Name:     "Notebook",
		Location: entity.Location{Latitude: 1, Longitude: 2},
	}

	fx.userRepo.EXPECT().FindByID(ctx, recipient.ID).Return(recipient, nil)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.packageRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(pack *entity.Package) bool {
			return pack.Status == entity.PackageStatusWaiting &&
				pack.RecipientID == recipient.ID &&
				pack.ProductID == product.ID &&
				pack.ProductQuantity == 2 &&
				pack.Location == product.Location &&
				pack.CreatedAt.Equal(fixedNow) &&
				pack.DeliveryPersonID == nil &&
				!pack.IsDeleted
		})).
		Return(nil)
	fx.expectSend(recipient.Email)

	pack, err := fx.service.Create(ctx, &usecase.CreatePackageInput{
		RecipientID:     recipient.ID,
		ProductID:       product.ID,
		ProductQuantity: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PackageStatusWaiting, pack.Status)
	assert.Equal(t, 1, countSeries(t, fx.registry, "parcel_package_transitions_total"))
}

func TestPackageService_Create_ProductNotFound(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()
	recipient := newRecipient()
	productID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, recipient.ID).Return(recipient, nil)
	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	pack, err := fx.service.Create(ctx, &usecase.CreatePackageInput{
		RecipientID:     recipient.ID,
		ProductID:       productID,
		ProductQuantity: 1,
	})

	assert.Nil(t, pack)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	fx.packageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.emailSender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	assert.Equal(t, 1, countSeries(t, fx.registry, "parcel_package_operation_failures_total"))
}

func TestPackageService_Create_InvalidQuantity(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()
	recipient := newRecipient()
	product := &entity.Product{ID: uuid.New()}

	for _, quantity := range []int{0, -3} {
		_, err := fx.service.Create(ctx, &usecase.CreatePackageInput{
			RecipientID:     recipient.ID,
			ProductID:       product.ID,
			ProductQuantity: quantity,
		})

		assert.ErrorIs(t, err, domainerrors.InvalidFormat("productQuantity"))
	}
	fx.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	fx.productRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	fx.packageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPackageService_Deliver_Success(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()
	admin := newAdmin()
	deliveryman := newDeliveryman(admin.ID)
	recipient := newRecipient()
	pack := newPackage(recipient.ID, entity.PackageStatusWaiting)

	delivered := *pack
	delivered.Status = entity.PackageStatusDelivered
	delivered.DeliveryPersonID = &deliveryman.ID
	delivered.Location = deliveryman.Location

	fx.userRepo.EXPECT().FindByID(ctx, deliveryman.ID).Return(deliveryman, nil)
	fx.userRepo.EXPECT().FindByID(ctx, recipient.ID).Return(recipient, nil)
	fx.packageRepo.EXPECT().FindByID(ctx, pack.ID).Return(pack, nil)
	fx.packageRepo.EXPECT().
		ChangeStatusToDelivered(ctx, pack.ID, deliveryman.ID, deliveryman.Location).
		Return(&delivered, nil)
	fx.expectSend(recipient.Email)

	updated, err := fx.service.Deliver(ctx, &usecase.DeliverPackageInput{
		PackageID:        pack.ID,
		DeliveryPersonID: deliveryman.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PackageStatusDelivered, updated.Status)
	assert.True(t, updated.DeliveredBy(deliveryman.ID))
}

func TestPackageService_Deliver_RejectsOtherStatuses(t *testing.T) {
	for _, status := range []entity.PackageStatus{
		entity.PackageStatusDelivered,
		entity.PackageStatusAvailablePickup,
		entity.PackageStatusPickup,
		entity.PackageStatusReturned,
	} {
		t.Run(status.String(), func(t *testing.T) {
			fx := createTestPackageService(t)
			ctx := context.Background()
			deliveryman := newDeliveryman(uuid.New())
			pack := newPackage(uuid.New(), status)

			fx.userRepo.EXPECT().FindByID(ctx, deliveryman.ID).Return(deliveryman, nil)
			fx.packageRepo.EXPECT().FindByID(ctx, pack.ID).Return(pack, nil)

			_, err := fx.service.Deliver(ctx, &usecase.DeliverPackageInput{
				PackageID:        pack.ID,
				DeliveryPersonID: deliveryman.ID,
			})

			assert.ErrorIs(t, err, domainerrors.ErrNotAllowed)
			fx.assertNoMutation(t)
			fx.emailSender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}
}

func TestPackageService_DeletedPackageIsNotFound(t *testing.T) {
	tests := []struct {
		name      string
		status    entity.PackageStatus
		recipient bool
		run       func(ctx context.Context, svc usecase.PackageUsecase, packageID, actorID uuid.UUID) error
	}{
		{
			name:   "deliver",
			status: entity.PackageStatusWaiting,
			run: func(ctx context.Context, svc usecase.PackageUsecase, packageID, actorID uuid.UUID) error {
				_, err := svc.Deliver(ctx, &usecase.DeliverPackageInput{PackageID: packageID, DeliveryPersonID: actorID})

				return err
			},
		},
		{
			name:   "mark available for pickup",
			status: entity.PackageStatusDelivered,
			run: func(ctx context.Context, svc usecase.PackageUsecase, packageID, actorID uuid.UUID) error {
				_, err := svc.MarkAvailableForPickup(ctx, &usecase.PhotoTransitionInput{
					PackageID:  packageID,
					ActorID:    actorID,
					Attachment: pngAttachment("door.png"),
				})

				return err
			},
		},
		{
			name:   "pickup",
			status: entity.PackageStatusAvailablePickup,
			run: func(ctx context.Context, svc usecase.PackageUsecase, packageID, actorID uuid.UUID) error {
				_, err := svc.Pickup(ctx, &usecase.PhotoTransitionInput{
					PackageID:  packageID,
					ActorID:    actorID,
					Attachment: pngAttachment("hand.png"),
				})

				return err
			},
		},
		{
			name:      "return",
			status:    entity.PackageStatusPickup,
			recipient: true,
			run: func(ctx context.Context, svc usecase.PackageUsecase, packageID, actorID uuid.UUID) error {
				_, err := svc.Return(ctx, &usecase.PhotoTransitionInput{
					PackageID:  packageID,
					ActorID:    actorID,
					Attachment: pngAttachment("box.png"),
				})

				return err
			},
		},
		{
			name:      "cancel",
			status:    entity.PackageStatusWaiting,
			recipient: true,
			run: func(ctx context.Context, svc usecase.PackageUsecase, packageID, actorID uuid.UUID) error {
				_, err := svc.Cancel(ctx, &usecase.CancelPackageInput{PackageID: packageID, RecipientID: actorID})

				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPackageService(t)
			ctx := context.Background()
			actor := newDeliveryman(uuid.New())
			if tt.recipient {
				actor = newRecipient()
			}
			pack := newPackage(uuid.New(), tt.status)
			pack.IsDeleted = true
			pack.DeletedAt = &fixedNow
			if tt.recipient {
				pack.RecipientID = actor.ID
			} else if tt.status != entity.PackageStatusWaiting {
				pack.DeliveryPersonID = &actor.ID
			}

			fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
			fx.packageRepo.EXPECT().FindByID(ctx, pack.ID).Return(pack, nil)

			err := tt.run(ctx, fx.service, pack.ID, actor.ID)

			assert.ErrorIs(t, err, domainerrors.NotFound("package"))
			fx.assertNoMutation(t)
			fx.packageRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
			fx.emailSender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
			assert.Equal(t, 0, countSeries(t, fx.registry, "parcel_package_transitions_total"))
		})
	}
}

func TestPackageService_Deliver_NotificationFailureIsSwallowed(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()
	deliveryman := newDeliveryman(uuid.New())
	recipient := newRecipient()
	pack := newPackage(recipient.ID, entity.PackageStatusWaiting)

	delivered := *pack
	delivered.Status = entity.PackageStatusDelivered
	delivered.DeliveryPersonID = &deliveryman.ID

	fx.userRepo.EXPECT().FindByID(ctx, deliveryman.ID).Return(deliveryman, nil)
	fx.userRepo.EXPECT().FindByID(ctx, recipient.ID).Return(recipient, nil)
	fx.packageRepo.EXPECT().FindByID(ctx, pack.ID).Return(pack, nil)
	fx.packageRepo.EXPECT().
		ChangeStatusToDelivered(ctx, pack.ID, deliveryman.ID, deliveryman.Location).
		Return(&delivered, nil)
	fx.emailSender.EXPECT().
		Send(mock.Anything, mock.Anything).
		Return(nil, errors.New("smtp unavailable")).
		Once()

	updated, err := fx.service.Deliver(ctx, &usecase.DeliverPackageInput{
		PackageID:        pack.ID,
		DeliveryPersonID: deliveryman.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PackageStatusDelivered, updated.Status)
	assert.Equal(t, 1, countSeries(t, fx.registry, "parcel_package_transitions_total"))
	assert.Equal(t, 0, countSeries(t, fx.registry, "parcel_package_operation_failures_total"))
}

func TestPackageService_Deliver_LosesRaceAgainstCancel(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()
	deliveryman := newDeliveryman(uuid.New())
	recipient := newRecipient()
	pack := newPackage(recipient.ID, entity.PackageStatusWaiting)

	fx.userRepo.EXPECT().FindByID(ctx, deliveryman.ID).Return(deliveryman, nil)
	fx.userRepo.EXPECT().FindByID(ctx, recipient.ID).Return(recipient, nil).Maybe()
	fx.packageRepo.EXPECT().FindByID(ctx, pack.ID).Return(pack, nil)
	fx.packageRepo.EXPECT().
		ChangeStatusToDelivered(ctx, pack.ID, deliveryman.ID, deliveryman.Location).
		Return(nil, repository.ErrPackageNotFound)
	fx.emailSender.EXPECT().Send(mock.Anything, mock.Anything).Return(&entity.Notification{}, nil).Maybe()

	_, err := fx.service.Deliver(ctx, &usecase.DeliverPackageInput{
		PackageID:        pack.ID,
		DeliveryPersonID: deliveryman.ID,
	})

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.Equal(t, 0, countSeries(t, fx.registry, "parcel_package_transitions_total"))
}

func TestPackageService_MarkAvailableForPickup_Success(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()
	deliveryman := newDeliveryman(uuid.New())
	pack := newPackage(uuid.New(), entity.PackageStatusDelivered)
	pack.DeliveryPersonID = &deliveryman.ID
	location := entity.Location{Latitude: 5, Longitude: 6}

	fx.userRepo.EXPECT().FindByID(ctx, deliveryman.ID).Return(deliveryman, nil)
	fx.packageRepo.EXPECT().FindByID(ctx, pack.ID).Return(pack, nil)
	fx.expectFileNameFree("door.png")
	fx.packageRepo.EXPECT().
		ChangeStatusToAvailablePickup(ctx, pack.ID, entity.Photo{
			FileName: "door.png",
			FileType: entity.FileTypePNG,
			FileBody: []byte("png"),
		}, location).
		Return(&entity.Package{ID: pack.ID, Status: entity.PackageStatusAvailablePickup}, nil)
	fx.expectSend(deliveryman.Email)

	updated, err := fx.service.MarkAvailableForPickup(ctx, &usecase.PhotoTransitionInput{
		PackageID:  pack.ID,
		ActorID:    deliveryman.ID,
		Attachment: pngAttachment("door.png"),
		Location:   location,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PackageStatusAvailablePickup, updated.Status)
}

func TestPackageService_MarkAvailableForPickup_Preconditions(t *testing.T) {
	tests := []struct {
		name    string
		status  entity.PackageStatus
		ownedBy bool
	}{
		{name: "waiting package skips delivery", status: entity.PackageStatusWaiting, ownedBy: true},
		{name: "already picked up", status: entity.PackageStatusPickup, ownedBy: true},
		{name: "another delivery person", status: entity.PackageStatusDelivered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPackageService(t)
			ctx := context.Background()
			deliveryman := newDeliveryman(uuid.New())
			pack := newPackage(uuid.New(), tt.status)
			other := uuid.New()
			pack.DeliveryPersonID = &other
			if tt.ownedBy {
				pack.DeliveryPersonID = &deliveryman.ID
			}

			fx.userRepo.EXPECT().FindByID(ctx, deliveryman.ID).Return(deliveryman, nil)
			fx.packageRepo.EXPECT().FindByID(ctx, pack.ID).Return(pack, nil)

			_, err := fx.service.MarkAvailableForPickup(ctx, &usecase.PhotoTransitionInput{
				PackageID:  pack.ID,
				ActorID:    deliveryman.ID,
				Attachment: pngAttachment("door.png"),
			})

			assert.ErrorIs(t, err, domainerrors.ErrNotAllowed)
			fx.assertNoMutation(t)
			fx.packageRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
			fx.emailSender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}
}

func TestPackageService_MarkAvailableForPickup_InvalidAttachmentType(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()
	deliveryman := newDeliveryman(uuid.New())
	pack := newPackage(uuid.New(), entity.PackageStatusDelivered)
	pack.DeliveryPersonID = &deliveryman.ID

	fx.userRepo.EXPECT().FindByID(ctx, deliveryman.ID).Return(deliveryman, nil)
	fx.packageRepo.EXPECT().FindByID(ctx, pack.ID).Return(pack, nil)

	_, err := fx.service.MarkAvailableForPickup(ctx, &usecase.PhotoTransitionInput{
		PackageID:  pack.ID,
		ActorID:    deliveryman.ID,
		Attachment: usecase.AttachmentInput{FileName: "scan.gif", FileType: ".gif"},
	})

	assert.ErrorIs(t, err, domainerrors.InvalidAttachmentType(".gif"))
	fx.packageRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	fx.assertNoMutation(t)
}

func TestPackageService_Pickup_FileNameAlreadyExists(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()
	deliveryman := newDeliveryman(uuid.New())
	pack := newPackage(uuid.New(), entity.PackageStatusAvailablePickup)
	pack.DeliveryPersonID = &deliveryman.ID

	fx.userRepo.EXPECT().FindByID(ctx, deliveryman.ID).Return(deliveryman, nil)
	fx.packageRepo.EXPECT().FindByID(ctx, pack.ID).Return(pack, nil)
	fx.packageRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.PackageFilter")).
		Return(repository.NewPage([]*entity.Package{newPackage(uuid.New(), entity.PackageStatusPickup)}, repository.Pagination{Limit: 1}), nil)

	_, err := fx.service.Pickup(ctx, &usecase.PhotoTransitionInput{
		PackageID:  pack.ID,
		ActorID:    deliveryman.ID,
		Attachment: pngAttachment("taken.png"),
	})

	assert.ErrorIs(t, err, domainerrors.FileNameAlreadyExists("taken.png"))
	fx.assertNoMutation(t)
}

func TestPackageService_Pickup_RejectsWaiting(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()
	deliveryman := newDeliveryman(uuid.New())
	pack := newPackage(uuid.New(), entity.PackageStatusWaiting)

	fx.userRepo.EXPECT().FindByID(ctx, deliveryman.ID).Return(deliveryman, nil)
	fx.packageRepo.EXPECT().FindByID(ctx, pack.ID).Return(pack, nil)

	_, err := fx.service.Pickup(ctx, &usecase.PhotoTransitionInput{
		PackageID:  pack.ID,
		ActorID:    deliveryman.ID,
		Attachment: pngAttachment("hand.png"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrNotAllowed)
	fx.assertNoMutation(t)
	fx.packageRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	assert.Equal(t, 0, countSeries(t, fx.registry, "parcel_package_transitions_total"))
}

func TestPackageService_Pickup_StraightFromDelivered(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()
	deliveryman := newDeliveryman(uuid.New())
	pack := newPackage(uuid.New(), entity.PackageStatusDelivered)
	pack.DeliveryPersonID = &deliveryman.ID

	fx.userRepo.EXPECT().FindByID(ctx, deliveryman.ID).Return(deliveryman, nil)
	fx.packageRepo.EXPECT().FindByID(ctx, pack.ID).Return(pack, nil)
	fx.expectFileNameFree("hand.jpg")
	fx.packageRepo.EXPECT().
		ChangeStatusToPickup(ctx, pack.ID, mock.MatchedBy(func(photo entity.Photo) bool {
			return photo.FileType == entity.FileTypeJPG
		}), mock.Anything).
		Return(&entity.Package{ID: pack.ID, Status: entity.PackageStatusPickup}, nil)

	updated, err := fx.service.Pickup(ctx, &usecase.PhotoTransitionInput{
		PackageID:  pack.ID,
		ActorID:    deliveryman.ID,
		Attachment: usecase.AttachmentInput{FileName: "hand.jpg", FileType: "jpg", FileBody: []byte("jpg")},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PackageStatusPickup, updated.Status)
	fx.emailSender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestPackageService_Return_Deadline(t *testing.T) {
	tests := []struct {
		name    string
		days    int
		wantErr error
	}{
		{name: "within the window", days: 29},
		{name: "last day of the window", days: 30},
		{name: "one day late", days: 31, wantErr: domainerrors.ErrPassedDeadline},
		{name: "long past", days: 40, wantErr: domainerrors.ErrPassedDeadline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPackageService(t)
			ctx := context.Background()
			recipient := newRecipient()
			pack := newPackage(recipient.ID, entity.PackageStatusPickup)
			pickupAt := fixedNow.Add(-time.Duration(tt.days) * 24 * time.Hour)
			pack.PickupAt = &pickupAt

			fx.userRepo.EXPECT().FindByID(ctx, recipient.ID).Return(recipient, nil)
			fx.packageRepo.EXPECT().FindByID(ctx, pack.ID).Return(pack, nil)
			if tt.wantErr == nil {
				fx.expectFileNameFree("box.png")
				fx.packageRepo.EXPECT().
					ChangeStatusToReturned(ctx, pack.ID, mock.AnythingOfType("entity.Photo"), mock.Anything).
					Return(&entity.Package{ID: pack.ID, Status: entity.PackageStatusReturned}, nil)
				fx.expectSend(recipient.Email)
			}

			updated, err := fx.service.Return(ctx, &usecase.PhotoTransitionInput{
				PackageID:  pack.ID,
				ActorID:    recipient.ID,
				Attachment: pngAttachment("box.png"),
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				fx.packageRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
				fx.assertNoMutation(t)
				fx.emailSender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, entity.PackageStatusReturned, updated.Status)
		})
	}
}

func TestPackageService_Return_OtherRecipient(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()
	recipient := newRecipient()
	pack := newPackage(uuid.New(), entity.PackageStatusPickup)

	fx.userRepo.EXPECT().FindByID(ctx, recipient.ID).Return(recipient, nil)
	fx.packageRepo.EXPECT().FindByID(ctx, pack.ID).Return(pack, nil)

	_, err := fx.service.Return(ctx, &usecase.PhotoTransitionInput{
		PackageID:  pack.ID,
		ActorID:    recipient.ID,
		Attachment: pngAttachment("box.png"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrNotAllowed)
	fx.assertNoMutation(t)
}

func TestPackageService_Cancel_NotifiesDeliveryPerson(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()
	recipient := newRecipient()
	deliveryman := newDeliveryman(uuid.New())
	pack := newPackage(recipient.ID, entity.PackageStatusDelivered)
	pack.DeliveryPersonID = &deliveryman.ID

	deleted := *pack
	deleted.IsDeleted = true
	deleted.DeletedAt = &fixedNow

	fx.userRepo.EXPECT().FindByID(ctx, recipient.ID).Return(recipient, nil)
	fx.userRepo.EXPECT().FindByID(ctx, deliveryman.ID).Return(deliveryman, nil)
	fx.packageRepo.EXPECT().FindByID(ctx, pack.ID).Return(pack, nil)
	fx.packageRepo.EXPECT().Delete(ctx, pack.ID).Return(&deleted, nil)
	fx.expectSend(recipient.Email)
	fx.expectSend(deliveryman.Email)

	got, err := fx.service.Cancel(ctx, &usecase.CancelPackageInput{PackageID: pack.ID, RecipientID: recipient.ID})

	require.NoError(t, err)
	assert.True(t, got.IsDeleted)
	assert.Equal(t, entity.PackageStatusDelivered, got.Status)
}

func TestPackageService_Cancel_NotificationFailureIsSwallowed(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()
	recipient := newRecipient()
	pack := newPackage(recipient.ID, entity.PackageStatusWaiting)

	deleted := *pack
	deleted.IsDeleted = true
	deleted.DeletedAt = &fixedNow

	fx.userRepo.EXPECT().FindByID(ctx, recipient.ID).Return(recipient, nil)
	fx.packageRepo.EXPECT().FindByID(ctx, pack.ID).Return(pack, nil)
	fx.packageRepo.EXPECT().Delete(ctx, pack.ID).Return(&deleted, nil)
	fx.emailSender.EXPECT().
		Send(mock.Anything, mock.Anything).
		Return(nil, errors.New("smtp unavailable")).
		Once()

	got, err := fx.service.Cancel(ctx, &usecase.CancelPackageInput{PackageID: pack.ID, RecipientID: recipient.ID})

	require.NoError(t, err)
	assert.True(t, got.IsDeleted)
	assert.Equal(t, 0, countSeries(t, fx.registry, "parcel_package_operation_failures_total"))
}

func TestPackageService_Cancel_AlreadyDeleted(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()
	recipient := newRecipient()
	pack := newPackage(recipient.ID, entity.PackageStatusWaiting)
	pack.IsDeleted = true

	fx.userRepo.EXPECT().FindByID(ctx, recipient.ID).Return(recipient, nil)
	fx.packageRepo.EXPECT().FindByID(ctx, pack.ID).Return(pack, nil)

	_, err := fx.service.Cancel(ctx, &usecase.CancelPackageInput{PackageID: pack.ID, RecipientID: recipient.ID})

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	fx.assertNoMutation(t)
	fx.emailSender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestPackageService_Fetch_ListsRecipientPackagesIdempotently(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()
	recipientID := uuid.New()
	packs := []*entity.Package{
		newPackage(recipientID, entity.PackageStatusWaiting),
		newPackage(recipientID, entity.PackageStatusPickup),
	}

	fx.packageRepo.EXPECT().
		List(ctx, repository.PackageFilter{
			RecipientID: &recipientID,
			Pagination:  repository.Pagination{Limit: repository.DefaultListLimit},
		}).
		Return(repository.NewPage(packs, repository.Pagination{Limit: repository.DefaultListLimit}), nil).
		Twice()

	input := &usecase.FetchPackagesInput{Filter: repository.PackageFilter{RecipientID: &recipientID}}
	first, err := fx.service.Fetch(ctx, input)
	require.NoError(t, err)
	second, err := fx.service.Fetch(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, first.NextPage)
	fx.assertNoMutation(t)
}

func TestPackageService_Fetch_SinglePackage(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()
	deliverymanID := uuid.New()
	pack := newPackage(uuid.New(), entity.PackageStatusDelivered)
	pack.DeliveryPersonID = &deliverymanID

	fx.packageRepo.EXPECT().FindByID(ctx, pack.ID).Return(pack, nil).Twice()

	page, err := fx.service.Fetch(ctx, &usecase.FetchPackagesInput{
		PackageID: &pack.ID,
		Filter:    repository.PackageFilter{DeliveryPersonID: &deliverymanID},
	})
	require.NoError(t, err)
	require.Len(t, page.Entities, 1)
	assert.Equal(t, pack.ID, page.Entities[0].ID)

	stranger := uuid.New()
	_, err = fx.service.Fetch(ctx, &usecase.FetchPackagesInput{
		PackageID: &pack.ID,
		Filter:    repository.PackageFilter{RecipientID: &stranger},
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotAllowed)
}

func TestPackageService_Fetch_AdminScope(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()
	admin := newAdmin()
	own := newDeliveryman(admin.ID)
	foreign := newDeliveryman(uuid.New())

	unknown := uuid.New()
	unknownAdmin := uuid.New()

	_, err := fx.service.Fetch(ctx, &usecase.FetchPackagesInput{AdminID: &admin.ID})
	assert.ErrorIs(t, err, domainerrors.ErrNotAllowed)

	fx.userRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)
	fx.userRepo.EXPECT().FindByID(ctx, foreign.ID).Return(foreign, nil)
	_, err = fx.service.Fetch(ctx, &usecase.FetchPackagesInput{
		AdminID: &admin.ID,
		Filter:  repository.PackageFilter{DeliveryPersonID: &foreign.ID},
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotAllowed)

	fx.userRepo.EXPECT().FindByID(ctx, unknown).Return(nil, repository.ErrUserNotFound)
	_, err = fx.service.Fetch(ctx, &usecase.FetchPackagesInput{
		AdminID: &admin.ID,
		Filter:  repository.PackageFilter{DeliveryPersonID: &unknown},
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotAllowed)
	assert.NotErrorIs(t, err, domainerrors.ErrNotFound)

	fx.userRepo.EXPECT().FindByID(ctx, unknownAdmin).Return(nil, repository.ErrUserNotFound)
	_, err = fx.service.Fetch(ctx, &usecase.FetchPackagesInput{
		AdminID: &unknownAdmin,
		Filter:  repository.PackageFilter{DeliveryPersonID: &own.ID},
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotAllowed)
	fx.packageRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)

	fx.userRepo.EXPECT().FindByID(ctx, own.ID).Return(own, nil)
	fx.packageRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(filter repository.PackageFilter) bool {
			return filter.DeliveryPersonID != nil && *filter.DeliveryPersonID == own.ID
		})).
		Return(repository.NewPage([]*entity.Package{}, repository.Pagination{}), nil)
	_, err = fx.service.Fetch(ctx, &usecase.FetchPackagesInput{
		AdminID: &admin.ID,
		Filter:  repository.PackageFilter{DeliveryPersonID: &own.ID},
	})
	assert.NoError(t, err)
}

func TestPackageService_Fetch_RequiresScope(t *testing.T) {
	fx := createTestPackageService(t)

	_, err := fx.service.Fetch(context.Background(), &usecase.FetchPackagesInput{})

	assert.ErrorIs(t, err, domainerrors.ErrNotAllowed)
	fx.packageRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestPackageService_Label(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()
	recipient := newRecipient()
	pack := newPackage(recipient.ID, entity.PackageStatusWaiting)
	png := []byte("png")

	fx.packageRepo.EXPECT().FindByID(ctx, pack.ID).Return(pack, nil)
	fx.labels.EXPECT().GeneratePackageLabel(pack.ID).Return(png, nil)

	got, err := fx.service.Label(ctx, &usecase.PackageLabelInput{
		PackageID:   pack.ID,
		RequesterID: recipient.ID,
		Role:        entity.RoleRecipient,
	})
	require.NoError(t, err)
	assert.Equal(t, png, got)

	_, err = fx.service.Label(ctx, &usecase.PackageLabelInput{
		PackageID:   pack.ID,
		RequesterID: recipient.ID,
		Role:        entity.RoleAdmin,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotAllowed)
}

func TestPackageService_Label_GeneratorFailure(t *testing.T) {
	fx := createTestPackageService(t)
	ctx := context.Background()
	deliverymanID := uuid.New()
	pack := newPackage(uuid.New(), entity.PackageStatusDelivered)
	pack.DeliveryPersonID = &deliverymanID

	fx.packageRepo.EXPECT().FindByID(ctx, pack.ID).Return(pack, nil)
	fx.labels.EXPECT().GeneratePackageLabel(pack.ID).Return(nil, errors.New("encoder failed"))

	_, err := fx.service.Label(ctx, &usecase.PackageLabelInput{
		PackageID:   pack.ID,
		RequesterID: deliverymanID,
		Role:        entity.RoleDeliveryman,
	})

	require.Error(t, err)
	_, isDomain := domainerrors.KindOf(err)
	assert.False(t, isDomain)
}
