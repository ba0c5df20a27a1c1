package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"parcel/config"
	deliverycontext "parcel/internal/delivery/context"
	"parcel/internal/domain/entity"
	domainerrors "parcel/internal/domain/errors"
	"parcel/internal/domain/repository"
	"parcel/internal/domain/service"
	"parcel/internal/usecase"
	"parcel/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultReturnPeriodDays = 30

// packageService implements the PackageUsecase interface.
type packageService struct {
	guard

	productRepo      repository.ProductRepository
	emailSender      service.EmailSender
	labels           service.LabelService
	metrics          service.LifecycleMetrics
	returnPeriodDays int
	now              func() time.Time
	logger           *slog.Logger
}

// PackageServiceParams holds dependencies for PackageService, injected by Fx.
type PackageServiceParams struct {
	fx.In

	PackageRepo repository.PackageRepository
	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
	EmailSender service.EmailSender
	Labels      service.LabelService
	Metrics     service.LifecycleMetrics
	Config      *config.Config
	Logger      *slog.Logger
}

// NewPackageService is the constructor for packageService.
func NewPackageService(params PackageServiceParams) usecase.PackageUsecase {
	returnPeriodDays := defaultReturnPeriodDays
	if params.Config != nil && params.Config.Delivery != nil && params.Config.Delivery.ReturnPeriodDays > 0 {
		returnPeriodDays = params.Config.Delivery.ReturnPeriodDays
	}

	return &packageService{
		guard: guard{
			userRepo:    params.UserRepo,
			packageRepo: params.PackageRepo,
		},
		productRepo:      params.ProductRepo,
		emailSender:      params.EmailSender,
		labels:           params.Labels,
		metrics:          params.Metrics,
		returnPeriodDays: returnPeriodDays,
		now:              time.Now,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *packageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// observe counts a failed operation. It is deferred with the named error result.
func (srv *packageService) observe(operation string, err *error) {
	if *err != nil {
		srv.metrics.RecordFailure(operation, *err)
	}
}

// notify returns a best-effort task sending input.
func (srv *packageService) notify(ctx context.Context, input service.SendInput) func() error {
	return func() error {
		_, err := srv.emailSender.Send(ctx, input)

		return errors.Wrap(err, "failed to send notification")
	}
}

// notifyUser returns a best-effort task resolving userID's address before sending.
func (srv *packageService) notifyUser(ctx context.Context, userID uuid.UUID, title, content string) func() error {
	return func() error {
		user, err := srv.userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrapf(err, "failed to resolve notification target %s", userID)
		}

		return srv.notify(ctx, service.SendInput{
			Emails:  []string{user.Email},
			Title:   title,
			Content: content,
			AdminID: user.AdminID,
		})()
	}
}

// Create registers a purchase. The package starts WAITING at the product's location.
func (srv *packageService) Create(ctx context.Context, input *usecase.CreatePackageInput) (pack *entity.Package, err error) {
	defer srv.observe("create", &err)

	if input.ProductQuantity <= 0 {
		return nil, domainerrors.InvalidFormat("productQuantity")
	}

	var (
		recipient    *entity.User
		recipientErr error
		product      *entity.Product
		productErr   error
	)

	lookups := util.NewBatch(srv.log(ctx))
	lookups.Go(func() error {
		recipient, recipientErr = srv.findUser(ctx, input.RecipientID, "recipient")

		return nil
	})
	lookups.Go(func() error {
		product, productErr = srv.productRepo.FindByID(ctx, input.ProductID)

		return nil
	})
	_ = lookups.Wait()

	if recipientErr != nil {
		return nil, recipientErr
	}
	if productErr != nil {
		if errors.Is(productErr, repository.ErrProductNotFound) {
			return nil, domainerrors.NotFound("product")
		}

		return nil, errors.Wrap(productErr, "failed to find product")
	}
	pack = &entity.Package{
		ID:              uuid.New(),
		ProductID:       product.ID,
		RecipientID:     recipient.ID,
		ProductQuantity: input.ProductQuantity,
		Status:          entity.PackageStatusWaiting,
		Location:        product.Location,
		CreatedAt:       srv.now(),
	}

	batch := util.NewBatch(srv.log(ctx))
	batch.Go(func() error {
		return errors.Wrap(srv.packageRepo.Create(ctx, pack), "failed to create package")
	})
	batch.GoBestEffort("notify recipient", srv.notify(ctx, service.SendInput{
		Emails:  []string{recipient.Email},
		Title:   "Purchase confirmed",
		Content: fmt.Sprintf("Your purchase %s was registered successfully.", pack.ID),
	}))
	if err := batch.Wait(); err != nil {
		return nil, err
	}

	srv.metrics.RecordTransition(entity.PackageStatusWaiting)
	srv.log(ctx).Info("Package created",
		slog.String("package_id", pack.ID.String()),
		slog.String("product_id", product.ID.String()),
	)

	return pack, nil
}

// Deliver assigns the caller to a WAITING package and moves it to the caller's location.
func (srv *packageService) Deliver(ctx context.Context, input *usecase.DeliverPackageInput) (updated *entity.Package, err error) {
	defer srv.observe("deliver", &err)

	deliveryPerson, err := srv.findUser(ctx, input.DeliveryPersonID, "delivery person")
	if err != nil {
		return nil, err
	}

	pack, err := srv.validatePackage(ctx, input.PackageID, []entity.PackageStatus{entity.PackageStatusWaiting}, nil, nil)
	if err != nil {
		return nil, err
	}

	batch := util.NewBatch(srv.log(ctx))
	batch.Go(func() error {
		var mutateErr error
		updated, mutateErr = srv.packageRepo.ChangeStatusToDelivered(ctx, pack.ID, deliveryPerson.ID, deliveryPerson.Location)

		return srv.mutationError(mutateErr, "failed to mark package as delivered")
	})
	batch.GoBestEffort("notify recipient", srv.notifyUser(ctx, pack.RecipientID,
		"Package tracking",
		fmt.Sprintf("Your package %s is on its way.", pack.ID),
	))
	if err := batch.Wait(); err != nil {
		return nil, err
	}

	srv.metrics.RecordTransition(entity.PackageStatusDelivered)
	srv.log(ctx).Info("Package delivered",
		slog.String("package_id", pack.ID.String()),
		slog.String("delivery_person_id", deliveryPerson.ID.String()),
		slog.Float64("distance_km", pack.Location.DistanceKm(deliveryPerson.Location)),
	)

	return updated, nil
}

// MarkAvailableForPickup leaves a DELIVERED package at the local carrier with a photo.
func (srv *packageService) MarkAvailableForPickup(ctx context.Context, input *usecase.PhotoTransitionInput) (updated *entity.Package, err error) {
	defer srv.observe("available_pickup", &err)

	deliveryPerson, err := srv.findUser(ctx, input.ActorID, "delivery person")
	if err != nil {
		return nil, err
	}

	pack, err := srv.validatePackage(ctx, input.PackageID,
		[]entity.PackageStatus{entity.PackageStatusDelivered}, nil, &deliveryPerson.ID)
	if err != nil {
		return nil, err
	}

	photo, err := srv.validateAttachment(ctx, input.Attachment)
	if err != nil {
		return nil, err
	}

	batch := util.NewBatch(srv.log(ctx))
	batch.Go(func() error {
		var mutateErr error
		updated, mutateErr = srv.packageRepo.ChangeStatusToAvailablePickup(ctx, pack.ID, photo, input.Location)

		return srv.mutationError(mutateErr, "failed to mark package as available for pickup")
	})
	batch.GoBestEffort("notify delivery person", srv.notify(ctx, service.SendInput{
		Emails:  []string{deliveryPerson.Email},
		Title:   "Package available for pickup",
		Content: fmt.Sprintf("Package %s is available for pickup at the local carrier.", pack.ID),
		AdminID: deliveryPerson.AdminID,
	}))
	if err := batch.Wait(); err != nil {
		return nil, err
	}

	srv.metrics.RecordTransition(entity.PackageStatusAvailablePickup)

	return updated, nil
}

// Pickup records the handover of a DELIVERED or AVAILABLE_PICKUP package.
func (srv *packageService) Pickup(ctx context.Context, input *usecase.PhotoTransitionInput) (updated *entity.Package, err error) {
	defer srv.observe("pickup", &err)

	deliveryPerson, err := srv.findUser(ctx, input.ActorID, "delivery person")
	if err != nil {
		return nil, err
	}

	pack, err := srv.validatePackage(ctx, input.PackageID,
		[]entity.PackageStatus{entity.PackageStatusAvailablePickup, entity.PackageStatusDelivered}, nil, &deliveryPerson.ID)
	if err != nil {
		return nil, err
	}

	photo, err := srv.validateAttachment(ctx, input.Attachment)
	if err != nil {
		return nil, err
	}

	updated, err = srv.packageRepo.ChangeStatusToPickup(ctx, pack.ID, photo, input.Location)
	if err != nil {
		return nil, srv.mutationError(err, "failed to mark package as picked up")
	}

	srv.metrics.RecordTransition(entity.PackageStatusPickup)

	return updated, nil
}

// Return sends a picked up package back while the return window is open.
func (srv *packageService) Return(ctx context.Context, input *usecase.PhotoTransitionInput) (updated *entity.Package, err error) {
	defer srv.observe("return", &err)

	recipient, err := srv.findUser(ctx, input.ActorID, "recipient")
	if err != nil {
		return nil, err
	}

	pack, err := srv.validatePackage(ctx, input.PackageID,
		[]entity.PackageStatus{entity.PackageStatusPickup}, &recipient.ID, nil)
	if err != nil {
		return nil, err
	}

	if pack.PickupAt != nil && entity.DaysPassed(*pack.PickupAt, srv.now()) > srv.returnPeriodDays {
		return nil, domainerrors.PassedDeadline()
	}

	photo, err := srv.validateAttachment(ctx, input.Attachment)
	if err != nil {
		return nil, err
	}

	batch := util.NewBatch(srv.log(ctx))
	batch.Go(func() error {
		var mutateErr error
		updated, mutateErr = srv.packageRepo.ChangeStatusToReturned(ctx, pack.ID, photo, input.Location)

		return srv.mutationError(mutateErr, "failed to mark package as returned")
	})
	batch.GoBestEffort("notify recipient", srv.notify(ctx, service.SendInput{
		Emails:  []string{recipient.Email},
		Title:   "Return requested",
		Content: fmt.Sprintf("The refund of package %s was requested successfully.", pack.ID),
	}))
	if err := batch.Wait(); err != nil {
		return nil, err
	}

	srv.metrics.RecordTransition(entity.PackageStatusReturned)

	return updated, nil
}

// Cancel soft-deletes a package owned by the caller.
func (srv *packageService) Cancel(ctx context.Context, input *usecase.CancelPackageInput) (deleted *entity.Package, err error) {
	defer srv.observe("cancel", &err)

	recipient, err := srv.findUser(ctx, input.RecipientID, "recipient")
	if err != nil {
		return nil, err
	}

	pack, err := srv.validatePackage(ctx, input.PackageID, entity.PackageStatuses, &recipient.ID, nil)
	if err != nil {
		return nil, err
	}

	batch := util.NewBatch(srv.log(ctx))
	batch.Go(func() error {
		var mutateErr error
		deleted, mutateErr = srv.packageRepo.Delete(ctx, pack.ID)

		return srv.mutationError(mutateErr, "failed to cancel package")
	})
	batch.GoBestEffort("notify recipient", srv.notify(ctx, service.SendInput{
		Emails:  []string{recipient.Email},
		Title:   "Purchase cancelled",
		Content: fmt.Sprintf("Your purchase %s was cancelled successfully.", pack.ID),
	}))
	if pack.DeliveryPersonID != nil {
		batch.GoBestEffort("notify delivery person", srv.notifyUser(ctx, *pack.DeliveryPersonID,
			"Delivery cancelled",
			fmt.Sprintf("The delivery of package %s was cancelled.", pack.ID),
		))
	}
	if err := batch.Wait(); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Package cancelled", slog.String("package_id", pack.ID.String()))

	return deleted, nil
}

// Fetch tracks one package or lists packages scoped to a recipient or delivery person.
func (srv *packageService) Fetch(ctx context.Context, input *usecase.FetchPackagesInput) (page *repository.Page[*entity.Package], err error) {
	defer srv.observe("fetch", &err)

	filter := input.Filter
	filter.Pagination = filter.Pagination.Normalize()

	// Any failed admin check hides whether the admin or the delivery person exists.
	if input.AdminID != nil {
		if filter.DeliveryPersonID == nil {
			return nil, domainerrors.NotAllowed()
		}
		if err := srv.validateAdminFor(ctx, input.AdminID, *filter.DeliveryPersonID); err != nil {
			if _, ok := domainerrors.KindOf(err); ok {
				return nil, domainerrors.NotAllowed()
			}

			return nil, err
		}
	}

	if filter.RecipientID == nil && filter.DeliveryPersonID == nil {
		return nil, domainerrors.NotAllowed()
	}

	if input.PackageID != nil {
		pack, err := srv.packageRepo.FindByID(ctx, *input.PackageID)
		if err != nil {
			if errors.Is(err, repository.ErrPackageNotFound) {
				return nil, domainerrors.NotFound("package")
			}

			return nil, errors.Wrap(err, "failed to find package")
		}

		ownsByRecipient := filter.RecipientID != nil && pack.RecipientID == *filter.RecipientID
		ownsByDeliveryPerson := filter.DeliveryPersonID != nil && pack.DeliveredBy(*filter.DeliveryPersonID)
		if !ownsByRecipient && !ownsByDeliveryPerson {
			return nil, domainerrors.NotAllowed()
		}

		return repository.NewPage([]*entity.Package{pack}, filter.Pagination), nil
	}

	page, err = srv.packageRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list packages")
	}

	return page, nil
}

// Label renders the QR tracking label of a package for its recipient or delivery person.
func (srv *packageService) Label(ctx context.Context, input *usecase.PackageLabelInput) (png []byte, err error) {
	defer srv.observe("label", &err)

	var recipientID, deliveryPersonID *uuid.UUID
	switch input.Role {
	case entity.RoleRecipient:
		recipientID = &input.RequesterID
	case entity.RoleDeliveryman:
		deliveryPersonID = &input.RequesterID
	default:
		return nil, domainerrors.NotAllowed()
	}

	pack, err := srv.validatePackage(ctx, input.PackageID, entity.PackageStatuses, recipientID, deliveryPersonID)
	if err != nil {
		return nil, err
	}

	png, err = srv.labels.GeneratePackageLabel(pack.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate package label")
	}

	return png, nil
}

// validateAttachment checks the file type and that no live package already uses the file name.
func (srv *packageService) validateAttachment(ctx context.Context, attachment usecase.AttachmentInput) (entity.Photo, error) {
	fileType, ok := entity.ParseFileType(attachment.FileType)
	if !ok {
		return entity.Photo{}, domainerrors.InvalidAttachmentType(attachment.FileType)
	}

	notDeleted := false
	fileName := attachment.FileName
	existing, err := srv.packageRepo.List(ctx, repository.PackageFilter{
		FileName:   &fileName,
		IsDeleted:  &notDeleted,
		Pagination: repository.Pagination{Limit: 1},
	})
	if err != nil {
		return entity.Photo{}, errors.Wrap(err, "failed to check attachment file name")
	}
	if len(existing.Entities) != 0 {
		return entity.Photo{}, domainerrors.FileNameAlreadyExists(fileName)
	}

	return entity.Photo{
		FileName: fileName,
		FileType: fileType,
		FileBody: attachment.FileBody,
	}, nil
}

// mutationError maps a lost race against a concurrent soft delete to NotFound.
func (srv *packageService) mutationError(err error, message string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrPackageNotFound) {
		return domainerrors.NotFound("package")
	}

	return errors.Wrap(err, message)
}
