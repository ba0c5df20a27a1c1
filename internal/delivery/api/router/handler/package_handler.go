package handler

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"parcel/config"
	"parcel/internal/delivery/api/middleware"
	"parcel/internal/delivery/api/response"
	"parcel/internal/domain/entity"
	domainerrors "parcel/internal/domain/errors"
	"parcel/internal/usecase"
	"parcel/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// attachmentField is the multipart field carrying the photo.
const attachmentField = "file"

// PackageHandlerParams holds dependencies for PackageHandler, injected by Fx.
type PackageHandlerParams struct {
	fx.In

	PackageUC usecase.PackageUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// PackageHandler serves the package lifecycle routes.
type PackageHandler struct {
	packageUC         usecase.PackageUsecase
	maxAttachmentSize int64
	tooLarge          error
	logger            *slog.Logger
}

// NewPackageHandler is the constructor for PackageHandler
func NewPackageHandler(params PackageHandlerParams) *PackageHandler {
	maxAttachmentSize := config.DefaultMaxAttachmentSize
	if params.Config.Delivery != nil && params.Config.Delivery.MaxAttachmentSize > 0 {
		maxAttachmentSize = params.Config.Delivery.MaxAttachmentSize
	}

	return &PackageHandler{
		packageUC:         params.PackageUC,
		maxAttachmentSize: maxAttachmentSize,
		tooLarge:          domainerrors.ErrAttachmentTooLarge.WithDetails("limit is " + util.FormatBytes(maxAttachmentSize)),
		logger:            params.Logger,
	}
}

// CreatePackageRequest buys a quantity of a product.
type CreatePackageRequest struct {
	ProductID       uuid.UUID `json:"productId" validate:"required"`
	ProductQuantity int       `json:"productQuantity" validate:"required,gt=0"`
}

// PackageIDRequest addresses one package.
type PackageIDRequest struct {
	PackageID uuid.UUID `json:"packageId" validate:"required"`
}

// PhotoTransitionRequest is the form part of a photo transition; the photo
// itself travels in the "file" field.
type PhotoTransitionRequest struct {
	PackageID uuid.UUID `form:"packageId" validate:"required"`
	Latitude  *float64  `form:"latitude" validate:"required,latitude"`
	Longitude *float64  `form:"longitude" validate:"required,longitude"`
}

// TrackPackagesRequest filters a package listing. The caller's role decides
// which of recipientId and deliveryPersonId is taken from the token.
type TrackPackagesRequest struct {
	PackageID        *uuid.UUID       `json:"packageId"`
	Status           *string          `json:"status"`
	DeliveryPersonID *uuid.UUID       `json:"deliveryPersonId"`
	IsDeleted        *bool            `json:"isDeleted"`
	Near             *LocationRequest `json:"near"`
	PaginationRequest
}

// Create handles a recipient buying a product.
func (h *PackageHandler) Create(c echo.Context) error {
	recipientID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreatePackageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid package input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	pack, err := h.packageUC.Create(c.Request().Context(), &usecase.CreatePackageInput{
		RecipientID:     recipientID,
		ProductID:       req.ProductID,
		ProductQuantity: req.ProductQuantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newPackageResponse(pack))
}

// Deliver assigns the calling delivery person to a waiting package.
func (h *PackageHandler) Deliver(c echo.Context) error {
	deliveryPersonID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req PackageIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid package input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	pack, err := h.packageUC.Deliver(c.Request().Context(), &usecase.DeliverPackageInput{
		PackageID:        req.PackageID,
		DeliveryPersonID: deliveryPersonID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPackageResponse(pack))
}

// MarkAvailableForPickup attaches the drop-off photo.
func (h *PackageHandler) MarkAvailableForPickup(c echo.Context) error {
	return h.photoTransition(c, h.packageUC.MarkAvailableForPickup)
}

// Pickup attaches the hand-over photo.
func (h *PackageHandler) Pickup(c echo.Context) error {
	return h.photoTransition(c, h.packageUC.Pickup)
}

// Return attaches the return photo on behalf of the recipient.
func (h *PackageHandler) Return(c echo.Context) error {
	return h.photoTransition(c, h.packageUC.Return)
}

type photoTransitionFunc func(ctx context.Context, input *usecase.PhotoTransitionInput) (*entity.Package, error)

func (h *PackageHandler) photoTransition(c echo.Context, transition photoTransitionFunc) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req PhotoTransitionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid package input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	fileHeader, err := c.FormFile(attachmentField)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ParamsNotProvided(attachmentField))
	}

	attachment, err := h.readAttachment(fileHeader)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	pack, err := transition(c.Request().Context(), &usecase.PhotoTransitionInput{
		PackageID:  req.PackageID,
		ActorID:    actorID,
		Attachment: *attachment,
		Location:   entity.Location{Latitude: *req.Latitude, Longitude: *req.Longitude},
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPackageResponse(pack))
}

// readAttachment loads an uploaded file, bounded by the configured size.
func (h *PackageHandler) readAttachment(fileHeader *multipart.FileHeader) (*usecase.AttachmentInput, error) {
	if fileHeader.Size > h.maxAttachmentSize {
		return nil, h.tooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open attachment")
	}
	defer file.Close()

	body, err := io.ReadAll(io.LimitReader(file, h.maxAttachmentSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read attachment")
	}
	if int64(len(body)) > h.maxAttachmentSize {
		return nil, h.tooLarge
	}

	return &usecase.AttachmentInput{
		FileName: filepath.Base(fileHeader.Filename),
		FileType: attachmentType(fileHeader),
		FileBody: body,
	}, nil
}

// attachmentType is the file extension, or the MIME subtype when the name has none.
func attachmentType(fileHeader *multipart.FileHeader) string {
	if ext := filepath.Ext(fileHeader.Filename); ext != "" {
		return ext
	}

	mediaType, _, err := mime.ParseMediaType(fileHeader.Header.Get(echo.HeaderContentType))
	if err != nil {
		return ""
	}
	_, subtype, _ := strings.Cut(mediaType, "/")

	return subtype
}

// Cancel soft-deletes a package of the calling recipient.
func (h *PackageHandler) Cancel(c echo.Context) error {
	recipientID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req PackageIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid package input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	pack, err := h.packageUC.Cancel(c.Request().Context(), &usecase.CancelPackageInput{
		PackageID:   req.PackageID,
		RecipientID: recipientID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPackageResponse(pack))
}

// Track lists packages visible to the caller.
func (h *PackageHandler) Track(c echo.Context) error {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	role, _ := middleware.GetRole(c)

	var req TrackPackagesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tracking input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.FetchPackagesInput{PackageID: req.PackageID}
	input.Filter.IsDeleted = req.IsDeleted
	input.Filter.Pagination = req.toPagination()
	if req.Status != nil {
		status := entity.PackageStatus(*req.Status)
		if !status.IsValid() {
			return response.HandleAppError(c, domainerrors.InvalidFormat("status"))
		}
		input.Filter.Status = &status
	}
	if req.Near != nil {
		near := req.Near.toLocation()
		input.Filter.Near = &near
	}

	switch role {
	case entity.RoleRecipient:
		input.Filter.RecipientID = &callerID
	case entity.RoleDeliveryman:
		input.Filter.DeliveryPersonID = &callerID
	case entity.RoleAdmin:
		input.AdminID = &callerID
		input.Filter.DeliveryPersonID = req.DeliveryPersonID
	}

	page, err := h.packageUC.Fetch(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPageResponse(page, newPackageResponse))
}

// Label renders the QR tracking label of a package owned by the caller.
func (h *PackageHandler) Label(c echo.Context) error {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	role, _ := middleware.GetRole(c)

	packageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid package ID")
	}

	png, err := h.packageUC.Label(c.Request().Context(), &usecase.PackageLabelInput{
		PackageID:   packageID,
		RequesterID: callerID,
		Role:        role,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}
