package handler

import (
	"log/slog"
	"net/http"

	"parcel/internal/delivery/api/middleware"
	"parcel/internal/delivery/api/response"
	"parcel/internal/domain/entity"
	domainerrors "parcel/internal/domain/errors"
	"parcel/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// AccountHandler serves registration, sessions and account maintenance.
type AccountHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterRequest is the body of every registration route.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	CPF      string `json:"cpf" validate:"required,cpf"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	LocationRequest
}

// AuthenticateRequest identifies the account by CPF or e-mail.
type AuthenticateRequest struct {
	CPF      string `json:"cpf" validate:"required_without=Email"`
	Email    string `json:"email" validate:"required_without=CPF,omitempty,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest identifies the target by CPF or e-mail.
type ChangePasswordRequest struct {
	CPF      string `json:"cpf"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// ChangeLocationRequest moves the caller, or for an admin, the given user.
type ChangeLocationRequest struct {
	UserID *uuid.UUID `json:"userId"`
	LocationRequest
}

// AuthResponse is the result of registration and authentication.
type AuthResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"accessToken"`
}

// RegisterAdmin handles public admin sign-up.
func (h *AccountHandler) RegisterAdmin(c echo.Context) error {
	return h.register(c, entity.RoleAdmin, nil)
}

// RegisterRecipient handles public recipient sign-up.
func (h *AccountHandler) RegisterRecipient(c echo.Context) error {
	return h.register(c, entity.RoleRecipient, nil)
}

// RegisterDeliveryman registers a delivery person owned by the calling admin.
func (h *AccountHandler) RegisterDeliveryman(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return h.register(c, entity.RoleDeliveryman, &adminID)
}

func (h *AccountHandler) register(c echo.Context, role entity.Role, adminID *uuid.UUID) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		CPF:      req.CPF,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
		Location: req.toLocation(),
		AdminID:  adminID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, AuthResponse{
		User:        newUserResponse(out.User),
		AccessToken: out.AccessToken,
	})
}

// Authenticate handles sign-in.
func (h *AccountHandler) Authenticate(c echo.Context) error {
	var req AuthenticateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid credentials input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.userUC.Authenticate(c.Request().Context(), &usecase.AuthenticateInput{
		CPF:      req.CPF,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, AuthResponse{
		User:        newUserResponse(out.User),
		AccessToken: out.AccessToken,
	})
}

// ChangePassword lets the caller change their own password.
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return h.changePassword(c, nil, &callerID)
}

// ChangeDeliverymanPassword lets an admin reset the password of one of their delivery personnel.
func (h *AccountHandler) ChangeDeliverymanPassword(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return h.changePassword(c, &adminID, nil)
}

func (h *AccountHandler) changePassword(c echo.Context, adminID, requesterID *uuid.UUID) error {
	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	err := h.userUC.ChangePassword(c.Request().Context(), &usecase.ChangePasswordInput{
		CPF:         req.CPF,
		Email:       req.Email,
		Password:    req.Password,
		AdminID:     adminID,
		RequesterID: requesterID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ChangeLocation moves the calling recipient, or a user chosen by the calling admin.
func (h *AccountHandler) ChangeLocation(c echo.Context) error {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	role, _ := middleware.GetRole(c)

	var req ChangeLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.ChangeLocationInput{
		UserID:   callerID,
		Location: req.toLocation(),
	}
	if role == entity.RoleAdmin {
		input.AdminID = &callerID
		if req.UserID != nil {
			input.UserID = *req.UserID
		}
	}

	if err := h.userUC.ChangeLocation(c.Request().Context(), input); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Delete removes an account. Recipients may only delete themselves.
func (h *AccountHandler) Delete(c echo.Context) error {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	role, _ := middleware.GetRole(c)

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	input := &usecase.DeleteUserInput{UserID: userID}
	switch role {
	case entity.RoleAdmin:
		input.AdminID = &callerID
	default:
		if userID != callerID {
			return response.HandleAppError(c, domainerrors.NotAllowed())
		}
	}

	if err := h.userUC.Delete(c.Request().Context(), input); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// FetchByAdmin lists the calling admin's delivery personnel.
func (h *AccountHandler) FetchByAdmin(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req PaginationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pagination input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	page, err := h.userUC.FetchByAdminID(c.Request().Context(), &usecase.FetchByAdminInput{
		AdminID:    &adminID,
		Pagination: req.toPagination(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPageResponse(page, newUserResponse))
}
