package handler

import (
	"log/slog"
	"net/http"

	"parcel/internal/delivery/api/middleware"
	"parcel/internal/delivery/api/response"
	"parcel/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves the notification history of an admin.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// ListNotificationsRequest searches the log by recipient address and/or title.
type ListNotificationsRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
	Title string `json:"title"`
	PaginationRequest
}

// List handles the calling admin's notification search.
func (h *NotificationHandler) List(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ListNotificationsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification search input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	page, err := h.notificationUC.Fetch(c.Request().Context(), &usecase.FetchNotificationsInput{
		AdminID:    &adminID,
		Email:      req.Email,
		Title:      req.Title,
		Pagination: req.toPagination(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPageResponse(page, newNotificationResponse))
}
