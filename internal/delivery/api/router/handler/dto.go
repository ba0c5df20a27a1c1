package handler

import (
	"time"

	"parcel/internal/delivery/api/response"
	"parcel/internal/domain/entity"
	"parcel/internal/domain/repository"

	"github.com/google/uuid"
)

// defaultPageLimit applies to HTTP listings that omit a limit.
const defaultPageLimit = 10

// PaginationRequest is embedded by every listing request.
type PaginationRequest struct {
	Page  int `json:"page" validate:"gte=0"`
	Limit int `json:"limit" validate:"gte=0,lte=100"`
}

func (p PaginationRequest) toPagination() repository.Pagination {
	limit := p.Limit
	if limit == 0 {
		limit = defaultPageLimit
	}

	return repository.Pagination{Page: p.Page, Limit: limit}
}

// LocationRequest is a coordinate pair in a JSON body.
type LocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

func (l LocationRequest) toLocation() entity.Location {
	return entity.Location{Latitude: *l.Latitude, Longitude: *l.Longitude}
}

// UserResponse is the public view of a user; the password hash is never rendered.
type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	CPF       string     `json:"cpf"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	AdminID   *uuid.UUID `json:"adminId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func newUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		CPF:       user.CPF,
		Email:     user.Email,
		Role:      user.Role.String(),
		Latitude:  user.Location.Latitude,
		Longitude: user.Location.Longitude,
		AdminID:   user.AdminID,
		CreatedAt: user.CreatedAt,
	}
}

// PackageResponse omits the attachment body; the label route serves images.
type PackageResponse struct {
	ID                uuid.UUID  `json:"id"`
	ProductID         uuid.UUID  `json:"productId"`
	RecipientID       uuid.UUID  `json:"recipientId"`
	DeliveryPersonID  *uuid.UUID `json:"deliveryPersonId,omitempty"`
	ProductQuantity   int        `json:"productQuantity"`
	Status            string     `json:"status"`
	Latitude          float64    `json:"latitude"`
	Longitude         float64    `json:"longitude"`
	FileName          string     `json:"fileName,omitempty"`
	FileType          string     `json:"fileType,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	DeliveryAt        *time.Time `json:"deliveryAt,omitempty"`
	AvailablePickupAt *time.Time `json:"availablePickupAt,omitempty"`
	PickupAt          *time.Time `json:"pickupAt,omitempty"`
	ReturnedAt        *time.Time `json:"returnedAt,omitempty"`
	IsDeleted         bool       `json:"isDeleted"`
	DeletedAt         *time.Time `json:"deletedAt,omitempty"`
}

func newPackageResponse(pack *entity.Package) PackageResponse {
	resp := PackageResponse{
		ID:                pack.ID,
		ProductID:         pack.ProductID,
		RecipientID:       pack.RecipientID,
		DeliveryPersonID:  pack.DeliveryPersonID,
		ProductQuantity:   pack.ProductQuantity,
		Status:            pack.Status.String(),
		Latitude:          pack.Location.Latitude,
		Longitude:         pack.Location.Longitude,
		CreatedAt:         pack.CreatedAt,
		DeliveryAt:        pack.DeliveryAt,
		AvailablePickupAt: pack.AvailablePickupAt,
		PickupAt:          pack.PickupAt,
		ReturnedAt:        pack.ReturnedAt,
		IsDeleted:         pack.IsDeleted,
		DeletedAt:         pack.DeletedAt,
	}
	if pack.Photo != nil {
		resp.FileName = pack.Photo.FileName
		resp.FileType = string(pack.Photo.FileType)
	}

	return resp
}

// ProductResponse is the public view of a catalog item.
type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newProductResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Latitude:    product.Location.Latitude,
		Longitude:   product.Location.Longitude,
		CreatedAt:   product.CreatedAt,
	}
}

// NotificationResponse is one entry of the notification log.
type NotificationResponse struct {
	ID        uuid.UUID  `json:"id"`
	Emails    []string   `json:"emails"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	AdminID   *uuid.UUID `json:"adminId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func newNotificationResponse(notification *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        notification.ID,
		Emails:    notification.Emails,
		Title:     notification.Title,
		Content:   notification.Content,
		AdminID:   notification.AdminID,
		CreatedAt: notification.CreatedAt,
	}
}

func newPageResponse[E any, R any](page *repository.Page[E], mapper func(E) R) response.PageResponse[R] {
	entities := make([]R, 0, len(page.Entities))
	for _, e := range page.Entities {
		entities = append(entities, mapper(e))
	}

	return response.PageResponse[R]{Entities: entities, NextPage: page.NextPage}
}
