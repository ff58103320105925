package event

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ryanpavini/sistema-na-backend/internal/auth"
	"github.com/ryanpavini/sistema-na-backend/internal/models"
	"github.com/ryanpavini/sistema-na-backend/internal/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type eventInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DateTime    string `json:"date_time"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Category    string `json:"category"`
}

func (in eventInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required),
		validation.Field(&in.Description, validation.Required),
		validation.Field(&in.DateTime, validation.Required, validation.Date(time.RFC3339)),
		validation.Field(&in.Location, validation.Required),
		validation.Field(&in.Type, validation.Required),
		validation.Field(&in.Category, validation.Required),
	)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromCtx(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var body eventInput
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if err := body.Validate(); err != nil {
		return response.ValidationError(c, err)
	}

	dateTime, err := time.Parse(time.RFC3339, body.DateTime)
	if err != nil {
		return response.ValidationError(c, map[string]string{"date_time": "must be a valid RFC3339 datetime"})
	}

	e := models.Event{
		Title:       body.Title,
		Description: body.Description,
		DateTime:    dateTime,
		Location:    body.Location,
		Type:        body.Type,
		Category:    body.Category,
		AuthorID:    identity.AdminID,
	}

	if err := h.svc.Create(&e); err != nil {
		return response.InternalError(c, "Failed to create event")
	}

	return response.Created(c, e, "Event created successfully")
}

func (h *Handler) List(c *fiber.Ctx) error {
	events, err := h.svc.List()
	if err != nil {
		return response.InternalError(c, "Failed to list events")
	}

	return response.Success(c, events, "Events retrieved successfully")
}

func (h *Handler) GetOne(c *fiber.Ctx) error {
	e, err := h.svc.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Event")
		}
		return response.InternalError(c, "Failed to fetch event")
	}

	return response.Success(c, e, "Event retrieved successfully")
}

func (h *Handler) GetNext(c *fiber.Ctx) error {
	e, err := h.svc.Next()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Next event")
		}
		return response.InternalError(c, "Failed to fetch next event")
	}

	return response.Success(c, e, "Next event retrieved successfully")
}

func (h *Handler) Update(c *fiber.Ctx) error {
	var body eventInput
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	fields := map[string]interface{}{}

	if body.Title != "" {
		fields["title"] = body.Title
	}
	if body.Description != "" {
		fields["description"] = body.Description
	}
	if body.DateTime != "" {
		dateTime, err := time.Parse(time.RFC3339, body.DateTime)
		if err != nil {
			return response.ValidationError(c, map[string]string{"date_time": "must be a valid RFC3339 datetime"})
		}
		fields["date_time"] = dateTime
	}
	if body.Location != "" {
		fields["location"] = body.Location
	}
	if body.Type != "" {
		fields["type"] = body.Type
	}
	if body.Category != "" {
		fields["category"] = body.Category
	}

	e, err := h.svc.Update(c.Params("id"), fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Event")
		}
		return response.InternalError(c, "Failed to update event")
	}

	return response.Success(c, e, "Event updated successfully")
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Event")
		}
		return response.InternalError(c, "Failed to delete event")
	}

	return response.Success(c, nil, "Event deleted successfully")
}
