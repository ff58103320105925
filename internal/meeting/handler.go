package meeting

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ryanpavini/sistema-na-backend/internal/auth"
	"github.com/ryanpavini/sistema-na-backend/internal/models"
	"github.com/ryanpavini/sistema-na-backend/internal/response"
)

var timeOfDayPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type meetingInput struct {
	DayOfWeek  string `json:"day_of_week"`
	Time       string `json:"time"`
	Type       string `json:"type"`
	Category   string `json:"category"`
	RoomOpener string `json:"room_opener"`
}

func (in meetingInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.DayOfWeek, validation.Required),
		validation.Field(&in.Time, validation.Required, validation.Match(timeOfDayPattern).Error("must be in HH:MM format")),
		validation.Field(&in.Type, validation.Required),
		validation.Field(&in.Category, validation.Required),
		validation.Field(&in.RoomOpener, validation.Required),
	)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromCtx(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var body meetingInput
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if err := body.Validate(); err != nil {
		return response.ValidationError(c, err)
	}

	m := models.Meeting{
		DayOfWeek:  body.DayOfWeek,
		Time:       body.Time,
		Type:       body.Type,
		Category:   body.Category,
		RoomOpener: body.RoomOpener,
		AuthorID:   identity.AdminID,
	}

	if err := h.svc.Create(&m); err != nil {
		return response.InternalError(c, "Failed to create meeting")
	}

	return response.Created(c, m, "Meeting created successfully")
}

func (h *Handler) List(c *fiber.Ctx) error {
	meetings, err := h.svc.List()
	if err != nil {
		return response.InternalError(c, "Failed to list meetings")
	}

	return response.Success(c, meetings, "Meetings retrieved successfully")
}

func (h *Handler) GetOne(c *fiber.Ctx) error {
	m, err := h.svc.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Meeting")
		}
		return response.InternalError(c, "Failed to fetch meeting")
	}

	return response.Success(c, m, "Meeting retrieved successfully")
}

func (h *Handler) Update(c *fiber.Ctx) error {
	var body meetingInput
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	fields := map[string]interface{}{}

	if body.DayOfWeek != "" {
		fields["day_of_week"] = body.DayOfWeek
	}
	if body.Time != "" {
		if !timeOfDayPattern.MatchString(body.Time) {
			return response.ValidationError(c, map[string]string{"time": "must be in HH:MM format"})
		}
		fields["time"] = body.Time
	}
	if body.Type != "" {
		fields["type"] = body.Type
	}
	if body.Category != "" {
		fields["category"] = body.Category
	}
	if body.RoomOpener != "" {
		fields["room_opener"] = body.RoomOpener
	}

	m, err := h.svc.Update(c.Params("id"), fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Meeting")
		}
		return response.InternalError(c, "Failed to update meeting")
	}

	return response.Success(c, m, "Meeting updated successfully")
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Meeting")
		}
		return response.InternalError(c, "Failed to delete meeting")
	}

	return response.Success(c, nil, "Meeting deleted successfully")
}
