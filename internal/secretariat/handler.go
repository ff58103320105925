package secretariat

import (
	"errors"

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

type recordInput struct {
	CashValue *float64 `json:"cash_value"`
	PixValue  *float64 `json:"pix_value"`
}

func (in recordInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.CashValue, validation.NotNil, validation.Min(0.0).Error("cash value cannot be negative")),
		validation.Field(&in.PixValue, validation.NotNil, validation.Min(0.0).Error("pix value cannot be negative")),
	)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromCtx(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var body recordInput
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if err := body.Validate(); err != nil {
		return response.ValidationError(c, err)
	}

	r := models.SecretariatRecord{
		CashValue: *body.CashValue,
		PixValue:  *body.PixValue,
		AuthorID:  identity.AdminID,
	}

	if err := h.svc.Create(&r); err != nil {
		return response.InternalError(c, "Failed to save secretariat record")
	}

	return response.Created(c, r, "Secretariat record saved successfully")
}

// GetLatest returns the most recent snapshot, or a zeroed placeholder when
// nothing has been recorded yet.
func (h *Handler) GetLatest(c *fiber.Ctx) error {
	r, err := h.svc.Latest()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.Success(c, fiber.Map{
				"cash_value": 0,
				"pix_value":  0,
				"created_at": nil,
				"author":     fiber.Map{"name": "N/A"},
			}, "No secretariat record yet")
		}
		return response.InternalError(c, "Failed to fetch secretariat record")
	}

	return response.Success(c, r, "Secretariat record retrieved successfully")
}
