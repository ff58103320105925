package admin

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ryanpavini/sistema-na-backend/internal/auth"
	"github.com/ryanpavini/sistema-na-backend/internal/response"
)

type Handler struct {
	store           *Store
	svc             *auth.Service
	superAdminEmail string
}

func NewHandler(store *Store, svc *auth.Service, superAdminEmail string) *Handler {
	return &Handler{
		store:           store,
		svc:             svc,
		superAdminEmail: superAdminEmail,
	}
}

type inviteInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (in inviteInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required),
		validation.Field(&in.Email, validation.Required, is.Email),
	)
}

// Invite pre-registers an admin and mails an activation link. The account
// stays pending until the link's token is redeemed with a first password.
func (h *Handler) Invite(c *fiber.Ctx) error {
	var body inviteInput
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if err := body.Validate(); err != nil {
		return response.ValidationError(c, err)
	}

	admin, err := h.svc.Invite(body.Name, body.Email)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			return response.Conflict(c, "This email is already in use")
		}
		return response.InternalError(c, "Failed to pre-register admin")
	}

	return response.Created(c, admin, "Admin pre-registered successfully. An activation email has been sent.")
}

func (h *Handler) List(c *fiber.Ctx) error {
	admins, err := h.store.ListExcluding(h.superAdminEmail)
	if err != nil {
		return response.InternalError(c, "Failed to fetch admins")
	}

	return response.Success(c, admins, "Admins retrieved successfully")
}

func (h *Handler) Update(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromCtx(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	id := c.Params("id")

	var body struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	target, err := h.store.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Admin")
		}
		return response.InternalError(c, "Failed to fetch admin")
	}

	// The super admin may edit itself; nobody else may touch it.
	if target.Email == h.superAdminEmail && identity.AdminID != target.ID {
		return response.Forbidden(c, "The super admin account cannot be modified")
	}

	fields := map[string]interface{}{}

	if body.Email != "" && body.Email != target.Email {
		if err := validation.Validate(body.Email, is.Email); err != nil {
			return response.ValidationError(c, map[string]string{"email": err.Error()})
		}
		if _, err := h.store.FindByEmail(body.Email); err == nil {
			return response.Conflict(c, "Email already taken")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return response.InternalError(c, "Failed to fetch admin")
		}
		fields["email"] = body.Email
	}

	if body.Name != "" {
		fields["name"] = body.Name
	}

	if len(fields) > 0 {
		if err := h.store.Update(target.ID, fields); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return response.Conflict(c, "Email already taken")
			}
			return response.InternalError(c, "Failed to update admin")
		}
	}

	updated, err := h.store.FindByID(target.ID)
	if err != nil {
		return response.InternalError(c, "Failed to fetch admin")
	}

	return response.Success(c, updated, "Admin updated successfully")
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromCtx(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	id := c.Params("id")

	// Self-delete is refused before anything else, even for missing targets.
	if id == identity.AdminID {
		return response.Forbidden(c, "You cannot delete your own account")
	}

	target, err := h.store.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Admin")
		}
		return response.InternalError(c, "Failed to fetch admin")
	}

	if target.Email == h.superAdminEmail {
		return response.Forbidden(c, "The super admin account cannot be deleted")
	}

	if err := h.store.Delete(target.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Admin")
		}
		return response.InternalError(c, "Failed to delete admin")
	}

	return response.Success(c, nil, "Admin deleted successfully")
}
