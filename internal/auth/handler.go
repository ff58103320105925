package auth

import (
	"errors"

	"github.com/ryanpavini/sistema-na-backend/internal/response"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Email == "" || body.Password == "" {
		return response.ValidationError(c, map[string]string{
			"email":    "email is required",
			"password": "password is required",
		})
	}

	admin, access, refresh, err := h.svc.Login(body.Email, body.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return response.Error(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password", nil)
		}
		return response.InternalError(c, "Failed to log in")
	}

	return response.Success(c, fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
		"admin":         admin,
	}, "Login successful")
}

func (h *Handler) Refresh(c *fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.RefreshToken == "" {
		return response.ValidationError(c, map[string]string{
			"refresh_token": "refresh_token is required",
		})
	}

	admin, access, refresh, err := h.svc.Refresh(body.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRefreshToken):
			return response.Error(c, fiber.StatusUnauthorized, "INVALID_REFRESH_TOKEN", "Invalid or expired refresh token", nil)
		case errors.Is(err, ErrNotFound):
			return response.NotFound(c, "Admin")
		}
		return response.InternalError(c, "Failed to refresh token")
	}

	return response.Success(c, fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
		"admin":         admin,
	}, "Token refreshed successfully")
}

func (h *Handler) ForgotPassword(c *fiber.Ctx) error {
	var body struct {
		Email string `json:"email"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Email == "" {
		return response.ValidationError(c, map[string]string{
			"email": "email is required",
		})
	}

	if err := h.svc.ForgotPassword(body.Email); err != nil {
		return response.InternalError(c, "Failed to process request")
	}

	// Identical body whether or not the account exists.
	return response.Success(c, nil, "If the account exists, a reset link has been sent")
}

func (h *Handler) ResetPassword(c *fiber.Ctx) error {
	var body struct {
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Token == "" || body.NewPassword == "" {
		return response.ValidationError(c, map[string]string{
			"token":        "token is required",
			"new_password": "new_password is required",
		})
	}

	if err := h.svc.ResetPassword(body.Token, body.NewPassword); err != nil {
		var policyErr *PolicyError
		switch {
		case errors.Is(err, ErrInvalidToken):
			return response.Error(c, fiber.StatusBadRequest, "INVALID_TOKEN", "Invalid token", nil)
		case errors.Is(err, ErrExpiredToken):
			return response.Error(c, fiber.StatusBadRequest, "TOKEN_EXPIRED", "Token expired", nil)
		case errors.As(err, &policyErr):
			return response.ValidationError(c, policyErr.Rules)
		}
		return response.InternalError(c, "Failed to reset password")
	}

	return response.Success(c, nil, "Password set successfully")
}

func (h *Handler) ChangePassword(c *fiber.Ctx) error {
	identity, ok := IdentityFromCtx(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var body struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.CurrentPassword == "" || body.NewPassword == "" {
		return response.ValidationError(c, map[string]string{
			"current_password": "current_password is required",
			"new_password":     "new_password is required",
		})
	}

	if err := h.svc.ChangePassword(identity.AdminID, body.CurrentPassword, body.NewPassword); err != nil {
		var policyErr *PolicyError
		switch {
		case errors.Is(err, ErrUnauthorized):
			return response.Unauthorized(c, "Not authenticated")
		case errors.Is(err, ErrInvalidCredentials):
			return response.Error(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "Current password is incorrect", nil)
		case errors.Is(err, ErrSamePassword):
			return response.Error(c, fiber.StatusBadRequest, "SAME_PASSWORD", "New password must be different from the current one", nil)
		case errors.As(err, &policyErr):
			return response.ValidationError(c, policyErr.Rules)
		}
		return response.InternalError(c, "Failed to change password")
	}

	return response.Success(c, nil, "Password changed successfully")
}
