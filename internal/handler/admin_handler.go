package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sefazor/textback-landing/internal/models"
	"github.com/sefazor/textback-landing/internal/service"
	"github.com/sefazor/textback-landing/pkg/utils"
)

type AdminHandler struct {
	admin     AdminAuthenticator
	validator *utils.Validator
}

func NewAdminHandler(admin AdminAuthenticator, validator *utils.Validator) *AdminHandler {
	return &AdminHandler{
		admin:     admin,
		validator: validator,
	}
}

func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req models.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.FieldErrorResponse("Password is required", utils.InvalidFields(err)))
	}

	token, err := h.admin.Login(req.Password)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrAdminDisabled):
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.ErrorResponse("Admin access is not configured"))
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid credentials"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Login failed"))
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"token": token}, "Logged in"))
}
