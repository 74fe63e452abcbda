package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ojay234/fullstack-capstone-project/internal/dto"
	"github.com/ojay234/fullstack-capstone-project/internal/middleware"
	"github.com/ojay234/fullstack-capstone-project/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	resp, err := h.authService.Register(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: "Email already exists",
			})
		}
		return err
	}

	return c.JSON(resp)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	resp, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "User not found",
			})
		case errors.Is(err, services.ErrWrongPassword):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "Wrong password",
			})
		}
		return err
	}

	return c.JSON(resp)
}

// UpdateProfile handles PUT /api/auth/update. The target user comes from
// the email request header, not the body.
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	var fieldErrors []dto.FieldError
	if req.FirstName == "" {
		fieldErrors = append(fieldErrors, dto.FieldError{Msg: "First name is required", Path: "firstName"})
	}
	if req.LastName == "" {
		fieldErrors = append(fieldErrors, dto.FieldError{Msg: "Last name is required", Path: "lastName"})
	}
	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: fieldErrors})
	}

	email := c.Get("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Email not found in the request headers",
		})
	}

	resp, err := h.authService.UpdateProfile(c.UserContext(), email, req.FirstName, req.LastName, middleware.TokenUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "User not found",
			})
		case errors.Is(err, services.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: "Token does not match user",
			})
		}
		return err
	}

	return c.JSON(resp)
}
