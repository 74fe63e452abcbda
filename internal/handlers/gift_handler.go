package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ojay234/fullstack-capstone-project/internal/dto"
	"github.com/ojay234/fullstack-capstone-project/internal/models"
	"github.com/ojay234/fullstack-capstone-project/internal/services"
)

type GiftHandler struct {
	giftService *services.GiftService
}

func NewGiftHandler(giftService *services.GiftService) *GiftHandler {
	return &GiftHandler{giftService: giftService}
}

// List handles GET /api/gifts
func (h *GiftHandler) List(c *fiber.Ctx) error {
	gifts, err := h.giftService.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(gifts)
}

// Get handles GET /api/gifts/:id
func (h *GiftHandler) Get(c *fiber.Ctx) error {
	gift, err := h.giftService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrGiftNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "Gift not found",
			})
		}
		return err
	}
	return c.JSON(gift)
}

// Create handles POST /api/gifts. The body is stored verbatim; failures
// fall through to the app error handler.
func (h *GiftHandler) Create(c *fiber.Ctx) error {
	var gift models.Gift
	if err := c.BodyParser(&gift); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	created, err := h.giftService.Create(c.UserContext(), gift)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
