package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ojay234/fullstack-capstone-project/internal/dto"
	"github.com/ojay234/fullstack-capstone-project/internal/repository"
	"github.com/ojay234/fullstack-capstone-project/internal/services"
)

type SearchHandler struct {
	searchService *services.SearchService
}

func NewSearchHandler(searchService *services.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search handles GET and POST /api/search. Criteria come from query
// parameters on GET and from the JSON body on POST; unknown fields are
// ignored and empty criteria return every gift.
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	var criteria repository.SearchCriteria

	if c.Method() == fiber.MethodPost {
		var body struct {
			Name      string `json:"name"`
			Category  string `json:"category"`
			Condition string `json:"condition"`
			AgeYears  any    `json:"age_years"` // clients send this as number or string
		}
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: "Invalid request body",
			})
		}
		criteria.Name = body.Name
		criteria.Category = body.Category
		criteria.Condition = body.Condition
		switch age := body.AgeYears.(type) {
		case float64:
			criteria.MaxAgeYears = age
			criteria.HasMaxAge = true
		case string:
			applyMaxAge(&criteria, age)
		}
	} else {
		criteria.Name = c.Query("name")
		criteria.Category = c.Query("category")
		criteria.Condition = c.Query("condition")
		applyMaxAge(&criteria, c.Query("age_years"))
	}

	gifts, err := h.searchService.Search(c.UserContext(), criteria)
	if err != nil {
		return err
	}
	return c.JSON(gifts)
}

func applyMaxAge(criteria *repository.SearchCriteria, raw string) {
	if raw == "" {
		return
	}
	if age, err := strconv.ParseFloat(raw, 64); err == nil {
		criteria.MaxAgeYears = age
		criteria.HasMaxAge = true
	}
}
