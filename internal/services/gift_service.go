package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ojay234/fullstack-capstone-project/internal/models"
	"github.com/ojay234/fullstack-capstone-project/internal/repository"
)

var ErrGiftNotFound = errors.New("gift not found")

type GiftService struct {
	gifts repository.GiftRepository
}

func NewGiftService(gifts repository.GiftRepository) *GiftService {
	return &GiftService{gifts: gifts}
}

// List returns every gift, unfiltered and unpaginated.
func (s *GiftService) List(ctx context.Context) ([]models.Gift, error) {
	return s.gifts.All(ctx)
}

// Get looks a gift up by its string "id" field.
func (s *GiftService) Get(ctx context.Context, id string) (models.Gift, error) {
	gift, err := s.gifts.FindByGiftID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrGiftNotFound
	}
	return gift, err
}

// Create stores the caller-supplied document as-is, assigning an "id" field
// when the body has none so the gift stays fetchable through Get, and a
// date_added timestamp when absent. No other schema validation happens.
func (s *GiftService) Create(ctx context.Context, gift models.Gift) (models.Gift, error) {
	if gift == nil {
		gift = models.Gift{}
	}
	if gift.GiftID() == "" {
		gift["id"] = uuid.NewString()
	}
	if _, ok := gift["date_added"]; !ok {
		gift["date_added"] = time.Now().Unix()
	}
	return s.gifts.Insert(ctx, gift)
}
