package services

import (
	"context"

	"github.com/ojay234/fullstack-capstone-project/internal/models"
	"github.com/ojay234/fullstack-capstone-project/internal/repository"
)

// SearchService filters the gift catalog. The filter semantics live in the
// repository's query layer; this is a pass-through with no ranking or
// pagination.
type SearchService struct {
	gifts repository.GiftRepository
}

func NewSearchService(gifts repository.GiftRepository) *SearchService {
	return &SearchService{gifts: gifts}
}

func (s *SearchService) Search(ctx context.Context, criteria repository.SearchCriteria) ([]models.Gift, error) {
	return s.gifts.Search(ctx, criteria)
}
