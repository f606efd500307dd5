package resources

import (
	"context"
	"net/url"

	"github.com/bethub/admincli/internal/client/models"
)

// PromotionService manages bonus campaigns.
type PromotionService struct {
	api Caller
}

func NewPromotionService(api Caller) *PromotionService {
	return &PromotionService{api: api}
}

func (s *PromotionService) List(ctx context.Context) ([]models.Promotion, error) {
	var promos []models.Promotion
	if err := s.api.Get(ctx, "/promotions", &promos); err != nil {
		return nil, err
	}
	return promos, nil
}

func (s *PromotionService) Create(ctx context.Context, p models.Promotion) (*models.Promotion, error) {
	var created models.Promotion
	if err := s.api.Post(ctx, "/promotions", p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *PromotionService) Update(ctx context.Context, p models.Promotion) error {
	return s.api.Put(ctx, "/promotions/"+url.PathEscape(p.ID), p, nil)
}

func (s *PromotionService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/promotions/"+url.PathEscape(id))
}
