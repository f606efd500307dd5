package resources

import (
	"context"
	"net/url"

	"github.com/bethub/admincli/internal/client/models"
)

// SliderService manages landing-page banners.
type SliderService struct {
	api Caller
}

func NewSliderService(api Caller) *SliderService {
	return &SliderService{api: api}
}

func (s *SliderService) List(ctx context.Context) ([]models.Slider, error) {
	var sliders []models.Slider
	if err := s.api.Get(ctx, "/sliders", &sliders); err != nil {
		return nil, err
	}
	return sliders, nil
}

func (s *SliderService) Create(ctx context.Context, sl models.Slider) (*models.Slider, error) {
	var created models.Slider
	if err := s.api.Post(ctx, "/sliders", sl, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *SliderService) Update(ctx context.Context, sl models.Slider) error {
	return s.api.Put(ctx, "/sliders/"+url.PathEscape(sl.ID), sl, nil)
}

func (s *SliderService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/sliders/"+url.PathEscape(id))
}
