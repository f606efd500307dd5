package resources

import (
	"context"
	"net/url"

	"github.com/bethub/admincli/internal/client/models"
)

// PaymentMethodService manages deposit and withdraw channels.
type PaymentMethodService struct {
	api Caller
}

func NewPaymentMethodService(api Caller) *PaymentMethodService {
	return &PaymentMethodService{api: api}
}

// List returns methods of the given kind ("deposit"/"withdraw"), or all
// methods when kind is empty.
func (s *PaymentMethodService) List(ctx context.Context, kind string) ([]models.PaymentMethod, error) {
	path := "/payment-methods"
	if kind != "" {
		path += "?kind=" + url.QueryEscape(kind)
	}
	var methods []models.PaymentMethod
	if err := s.api.Get(ctx, path, &methods); err != nil {
		return nil, err
	}
	return methods, nil
}

func (s *PaymentMethodService) Create(ctx context.Context, m models.PaymentMethod) (*models.PaymentMethod, error) {
	var created models.PaymentMethod
	if err := s.api.Post(ctx, "/payment-methods", m, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *PaymentMethodService) Update(ctx context.Context, m models.PaymentMethod) error {
	return s.api.Put(ctx, "/payment-methods/"+url.PathEscape(m.ID), m, nil)
}

func (s *PaymentMethodService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/payment-methods/"+url.PathEscape(id))
}

func (s *PaymentMethodService) SetEnabled(ctx context.Context, id string, enabled bool) error {
	body := map[string]bool{"enabled": enabled}
	return s.api.Put(ctx, "/payment-methods/"+url.PathEscape(id)+"/enabled", body, nil)
}
