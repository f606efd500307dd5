package resources

import (
	"context"

	"github.com/bethub/admincli/internal/client/models"
)

// ContactService reads and updates the support channels shown to players.
type ContactService struct {
	api Caller
}

func NewContactService(api Caller) *ContactService {
	return &ContactService{api: api}
}

func (s *ContactService) Get(ctx context.Context) (*models.ContactSettings, error) {
	var settings models.ContactSettings
	if err := s.api.Get(ctx, "/contacts", &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *ContactService) Update(ctx context.Context, settings models.ContactSettings) error {
	return s.api.Put(ctx, "/contacts", settings, nil)
}
