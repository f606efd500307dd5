package resources

import (
	"context"
	"net/url"

	"github.com/bethub/admincli/internal/client/models"
)

// GameService manages the game catalog.
type GameService struct {
	api Caller
}

func NewGameService(api Caller) *GameService {
	return &GameService{api: api}
}

func (s *GameService) List(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	if err := s.api.Get(ctx, "/games", &games); err != nil {
		return nil, err
	}
	return games, nil
}

func (s *GameService) Create(ctx context.Context, g models.Game) (*models.Game, error) {
	var created models.Game
	if err := s.api.Post(ctx, "/games", g, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *GameService) Update(ctx context.Context, g models.Game) error {
	return s.api.Put(ctx, "/games/"+url.PathEscape(g.ID), g, nil)
}

func (s *GameService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/games/"+url.PathEscape(id))
}

func (s *GameService) SetEnabled(ctx context.Context, id string, enabled bool) error {
	body := map[string]bool{"enabled": enabled}
	return s.api.Put(ctx, "/games/"+url.PathEscape(id)+"/enabled", body, nil)
}
