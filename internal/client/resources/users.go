package resources

import (
	"context"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/bethub/admincli/internal/client/models"
)

// UserService manages platform players.
type UserService struct {
	api Caller
}

func NewUserService(api Caller) *UserService {
	return &UserService{api: api}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.api.Get(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.api.Get(ctx, "/users/"+url.PathEscape(id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SetStatus activates or suspends a player account.
func (s *UserService) SetStatus(ctx context.Context, id, status string) error {
	body := map[string]string{"status": status}
	return s.api.Put(ctx, "/users/"+url.PathEscape(id)+"/status", body, nil)
}

// AdjustBalance credits (positive) or debits (negative) a player balance
// and returns the updated user.
func (s *UserService) AdjustBalance(ctx context.Context, id string, delta decimal.Decimal) (*models.User, error) {
	body := map[string]decimal.Decimal{"amount": delta}
	var user models.User
	if err := s.api.Post(ctx, "/users/"+url.PathEscape(id)+"/balance", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
