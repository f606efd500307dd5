package resources

import (
	"context"
	"net/url"

	"github.com/bethub/admincli/internal/client/models"
)

// TxFilter narrows a transaction listing. Empty fields match everything.
type TxFilter struct {
	Kind   string
	Status string
}

// TransactionService lists money movements and settles pending withdraw
// requests.
type TransactionService struct {
	api Caller
}

func NewTransactionService(api Caller) *TransactionService {
	return &TransactionService{api: api}
}

func (s *TransactionService) List(ctx context.Context, filter TxFilter) ([]models.Transaction, error) {
	query := url.Values{}
	if filter.Kind != "" {
		query.Set("kind", filter.Kind)
	}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}

	path := "/transactions"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var txns []models.Transaction
	if err := s.api.Get(ctx, path, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

// Approve settles a pending withdraw request in the player's favor.
func (s *TransactionService) Approve(ctx context.Context, id string) error {
	return s.api.Post(ctx, "/transactions/"+url.PathEscape(id)+"/approve", nil, nil)
}

// Reject declines a pending withdraw request; the reason is shown to the
// player.
func (s *TransactionService) Reject(ctx context.Context, id, reason string) error {
	body := map[string]string{"reason": reason}
	return s.api.Post(ctx, "/transactions/"+url.PathEscape(id)+"/reject", body, nil)
}
