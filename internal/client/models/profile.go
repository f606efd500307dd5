// Package models contains the wire/domain types consumed by the admin
// client. All amounts are decimal to avoid float rounding on money.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile is the cached snapshot of the authenticated operator, persisted
// alongside the session token for fast display after restart. It is
// advisory only: authorization decisions depend on token presence, never on
// this cache.
type Profile struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Balance     decimal.Decimal `json:"balance"`
	Verified    bool            `json:"verified"`
	LastLoginAt time.Time       `json:"last_login_at"`
}
