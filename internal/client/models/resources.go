package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User statuses as reported by the backend.
const (
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
)

// User is a platform player as seen by the operator.
type User struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Balance   decimal.Decimal `json:"balance"`
	Verified  bool            `json:"verified"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// Payment method kinds.
const (
	PaymentKindDeposit  = "deposit"
	PaymentKindWithdraw = "withdraw"
)

// PaymentMethod is a deposit or withdraw channel offered to players.
type PaymentMethod struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Kind      string          `json:"kind"`
	MinAmount decimal.Decimal `json:"min_amount"`
	MaxAmount decimal.Decimal `json:"max_amount"`
	Enabled   bool            `json:"enabled"`
	IconURL   string          `json:"icon_url"`
}

// Promotion is a bonus campaign shown to players.
type Promotion struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Bonus       decimal.Decimal `json:"bonus"`
	StartsAt    time.Time       `json:"starts_at"`
	EndsAt      time.Time       `json:"ends_at"`
	Active      bool            `json:"active"`
}

// Transaction kinds and statuses.
const (
	TxKindDeposit  = "deposit"
	TxKindWithdraw = "withdraw"

	TxStatusPending  = "pending"
	TxStatusApproved = "approved"
	TxStatusRejected = "rejected"
)

// Transaction is a money movement requested by a player. Withdraw requests
// stay pending until an operator approves or rejects them.
type Transaction struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Kind      string          `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// Game is a catalog entry.
type Game struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
	Category string `json:"category"`
	Enabled  bool   `json:"enabled"`
	ImageURL string `json:"image_url"`
}

// Slider is a landing-page banner.
type Slider struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	Position int    `json:"position"`
	Active   bool   `json:"active"`
}

// ContactSettings holds the support channels shown to players.
type ContactSettings struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
	Telegram string `json:"telegram"`
	Address  string `json:"address"`
}
