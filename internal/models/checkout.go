package models

import "time"

const (
	CheckoutStatusPending   = "pending"
	CheckoutStatusCompleted = "completed"
	CheckoutStatusFailed    = "failed"
)

type CreateCheckoutSessionRequest struct {
	Plan string `json:"plan" validate:"required,plan"`
}

type CreateCheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
}

// CheckoutSession tracks a Stripe session created for a plan.
type CheckoutSession struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Plan            string    `json:"plan" gorm:"not null;index"`
	StripeSessionID string    `json:"stripe_session_id" gorm:"unique;not null"`
	StripePriceID   string    `json:"stripe_price_id" gorm:"not null"`
	CustomerEmail   string    `json:"customer_email"`
	Status          string    `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}
