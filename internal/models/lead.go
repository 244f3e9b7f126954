package models

import "time"

type Lead struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Business  string    `json:"business" gorm:"not null"`
	Industry  string    `json:"industry" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null;index"`
	Phone     string    `json:"phone" gorm:"not null"`
	Plan      string    `json:"plan,omitempty" gorm:"index"`
	IP        string    `json:"-"`
	UserAgent string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// LeadRequest is the contact form payload, form-encoded from the page or JSON
// from API clients.
type LeadRequest struct {
	Name           string `json:"name" form:"name" validate:"required,max=120"`
	Business       string `json:"business" form:"business" validate:"required,max=160"`
	Industry       string `json:"industry" form:"industry" validate:"required,max=120"`
	Email          string `json:"email" form:"email" validate:"required,email,max=254"`
	Phone          string `json:"phone" form:"phone" validate:"required,phone"`
	Plan           string `json:"plan" form:"plan" validate:"omitempty,plan"`
	TurnstileToken string `json:"cf-turnstile-response" form:"cf-turnstile-response"`
}

type LeadFilter struct {
	Plan  string
	Limit int
}
