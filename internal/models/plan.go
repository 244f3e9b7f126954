package models

import "time"

// Plan identifiers accepted by checkout and lead capture.
const (
	PlanSingleAgent = "single-agent"
	PlanMultiAgent  = "multi-agent"
	PlanEnterprise  = "enterprise"
)

// PlanAction tells the page what a plan button does.
type PlanAction string

const (
	PlanActionCheckout PlanAction = "checkout"
	PlanActionContact  PlanAction = "contact"
)

type Plan struct {
	ID            uint       `json:"-" gorm:"primaryKey"`
	Slug          string     `json:"slug" gorm:"uniqueIndex;not null"`
	Name          string     `json:"name" gorm:"not null"`
	PriceLabel    string     `json:"price_label" gorm:"not null"`
	Summary       string     `json:"summary"`
	Features      []string   `json:"features" gorm:"serializer:json"`
	Action        PlanAction `json:"action" gorm:"not null;default:'checkout'"`
	StripePriceID string     `json:"-"`
	Position      int        `json:"-" gorm:"not null;default:0"`
	Accent        string     `json:"-"`
	CreatedAt     time.Time  `json:"-"`
	UpdatedAt     time.Time  `json:"-"`
}

// Purchasable reports whether a checkout session can be created for the plan.
func (p Plan) Purchasable() bool {
	return p.StripePriceID != ""
}

// PlanSlugs lists the enumerated plan identifiers in page order.
func PlanSlugs() []string {
	return []string{PlanSingleAgent, PlanMultiAgent, PlanEnterprise}
}

// IsPlan reports whether slug is one of the enumerated plan identifiers.
func IsPlan(slug string) bool {
	switch slug {
	case PlanSingleAgent, PlanMultiAgent, PlanEnterprise:
		return true
	}
	return false
}

// DefaultPlans is the built-in catalog seeded into the database. Price ids are
// filled from configuration at seed time.
func DefaultPlans() []Plan {
	return []Plan{
		{
			Slug:       PlanSingleAgent,
			Name:       "Single Agent",
			PriceLabel: "$99/mo",
			Features:   []string{"1 AI Text-Back Agent", "Unlimited SMS Confirmations", "Calendar Sync"},
			Action:     PlanActionCheckout,
			Position:   1,
			Accent:     "teal",
		},
		{
			Slug:       PlanMultiAgent,
			Name:       "Multi-Agent",
			PriceLabel: "$199/mo",
			Features:   []string{"Up to 5 AI Agents", "Team Collaboration", "Priority Support"},
			Action:     PlanActionCheckout,
			Position:   2,
			Accent:     "blue",
		},
		{
			Slug:       PlanEnterprise,
			Name:       "Enterprise",
			PriceLabel: "Custom Pricing",
			Summary:    "Volume discounts & custom integrations",
			Action:     PlanActionContact,
			Position:   3,
			Accent:     "orange",
		},
	}
}
