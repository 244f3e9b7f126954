package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
	"github.com/stripe/stripe-go/v74/webhook"
)

var (
	ErrMissingSecretKey = errors.New("stripe secret key is not configured")
	ErrSessionHasNoURL  = errors.New("checkout session has no hosted URL")

	// ErrMissingWebhookSecret rejects every event until a signing secret is set.
	ErrMissingWebhookSecret = errors.New("stripe webhook secret is not configured")
)

// SessionParams describes a subscription checkout for a single price.
type SessionParams struct {
	PriceID    string
	Plan       string
	SuccessURL string
	CancelURL  string
}

type StripeService struct {
	api *client.API
}

// NewStripeService builds a client bound to secretKey. backends may be nil to
// talk to the real Stripe API.
func NewStripeService(secretKey string, backends *stripe.Backends) (*StripeService, error) {
	if secretKey == "" {
		return nil, ErrMissingSecretKey
	}
	return &StripeService{
		api: client.New(secretKey, backends),
	}, nil
}

func (s *StripeService) CreateCheckoutSession(ctx context.Context, p SessionParams) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(p.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		ClientReferenceID: stripe.String(p.Plan),
		SuccessURL:        stripe.String(p.SuccessURL),
		CancelURL:         stripe.String(p.CancelURL),
	}
	params.Context = ctx
	params.AddMetadata("plan", p.Plan)

	session, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}
	return session, nil
}

// CheckoutURL returns the hosted payment page of an existing session.
func (s *StripeService) CheckoutURL(ctx context.Context, sessionID string) (string, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	session, err := s.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return "", fmt.Errorf("failed to retrieve checkout session %s: %w", sessionID, err)
	}
	if session.URL == "" {
		return "", fmt.Errorf("%w: %s", ErrSessionHasNoURL, sessionID)
	}
	return session.URL, nil
}

// ConstructEvent verifies a webhook payload against its Stripe-Signature header.
func ConstructEvent(payload []byte, signature, secret string) (stripe.Event, error) {
	if secret == "" {
		return stripe.Event{}, ErrMissingWebhookSecret
	}
	return webhook.ConstructEventWithOptions(payload, signature, secret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		})
}
