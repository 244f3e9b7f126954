package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sefazor/textback-landing/internal/models"
	"github.com/sefazor/textback-landing/pkg/payment"
)

var (
	ErrUnknownPlan        = errors.New("unknown plan")
	ErrPlanNotPurchasable = errors.New("plan has no price configured")
	ErrPaymentsDisabled   = errors.New("payments are not configured")
)

type PlanStore interface {
	GetBySlug(ctx context.Context, slug string) (*models.Plan, error)
	GetAll(ctx context.Context) ([]models.Plan, error)
}

type CheckoutSessionStore interface {
	Create(ctx context.Context, session *models.CheckoutSession) error
	GetByStripeID(ctx context.Context, stripeSessionID string) (*models.CheckoutSession, error)
	Update(ctx context.Context, session *models.CheckoutSession) error
}

type CheckoutProvider interface {
	CreateCheckoutSession(ctx context.Context, p payment.SessionParams) (*stripe.CheckoutSession, error)
}

type PaymentService struct {
	provider CheckoutProvider
	plans    PlanStore
	sessions CheckoutSessionStore
	baseURL  string
	logger   *zap.Logger
}

// NewPaymentService wires the checkout backend. provider may be nil, in which
// case session creation fails with ErrPaymentsDisabled.
func NewPaymentService(provider CheckoutProvider, plans PlanStore, sessions CheckoutSessionStore, baseURL string, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		provider: provider,
		plans:    plans,
		sessions: sessions,
		baseURL:  strings.TrimRight(baseURL, "/"),
		logger:   logger.Named("payment"),
	}
}

// CreateCheckoutSession creates a hosted checkout session for plan and
// returns its id.
func (s *PaymentService) CreateCheckoutSession(ctx context.Context, plan string) (string, error) {
	if !models.IsPlan(plan) {
		return "", fmt.Errorf("%w: %q", ErrUnknownPlan, plan)
	}
	if s.provider == nil {
		return "", ErrPaymentsDisabled
	}

	p, err := s.plans.GetBySlug(ctx, plan)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("%w: %q", ErrUnknownPlan, plan)
	}
	if err != nil {
		return "", fmt.Errorf("failed to load plan %s: %w", plan, err)
	}
	if !p.Purchasable() {
		return "", fmt.Errorf("%w: %s", ErrPlanNotPurchasable, plan)
	}

	session, err := s.provider.CreateCheckoutSession(ctx, payment.SessionParams{
		PriceID:    p.StripePriceID,
		Plan:       p.Slug,
		SuccessURL: s.baseURL + "/?checkout=success&session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  s.baseURL + "/#pricing",
	})
	if err != nil {
		return "", err
	}

	record := &models.CheckoutSession{
		Plan:            p.Slug,
		StripeSessionID: session.ID,
		StripePriceID:   p.StripePriceID,
		Status:          models.CheckoutStatusPending,
	}
	// The session exists at Stripe either way; a missing record only means the
	// webhook will have nothing to update.
	if err := s.sessions.Create(ctx, record); err != nil {
		s.logger.Error("failed to record checkout session",
			zap.String("session_id", session.ID), zap.String("plan", p.Slug), zap.Error(err))
	}

	s.logger.Info("checkout session created", zap.String("session_id", session.ID), zap.String("plan", p.Slug))
	return session.ID, nil
}

// HandleStripeWebhook updates recorded sessions from Stripe events.
func (s *PaymentService) HandleStripeWebhook(ctx context.Context, event *stripe.Event) error {
	var status string
	switch event.Type {
	case "checkout.session.completed":
		status = models.CheckoutStatusCompleted
	case "checkout.session.expired", "checkout.session.async_payment_failed":
		status = models.CheckoutStatusFailed
	default:
		return nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return fmt.Errorf("failed to decode checkout session: %w", err)
	}

	record, err := s.sessions.GetByStripeID(ctx, session.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Warn("webhook for unknown checkout session", zap.String("session_id", session.ID), zap.String("type", string(event.Type)))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load checkout session %s: %w", session.ID, err)
	}

	record.Status = status
	if session.CustomerDetails != nil && session.CustomerDetails.Email != "" {
		record.CustomerEmail = session.CustomerDetails.Email
	}
	if err := s.sessions.Update(ctx, record); err != nil {
		return fmt.Errorf("failed to update checkout session %s: %w", session.ID, err)
	}

	s.logger.Info("checkout session updated", zap.String("session_id", session.ID), zap.String("status", status))
	return nil
}

// Plans returns the catalog in page order.
func (s *PaymentService) Plans(ctx context.Context) ([]models.Plan, error) {
	return s.plans.GetAll(ctx)
}
