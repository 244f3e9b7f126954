package handler

import (
	"context"

	"github.com/stripe/stripe-go/v74"

	"github.com/sefazor/textback-landing/internal/models"
	"github.com/sefazor/textback-landing/internal/service"
	"github.com/sefazor/textback-landing/pkg/payment"
)

type PlanLister interface {
	Plans(ctx context.Context) ([]models.Plan, error)
}

type PaymentProcessor interface {
	CreateCheckoutSession(ctx context.Context, plan string) (string, error)
	HandleStripeWebhook(ctx context.Context, event *stripe.Event) error
}

type LeadProcessor interface {
	Submit(ctx context.Context, req models.LeadRequest, meta service.LeadMeta) (*models.Lead, error)
	List(ctx context.Context, filter models.LeadFilter) ([]models.Lead, error)
}

// CheckoutRunner starts a hosted checkout for plan and reports failures to
// the operator log.
type CheckoutRunner interface {
	Run(ctx context.Context, plan string, nav payment.Navigator)
}

type AdminAuthenticator interface {
	Login(password string) (string, error)
}
