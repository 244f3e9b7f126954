package service

import (
	"context"
	"errors"
	"sync"

	"github.com/stripe/stripe-go/v74"
	"gorm.io/gorm"

	"github.com/sefazor/textback-landing/internal/models"
	"github.com/sefazor/textback-landing/pkg/payment"
)

type fakePlans struct {
	plans []models.Plan
	err   error
}

func (f *fakePlans) GetBySlug(_ context.Context, slug string) (*models.Plan, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.plans {
		if p.Slug == slug {
			p := p
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePlans) GetAll(context.Context) ([]models.Plan, error) {
	return f.plans, f.err
}

type fakeSessions struct {
	mu        sync.Mutex
	byID      map[string]*models.CheckoutSession
	createErr error
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{byID: map[string]*models.CheckoutSession{}}
}

func (f *fakeSessions) Create(_ context.Context, s *models.CheckoutSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.byID[s.StripeSessionID] = s
	return nil
}

func (f *fakeSessions) GetByStripeID(_ context.Context, id string) (*models.CheckoutSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (f *fakeSessions) Update(_ context.Context, s *models.CheckoutSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[s.StripeSessionID] = s
	return nil
}

type fakeProvider struct {
	calls []payment.SessionParams
	id    string
	err   error
}

func (f *fakeProvider) CreateCheckoutSession(_ context.Context, p payment.SessionParams) (*stripe.CheckoutSession, error) {
	f.calls = append(f.calls, p)
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.CheckoutSession{ID: f.id}, nil
}

type fakeLeads struct {
	created []*models.Lead
	listed  []models.LeadFilter
	err     error
}

func (f *fakeLeads) Create(_ context.Context, l *models.Lead) error {
	if f.err != nil {
		return f.err
	}
	l.ID = uint(len(f.created) + 1)
	f.created = append(f.created, l)
	return nil
}

func (f *fakeLeads) List(_ context.Context, filter models.LeadFilter) ([]models.Lead, error) {
	f.listed = append(f.listed, filter)
	out := make([]models.Lead, 0, len(f.created))
	for _, l := range f.created {
		if filter.Plan == "" || l.Plan == filter.Plan {
			out = append(out, *l)
		}
	}
	return out, nil
}

type fakeNotifier struct {
	notified  int
	confirmed int
	err       error
}

func (f *fakeNotifier) SendLeadNotification(context.Context, *models.Lead) error {
	f.notified++
	return f.err
}

func (f *fakeNotifier) SendLeadConfirmation(context.Context, *models.Lead) error {
	f.confirmed++
	return f.err
}

type fakeCaptcha struct {
	tokens []string
	err    error
}

func (f *fakeCaptcha) Verify(_ context.Context, token, _ string) error {
	f.tokens = append(f.tokens, token)
	return f.err
}

var errBoom = errors.New("boom")
