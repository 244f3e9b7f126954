package handler

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/stripe/stripe-go/v74"

	"github.com/sefazor/textback-landing/internal/models"
	"github.com/sefazor/textback-landing/internal/service"
	"github.com/sefazor/textback-landing/pkg/payment"
	"github.com/sefazor/textback-landing/pkg/storage"
)

var errBoom = errors.New("boom")

type stubPlans struct {
	plans []models.Plan
	err   error
}

func (s stubPlans) Plans(context.Context) ([]models.Plan, error) {
	return s.plans, s.err
}

type stubPayments struct {
	plans  []string
	id     string
	err    error
	events []*stripe.Event
}

func (s *stubPayments) CreateCheckoutSession(_ context.Context, plan string) (string, error) {
	s.plans = append(s.plans, plan)
	return s.id, s.err
}

func (s *stubPayments) HandleStripeWebhook(_ context.Context, event *stripe.Event) error {
	s.events = append(s.events, event)
	return s.err
}

type stubLeads struct {
	requests []models.LeadRequest
	metas    []service.LeadMeta
	filters  []models.LeadFilter
	err      error
}

func (s *stubLeads) Submit(_ context.Context, req models.LeadRequest, meta service.LeadMeta) (*models.Lead, error) {
	s.requests = append(s.requests, req)
	s.metas = append(s.metas, meta)
	if s.err != nil {
		return nil, s.err
	}
	return &models.Lead{ID: 1, Name: req.Name, Plan: req.Plan}, nil
}

func (s *stubLeads) List(_ context.Context, filter models.LeadFilter) ([]models.Lead, error) {
	s.filters = append(s.filters, filter)
	if s.err != nil {
		return nil, s.err
	}
	return []models.Lead{{ID: 1, Plan: filter.Plan}}, nil
}

// stubRunner navigates to url unless url is empty.
type stubRunner struct {
	url   string
	plans []string
}

func (s *stubRunner) Run(_ context.Context, plan string, nav payment.Navigator) {
	s.plans = append(s.plans, plan)
	if s.url != "" {
		_ = nav.Navigate(s.url)
	}
}

type stubAdmin struct {
	password string
	err      error
}

func (s stubAdmin) Login(password string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if password != s.password {
		return "", service.ErrInvalidCredentials
	}
	return "signed-token", nil
}

type memStore map[string]string

func (m memStore) Get(_ context.Context, key string) (*storage.Asset, error) {
	body, ok := m[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &storage.Asset{
		Body:        io.NopCloser(strings.NewReader(body)),
		ContentType: "image/png",
		Size:        int64(len(body)),
	}, nil
}

func (m memStore) Upload(_ context.Context, key string, src io.Reader, _ string) error {
	b, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	m[key] = string(b)
	return nil
}
