package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sefazor/textback-landing/internal/models"
	"github.com/sefazor/textback-landing/pkg/utils"
)

func validLead() models.LeadRequest {
	return models.LeadRequest{
		Name:           "  Dana Reyes ",
		Business:       "Reyes Plumbing",
		Industry:       "Plumbing",
		Email:          "Dana@Reyes.Test",
		Phone:          "(555) 010-2030",
		Plan:           models.PlanMultiAgent,
		TurnstileToken: "tok",
	}
}

func TestSubmitLead(t *testing.T) {
	t.Parallel()

	leads := &fakeLeads{}
	notifier := &fakeNotifier{}
	captcha := &fakeCaptcha{}
	svc := NewLeadService(leads, notifier, captcha, utils.NewValidator(), zap.NewNop())

	lead, err := svc.Submit(context.Background(), validLead(), LeadMeta{IP: "203.0.113.7", UserAgent: "test"})
	require.NoError(t, err)

	assert.Equal(t, "Dana Reyes", lead.Name)
	assert.Equal(t, "dana@reyes.test", lead.Email)
	assert.Equal(t, models.PlanMultiAgent, lead.Plan)
	assert.Equal(t, "203.0.113.7", lead.IP)
	require.Len(t, leads.created, 1)
	assert.Equal(t, []string{"tok"}, captcha.tokens)
	assert.Equal(t, 1, notifier.notified)
	assert.Equal(t, 1, notifier.confirmed)
}

func TestSubmitLeadValidation(t *testing.T) {
	t.Parallel()

	req := validLead()
	req.Email = "not-an-email"
	req.Plan = "platinum"
	req.Phone = ""

	leads := &fakeLeads{}
	captcha := &fakeCaptcha{}
	svc := NewLeadService(leads, &fakeNotifier{}, captcha, utils.NewValidator(), zap.NewNop())

	_, err := svc.Submit(context.Background(), req, LeadMeta{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"email", "phone", "plan"}, verr.Fields)
	assert.Empty(t, leads.created)
	assert.Empty(t, captcha.tokens)
}

func TestSubmitLeadWithoutPlan(t *testing.T) {
	t.Parallel()

	req := validLead()
	req.Plan = ""

	svc := NewLeadService(&fakeLeads{}, &fakeNotifier{}, &fakeCaptcha{}, utils.NewValidator(), zap.NewNop())

	lead, err := svc.Submit(context.Background(), req, LeadMeta{})
	require.NoError(t, err)
	assert.Empty(t, lead.Plan)
}

func TestSubmitLeadCaptchaRejected(t *testing.T) {
	t.Parallel()

	leads := &fakeLeads{}
	svc := NewLeadService(leads, &fakeNotifier{}, &fakeCaptcha{err: errBoom}, utils.NewValidator(), zap.NewNop())

	_, err := svc.Submit(context.Background(), validLead(), LeadMeta{})
	require.ErrorIs(t, err, ErrCaptchaFailed)
	assert.Empty(t, leads.created)
}

func TestSubmitLeadStoreFailure(t *testing.T) {
	t.Parallel()

	notifier := &fakeNotifier{}
	svc := NewLeadService(&fakeLeads{err: errBoom}, notifier, &fakeCaptcha{}, utils.NewValidator(), zap.NewNop())

	_, err := svc.Submit(context.Background(), validLead(), LeadMeta{})
	require.ErrorIs(t, err, errBoom)
	assert.Zero(t, notifier.notified)
}

func TestSubmitLeadMailFailureIsLogged(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	svc := NewLeadService(&fakeLeads{}, &fakeNotifier{err: errBoom}, &fakeCaptcha{}, utils.NewValidator(), zap.New(core))

	lead, err := svc.Submit(context.Background(), validLead(), LeadMeta{})
	require.NoError(t, err)
	assert.NotNil(t, lead)
	assert.Equal(t, 1, logs.FilterMessage("failed to notify sales").Len())
	assert.Equal(t, 1, logs.FilterMessage("failed to confirm lead").Len())
}

func TestListLeads(t *testing.T) {
	t.Parallel()

	leads := &fakeLeads{}
	svc := NewLeadService(leads, &fakeNotifier{}, &fakeCaptcha{}, utils.NewValidator(), zap.NewNop())

	_, err := svc.Submit(context.Background(), validLead(), LeadMeta{})
	require.NoError(t, err)

	got, err := svc.List(context.Background(), models.LeadFilter{Plan: models.PlanMultiAgent})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.List(context.Background(), models.LeadFilter{Plan: "platinum"})
	assert.ErrorIs(t, err, ErrUnknownPlan)
}
