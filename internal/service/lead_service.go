package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sefazor/textback-landing/internal/models"
	"github.com/sefazor/textback-landing/pkg/utils"
)

var ErrCaptchaFailed = errors.New("captcha verification failed")

// ValidationError lists the lead fields that were missing or malformed.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid lead: " + strings.Join(e.Fields, ", ")
}

type LeadStore interface {
	Create(ctx context.Context, lead *models.Lead) error
	List(ctx context.Context, filter models.LeadFilter) ([]models.Lead, error)
}

type LeadNotifier interface {
	SendLeadNotification(ctx context.Context, lead *models.Lead) error
	SendLeadConfirmation(ctx context.Context, lead *models.Lead) error
}

type CaptchaVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}

// LeadMeta carries request details stored with a lead.
type LeadMeta struct {
	IP        string
	UserAgent string
}

type LeadService struct {
	leads     LeadStore
	notifier  LeadNotifier
	captcha   CaptchaVerifier
	validator *utils.Validator
	logger    *zap.Logger
}

func NewLeadService(leads LeadStore, notifier LeadNotifier, captcha CaptchaVerifier, validator *utils.Validator, logger *zap.Logger) *LeadService {
	return &LeadService{
		leads:     leads,
		notifier:  notifier,
		captcha:   captcha,
		validator: validator,
		logger:    logger.Named("leads"),
	}
}

// Submit validates and stores a contact form submission, then notifies sales
// and the submitter. Notification failures are logged only.
func (s *LeadService) Submit(ctx context.Context, req models.LeadRequest, meta LeadMeta) (*models.Lead, error) {
	normalize(&req)

	if err := s.validator.Struct(req); err != nil {
		if fields := utils.InvalidFields(err); len(fields) > 0 {
			return nil, &ValidationError{Fields: fields}
		}
		return nil, err
	}

	if err := s.captcha.Verify(ctx, req.TurnstileToken, meta.IP); err != nil {
		s.logger.Warn("captcha rejected lead", zap.String("ip", meta.IP), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrCaptchaFailed, err)
	}

	lead := &models.Lead{
		Name:      req.Name,
		Business:  req.Business,
		Industry:  req.Industry,
		Email:     req.Email,
		Phone:     req.Phone,
		Plan:      req.Plan,
		IP:        meta.IP,
		UserAgent: meta.UserAgent,
	}
	if err := s.leads.Create(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to store lead: %w", err)
	}

	s.logger.Info("lead captured", zap.Uint("id", lead.ID), zap.String("plan", lead.Plan), zap.String("industry", lead.Industry))

	if err := s.notifier.SendLeadNotification(ctx, lead); err != nil {
		s.logger.Error("failed to notify sales", zap.Uint("id", lead.ID), zap.Error(err))
	}
	if err := s.notifier.SendLeadConfirmation(ctx, lead); err != nil {
		s.logger.Error("failed to confirm lead", zap.Uint("id", lead.ID), zap.Error(err))
	}

	return lead, nil
}

func (s *LeadService) List(ctx context.Context, filter models.LeadFilter) ([]models.Lead, error) {
	if filter.Plan != "" && !models.IsPlan(filter.Plan) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlan, filter.Plan)
	}
	return s.leads.List(ctx, filter)
}

func normalize(req *models.LeadRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Business = strings.TrimSpace(req.Business)
	req.Industry = strings.TrimSpace(req.Industry)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)
	req.Plan = strings.TrimSpace(req.Plan)
}
