package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/sefazor/textback-landing/internal/components"
	"github.com/sefazor/textback-landing/internal/models"
)

// PageOptions are the deployment settings that shape the landing page.
type PageOptions struct {
	Variant          string
	ShowContact      bool
	TurnstileSiteKey string
}

type PageHandler struct {
	plans  PlanLister
	opts   PageOptions
	logger *zap.Logger
}

func NewPageHandler(plans PlanLister, opts PageOptions, logger *zap.Logger) *PageHandler {
	return &PageHandler{
		plans:  plans,
		opts:   opts,
		logger: logger.Named("page_handler"),
	}
}

// Landing renders the page. ?variant= overrides the configured variant and
// ?plan= pre-selects a plan in the contact form when the form is shown.
func (h *PageHandler) Landing(c *fiber.Ctx) error {
	plans, err := h.plans.Plans(c.UserContext())
	if err != nil || len(plans) == 0 {
		if err != nil {
			h.logger.Warn("falling back to built-in plans", zap.Error(err))
		}
		plans = models.DefaultPlans()
	}

	data := components.PageData{
		Variant:          h.opts.Variant,
		Plans:            plans,
		ShowContact:      h.opts.ShowContact,
		TurnstileSiteKey: h.opts.TurnstileSiteKey,
		Year:             time.Now().Year(),
	}

	switch v := c.Query("variant"); v {
	case components.VariantCheckout, components.VariantContact:
		data.Variant = v
	}

	// Without a contact section there is nothing to pre-fill.
	if plan := c.Query("plan"); data.ShowContact && models.IsPlan(plan) {
		data.SelectedPlan = plan
	}

	switch status := c.Query("lead"); status {
	case components.LeadReceived, components.LeadInvalid, components.LeadFailed:
		data.LeadStatus = status
	}

	c.Type("html", "utf-8")
	return components.LandingPage(data).Render(c)
}
