package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/sefazor/textback-landing/internal/components"
	"github.com/sefazor/textback-landing/internal/models"
	"github.com/sefazor/textback-landing/internal/service"
)

type LeadHandler struct {
	leads  LeadProcessor
	logger *zap.Logger
}

func NewLeadHandler(leads LeadProcessor, logger *zap.Logger) *LeadHandler {
	return &LeadHandler{
		leads:  leads,
		logger: logger.Named("lead_handler"),
	}
}

// SubmitLead accepts the contact form. Browser posts are redirected back to
// the contact section; JSON clients get the stored lead.
func (h *LeadHandler) SubmitLead(c *fiber.Ctx) error {
	wantsJSON := c.Is("json")

	var req models.LeadRequest
	if err := c.BodyParser(&req); err != nil {
		if wantsJSON {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
		}
		return redirectLead(c, components.LeadInvalid)
	}

	lead, err := h.leads.Submit(c.UserContext(), req, service.LeadMeta{
		IP:        c.IP(),
		UserAgent: c.Get(fiber.HeaderUserAgent),
	})
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			if wantsJSON {
				return c.Status(fiber.StatusUnprocessableEntity).JSON(models.FieldErrorResponse("Invalid lead", verr.Fields))
			}
			return redirectLead(c, components.LeadInvalid)
		case errors.Is(err, service.ErrCaptchaFailed):
			if wantsJSON {
				return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse("Captcha verification failed"))
			}
			return redirectLead(c, components.LeadInvalid)
		default:
			h.logger.Error("failed to submit lead", zap.Error(err))
			if wantsJSON {
				return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to submit lead"))
			}
			return redirectLead(c, components.LeadFailed)
		}
	}

	if wantsJSON {
		return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(lead, "Lead received"))
	}
	return redirectLead(c, components.LeadReceived)
}

// ListLeads returns captured leads, newest first.
func (h *LeadHandler) ListLeads(c *fiber.Ctx) error {
	filter := models.LeadFilter{
		Plan:  c.Query("plan"),
		Limit: c.QueryInt("limit", 0),
	}

	leads, err := h.leads.List(c.UserContext(), filter)
	if errors.Is(err, service.ErrUnknownPlan) {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid plan"))
	}
	if err != nil {
		h.logger.Error("failed to list leads", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to list leads"))
	}

	return c.JSON(models.SuccessResponse(leads, ""))
}

func redirectLead(c *fiber.Ctx, status string) error {
	return c.Redirect("/?lead="+status+"#contact", fiber.StatusSeeOther)
}
