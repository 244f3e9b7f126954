package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/sefazor/textback-landing/internal/models"
	"github.com/sefazor/textback-landing/internal/service"
	"github.com/sefazor/textback-landing/pkg/payment"
	"github.com/sefazor/textback-landing/pkg/utils"
)

type PaymentHandler struct {
	payments      PaymentProcessor
	validator     *utils.Validator
	webhookSecret string
	logger        *zap.Logger
}

func NewPaymentHandler(payments PaymentProcessor, validator *utils.Validator, webhookSecret string, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		payments:      payments,
		validator:     validator,
		webhookSecret: webhookSecret,
		logger:        logger.Named("payment_handler"),
	}
}

// CreateCheckoutSession answers the checkout initiator with a session id.
func (h *PaymentHandler) CreateCheckoutSession(c *fiber.Ctx) error {
	var req models.CreateCheckoutSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			models.FieldErrorResponse("Invalid plan", utils.InvalidFields(err)))
	}

	sessionID, err := h.payments.CreateCheckoutSession(c.UserContext(), req.Plan)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrUnknownPlan):
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid plan"))
	case errors.Is(err, service.ErrPlanNotPurchasable):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse("Plan is not available for online checkout"))
	case errors.Is(err, service.ErrPaymentsDisabled):
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.ErrorResponse("Payments are not available"))
	default:
		h.logger.Error("checkout session failed", zap.String("plan", req.Plan), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(models.ErrorResponse("Payment provider error"))
	}

	return c.JSON(models.CreateCheckoutSessionResponse{SessionID: sessionID})
}

func (h *PaymentHandler) HandleStripeWebhook(c *fiber.Ctx) error {
	event, err := payment.ConstructEvent(c.Body(), c.Get("Stripe-Signature"), h.webhookSecret)
	if errors.Is(err, payment.ErrMissingWebhookSecret) {
		h.logger.Error("webhook received but STRIPE_WEBHOOK_SECRET is not set")
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.ErrorResponse("Webhooks are not configured"))
	}
	if err != nil {
		h.logger.Warn("webhook rejected", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid webhook signature"))
	}

	if err := h.payments.HandleStripeWebhook(c.UserContext(), &event); err != nil {
		h.logger.Error("webhook processing failed", zap.String("type", string(event.Type)), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Webhook processing failed"))
	}

	return c.SendStatus(fiber.StatusOK)
}
