package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sefazor/textback-landing/internal/models"
	"github.com/sefazor/textback-landing/pkg/payment"
)

const pricingAnchor = "/#pricing"

type CheckoutHandler struct {
	runner CheckoutRunner
}

func NewCheckoutHandler(runner CheckoutRunner) *CheckoutHandler {
	return &CheckoutHandler{runner: runner}
}

// StartCheckout runs the checkout flow for a plan button. The browser is sent
// to the hosted payment page, or back to the pricing section when the flow
// fails. Failures are only visible in the operator log.
func (h *CheckoutHandler) StartCheckout(c *fiber.Ctx) error {
	plan := c.Params("plan")
	if !models.IsPlan(plan) {
		return c.Redirect(pricingAnchor, fiber.StatusSeeOther)
	}

	navigated := false
	nav := payment.NavigatorFunc(func(url string) error {
		navigated = true
		return c.Redirect(url, fiber.StatusSeeOther)
	})

	h.runner.Run(c.UserContext(), plan, nav)

	if !navigated {
		return c.Redirect(pricingAnchor, fiber.StatusSeeOther)
	}
	return nil
}
