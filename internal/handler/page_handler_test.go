package handler

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sefazor/textback-landing/internal/components"
	"github.com/sefazor/textback-landing/internal/models"
)

func getPage(t *testing.T, plans PlanLister, opts PageOptions, target string) (int, string) {
	t.Helper()

	h := NewPageHandler(plans, opts, zap.NewNop())
	app := fiber.New()
	app.Get("/", h.Landing)

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	return resp.StatusCode, string(body)
}

func TestLandingCheckoutVariant(t *testing.T) {
	t.Parallel()

	status, html := getPage(t, stubPlans{plans: models.DefaultPlans()},
		PageOptions{Variant: components.VariantCheckout, ShowContact: true}, "/")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, html, `action="/checkout/single-agent"`)
	assert.Contains(t, html, `action="/checkout/multi-agent"`)
}

func TestLandingVariantOverride(t *testing.T) {
	t.Parallel()

	opts := PageOptions{Variant: components.VariantCheckout, ShowContact: true}

	_, html := getPage(t, stubPlans{plans: models.DefaultPlans()}, opts, "/?variant=contact")
	assert.Contains(t, html, `href="/?plan=single-agent#contact"`)
	assert.NotContains(t, html, `action="/checkout/single-agent"`)

	_, html = getPage(t, stubPlans{plans: models.DefaultPlans()}, opts, "/?variant=bogus")
	assert.Contains(t, html, `action="/checkout/single-agent"`)
}

func TestLandingPlanSelection(t *testing.T) {
	t.Parallel()

	opts := PageOptions{Variant: components.VariantContact, ShowContact: true}

	_, html := getPage(t, stubPlans{plans: models.DefaultPlans()}, opts, "/?plan=multi-agent")
	assert.Contains(t, html, `<input type="hidden" name="plan" value="multi-agent">`)

	_, html = getPage(t, stubPlans{plans: models.DefaultPlans()}, opts, "/?plan=platinum")
	assert.Contains(t, html, `<input type="hidden" name="plan" value="">`)
}

func TestLandingPlanSelectionWithoutContactSection(t *testing.T) {
	t.Parallel()

	status, html := getPage(t, stubPlans{plans: models.DefaultPlans()},
		PageOptions{Variant: components.VariantContact, ShowContact: false}, "/?plan=multi-agent")

	assert.Equal(t, fiber.StatusOK, status)
	assert.NotContains(t, html, `id="contact"`)
	assert.NotContains(t, html, `<input type="hidden" name="plan"`)
}

func TestLandingLeadStatus(t *testing.T) {
	t.Parallel()

	opts := PageOptions{Variant: components.VariantCheckout, ShowContact: true}

	_, html := getPage(t, stubPlans{plans: models.DefaultPlans()}, opts, "/?lead=received")
	assert.Contains(t, html, "Thanks! We will be in touch shortly.")

	_, html = getPage(t, stubPlans{plans: models.DefaultPlans()}, opts, "/?lead=whatever")
	assert.NotContains(t, html, `role="alert"`)
	assert.NotContains(t, html, `role="status"`)
}

func TestLandingFallsBackToBuiltInPlans(t *testing.T) {
	t.Parallel()

	status, html := getPage(t, stubPlans{err: errBoom},
		PageOptions{Variant: components.VariantCheckout, ShowContact: true}, "/")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, html, "Single Agent")
	assert.Contains(t, html, "Enterprise")
}
