package router

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"

	"github.com/sefazor/textback-landing/internal/components"
	"github.com/sefazor/textback-landing/internal/handler"
	"github.com/sefazor/textback-landing/internal/models"
	"github.com/sefazor/textback-landing/internal/service"
	"github.com/sefazor/textback-landing/pkg/payment"
	"github.com/sefazor/textback-landing/pkg/qrcode"
	"github.com/sefazor/textback-landing/pkg/storage"
	"github.com/sefazor/textback-landing/pkg/utils"
)

type plans struct{}

func (plans) Plans(context.Context) ([]models.Plan, error) { return models.DefaultPlans(), nil }

type payments struct{}

func (payments) CreateCheckoutSession(context.Context, string) (string, error) { return "cs_test_1", nil }
func (payments) HandleStripeWebhook(context.Context, *stripe.Event) error      { return nil }

type leads struct{}

func (leads) Submit(_ context.Context, req models.LeadRequest, _ service.LeadMeta) (*models.Lead, error) {
	return &models.Lead{Name: req.Name}, nil
}

func (leads) List(context.Context, models.LeadFilter) ([]models.Lead, error) {
	return []models.Lead{}, nil
}

type runner struct{}

func (runner) Run(_ context.Context, _ string, nav payment.Navigator) {
	_ = nav.Navigate("https://checkout.stripe.com/c/pay/cs_test_1")
}

type admin struct{}

func (admin) Login(password string) (string, error) {
	if password != "pw" {
		return "", service.ErrInvalidCredentials
	}
	return "token", nil
}

func (admin) Authorize(token string) error {
	if token != "token" {
		return errors.New("invalid")
	}
	return nil
}

func newTestApp(t *testing.T, rateLimit int) *fiber.App {
	t.Helper()

	log := zap.NewNop()
	v := utils.NewValidator()
	h := Handlers{
		Page:     handler.NewPageHandler(plans{}, handler.PageOptions{Variant: components.VariantCheckout, ShowContact: true}, log),
		Checkout: handler.NewCheckoutHandler(runner{}),
		Payment:  handler.NewPaymentHandler(payments{}, v, "whsec", log),
		Lead:     handler.NewLeadHandler(leads{}, log),
		Admin:    handler.NewAdminHandler(admin{}, v),
		Asset:    handler.NewAssetHandler(storage.NewLocalStorage(t.TempDir()), qrcode.NewQRService("https://example.com"), log),
	}
	return New(Options{CORSOrigins: []string{"https://example.com"}, RateLimit: rateLimit}, h, admin{}, log)
}

func TestRoutes(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, 100)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		ctype  string
		auth   string
		status int
	}{
		{name: "landing", method: "GET", target: "/", status: fiber.StatusOK},
		{name: "checkout", method: "POST", target: "/checkout/single-agent", status: fiber.StatusSeeOther},
		{name: "session", method: "POST", target: "/api/create-checkout-session", body: `{"plan":"single-agent"}`, ctype: fiber.MIMEApplicationJSON, status: fiber.StatusOK},
		{name: "lead", method: "POST", target: "/api/leads", body: url.Values{"name": {"Dana"}}.Encode(), ctype: fiber.MIMEApplicationForm, status: fiber.StatusSeeOther},
		{name: "login", method: "POST", target: "/api/admin/login", body: `{"password":"pw"}`, ctype: fiber.MIMEApplicationJSON, status: fiber.StatusOK},
		{name: "leads unauthenticated", method: "GET", target: "/api/leads", status: fiber.StatusUnauthorized},
		{name: "leads authenticated", method: "GET", target: "/api/leads", auth: "Bearer token", status: fiber.StatusOK},
		{name: "missing asset", method: "GET", target: "/assets/logo.png", status: fiber.StatusNotFound},
		{name: "qr", method: "GET", target: "/qr/enterprise.png", status: fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.target, body)
			if tt.ctype != "" {
				req.Header.Set("Content-Type", tt.ctype)
			}
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestUnknownAPIRouteReturnsJSON(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, 100)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body models.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "Not Found", body.Error)
}

func TestLeadPostsAreRateLimited(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, 2)

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/api/leads", strings.NewReader("name=Dana"))
		req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
		resp, err := app.Test(req)
		require.NoError(t, err)
		statuses = append(statuses, resp.StatusCode)
	}

	assert.Equal(t, []int{fiber.StatusSeeOther, fiber.StatusSeeOther, fiber.StatusTooManyRequests}, statuses)
}

func TestRateLimitsAreSeparatePerRoute(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, 2)

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/checkout/single-agent", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("POST", "/checkout/single-agent", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	req := httptest.NewRequest("POST", "/api/leads", strings.NewReader("name=Dana"))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
}
