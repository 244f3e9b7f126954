package router

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/sefazor/textback-landing/internal/handler"
	"github.com/sefazor/textback-landing/internal/middleware"
	"github.com/sefazor/textback-landing/internal/models"
)

type Options struct {
	CORSOrigins []string
	AccessLog   bool

	// RateLimit is the number of form posts allowed per IP per minute.
	RateLimit int
}

type Handlers struct {
	Page     *handler.PageHandler
	Checkout *handler.CheckoutHandler
	Payment  *handler.PaymentHandler
	Lead     *handler.LeadHandler
	Admin    *handler.AdminHandler
	Asset    *handler.AssetHandler
}

// New builds the HTTP application with every route of the landing service.
func New(opts Options, h Handlers, auth middleware.TokenAuthorizer, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "textback-landing",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(log),
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(opts.CORSOrigins, ", "),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST",
	}))
	if opts.AccessLog {
		app.Use(logger.New())
	}

	// Page
	app.Get("/", h.Page.Landing)
	app.Post("/checkout/:plan", rateLimiter(opts.RateLimit), h.Checkout.StartCheckout)
	app.Get("/assets/*", h.Asset.ServeAsset)
	app.Get("/qr/:plan.png", h.Asset.PlanQRCode)

	api := app.Group("/api")

	// Public routes
	api.Post("/create-checkout-session", h.Payment.CreateCheckoutSession)
	api.Post("/payments/webhook", h.Payment.HandleStripeWebhook)
	api.Post("/leads", rateLimiter(opts.RateLimit), h.Lead.SubmitLead)
	api.Post("/admin/login", rateLimiter(opts.RateLimit), h.Admin.Login)

	// Protected routes
	api.Get("/leads", middleware.AdminAuth(auth, log), h.Lead.ListLeads)

	return app
}

// rateLimiter returns a per-IP limiter with its own counters, so each route
// it guards has a separate budget.
func rateLimiter(perMinute int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        perMinute,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(models.ErrorResponse("Too many requests"))
		},
	})
}

func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(code).JSON(models.ErrorResponse(statusMessage(code)))
		}
		return c.Status(code).SendString(statusMessage(code))
	}
}

func statusMessage(code int) string {
	if msg := fiber.NewError(code).Message; msg != "" {
		return msg
	}
	return "Error"
}
