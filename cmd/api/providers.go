package main

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sefazor/textback-landing/internal/checkout"
	"github.com/sefazor/textback-landing/internal/config"
	"github.com/sefazor/textback-landing/internal/handler"
	"github.com/sefazor/textback-landing/internal/repository"
	"github.com/sefazor/textback-landing/internal/router"
	"github.com/sefazor/textback-landing/internal/service"
	"github.com/sefazor/textback-landing/pkg/captcha"
	"github.com/sefazor/textback-landing/pkg/database"
	"github.com/sefazor/textback-landing/pkg/email"
	"github.com/sefazor/textback-landing/pkg/payment"
	"github.com/sefazor/textback-landing/pkg/qrcode"
	"github.com/sefazor/textback-landing/pkg/storage"
	"github.com/sefazor/textback-landing/pkg/utils"
)

func provideDatabase(cfg *config.Config, log *zap.Logger) (*gorm.DB, func(), error) {
	db, err := database.NewDatabase(cfg.DatabaseURL, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := database.Close(db); err != nil {
			log.Warn("failed to close database", zap.Error(err))
		}
	}

	if err := database.RunMigrations(db); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	if err := database.SeedPlans(db, cfg.PriceIDs()); err != nil {
		cleanup()
		return nil, nil, err
	}
	return db, cleanup, nil
}

// provideStripe returns nil when no secret key is configured; checkout then
// fails with ErrPaymentsDisabled instead of the server refusing to start.
func provideStripe(cfg *config.Config, log *zap.Logger) *payment.StripeService {
	s, err := payment.NewStripeService(cfg.Stripe.SecretKey, nil)
	if err != nil {
		log.Warn("payments disabled", zap.Error(err))
		return nil
	}
	return s
}

func providePaymentService(s *payment.StripeService, plans *repository.PlanRepository, sessions *repository.CheckoutSessionRepository, cfg *config.Config, log *zap.Logger) *service.PaymentService {
	var provider service.CheckoutProvider
	if s != nil {
		provider = s
	}
	return service.NewPaymentService(provider, plans, sessions, cfg.BaseURL, log)
}

func provideCheckoutLoader(s *payment.StripeService, cfg *config.Config) *checkout.ClientLoader {
	var resolver payment.URLResolver
	if s != nil {
		resolver = s
	}
	return checkout.HostedCheckoutLoader(cfg.Stripe.PublishableKey, resolver)
}

func provideInitiator(loader *checkout.ClientLoader, cfg *config.Config, log *zap.Logger) *checkout.Initiator {
	return checkout.NewInitiator(cfg.CheckoutAPIURL(), loader, log)
}

func provideEmailService(cfg *config.Config, log *zap.Logger) *email.EmailService {
	var transport email.Transport
	if cfg.Email.ResendAPIKey != "" {
		transport = email.NewResendTransport(cfg.Email.ResendAPIKey)
	} else {
		log.Warn("RESEND_API_KEY not set, emails are only logged")
		transport = email.NewLogTransport(log.Named("email"))
	}
	return email.NewEmailService(transport, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.SalesInbox, log)
}

func provideTurnstile(cfg *config.Config) *captcha.Turnstile {
	return captcha.NewTurnstile(cfg.Turnstile.SecretKey)
}

func provideAdminService(cfg *config.Config, log *zap.Logger) *service.AdminService {
	return service.NewAdminService(cfg.Admin.PasswordHash, cfg.Admin.JWTSecret, log)
}

func provideAssetStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (storage.AssetStore, error) {
	if !cfg.R2.Enabled() {
		log.Info("serving assets from disk", zap.String("dir", cfg.AssetsDir))
		return storage.NewLocalStorage(cfg.AssetsDir), nil
	}
	return storage.NewCloudflareStorage(ctx, cfg.R2, log)
}

func provideQRService(cfg *config.Config) *qrcode.QRService {
	return qrcode.NewQRService(cfg.BaseURL)
}

func providePageHandler(payments *service.PaymentService, cfg *config.Config, log *zap.Logger) *handler.PageHandler {
	return handler.NewPageHandler(payments, handler.PageOptions{
		Variant:          cfg.PageVariant,
		ShowContact:      cfg.ContactSection,
		TurnstileSiteKey: cfg.Turnstile.SiteKey,
	}, log)
}

func providePaymentHandler(payments *service.PaymentService, v *utils.Validator, cfg *config.Config, log *zap.Logger) *handler.PaymentHandler {
	return handler.NewPaymentHandler(payments, v, cfg.Stripe.WebhookSecret, log)
}

func provideApp(cfg *config.Config, h router.Handlers, admin *service.AdminService, log *zap.Logger) *fiber.App {
	return router.New(router.Options{
		CORSOrigins: cfg.CORSOrigins,
		AccessLog:   true,
		RateLimit:   cfg.RateLimit,
	}, h, admin, log)
}
