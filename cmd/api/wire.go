//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/sefazor/textback-landing/internal/checkout"
	"github.com/sefazor/textback-landing/internal/config"
	"github.com/sefazor/textback-landing/internal/handler"
	"github.com/sefazor/textback-landing/internal/repository"
	"github.com/sefazor/textback-landing/internal/router"
	"github.com/sefazor/textback-landing/internal/service"
	"github.com/sefazor/textback-landing/pkg/captcha"
	"github.com/sefazor/textback-landing/pkg/email"
	"github.com/sefazor/textback-landing/pkg/utils"
)

func initializeApp(ctx context.Context, cfg *config.Config, log *zap.Logger) (*fiber.App, func(), error) {
	wire.Build(
		// Repositories
		provideDatabase,
		repository.NewPlanRepository,
		repository.NewLeadRepository,
		repository.NewCheckoutSessionRepository,

		// Payments
		provideStripe,
		providePaymentService,
		provideCheckoutLoader,
		provideInitiator,

		// Leads
		provideEmailService,
		provideTurnstile,
		utils.NewValidator,
		service.NewLeadService,
		wire.Bind(new(service.LeadStore), new(*repository.LeadRepository)),
		wire.Bind(new(service.LeadNotifier), new(*email.EmailService)),
		wire.Bind(new(service.CaptchaVerifier), new(*captcha.Turnstile)),

		// Admin
		provideAdminService,

		// Assets
		provideAssetStore,
		provideQRService,

		// Handlers
		providePageHandler,
		providePaymentHandler,
		handler.NewCheckoutHandler,
		wire.Bind(new(handler.CheckoutRunner), new(*checkout.Initiator)),
		handler.NewLeadHandler,
		wire.Bind(new(handler.LeadProcessor), new(*service.LeadService)),
		handler.NewAdminHandler,
		wire.Bind(new(handler.AdminAuthenticator), new(*service.AdminService)),
		handler.NewAssetHandler,
		wire.Struct(new(router.Handlers), "*"),

		// App
		provideApp,
	)
	return nil, nil, nil
}
