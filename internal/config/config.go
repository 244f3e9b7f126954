package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	VariantCheckout = "checkout"
	VariantContact  = "contact"
)

type StripeConfig struct {
	SecretKey      string `env:"SECRET_KEY"`
	PublishableKey string `env:"PUBLISHABLE_KEY"`
	WebhookSecret  string `env:"WEBHOOK_SECRET"`

	// Price ids per plan
	PriceSingleAgent string `env:"PRICE_SINGLE_AGENT"`
	PriceMultiAgent  string `env:"PRICE_MULTI_AGENT"`
	PriceEnterprise  string `env:"PRICE_ENTERPRISE"`
}

type R2Config struct {
	AccountID       string `env:"ACCOUNT_ID"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
	Bucket          string `env:"BUCKET"`
	PublicURL       string `env:"PUBLIC_URL"`
	// Endpoint overrides the account endpoint, e.g. for a local S3 server.
	Endpoint string `env:"ENDPOINT"`
	Prefix   string `env:"PREFIX" envDefault:"assets/"`
}

// EndpointURL returns the S3 API endpoint for the account.
func (c R2Config) EndpointURL() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	return "https://" + c.AccountID + ".r2.cloudflarestorage.com"
}

// Enabled reports whether enough R2 settings are present to build a client.
func (c R2Config) Enabled() bool {
	return c.AccountID != "" && c.AccessKeyID != "" && c.SecretAccessKey != "" && c.Bucket != ""
}

type EmailConfig struct {
	ResendAPIKey string `env:"RESEND_API_KEY"`
	FromAddress  string `env:"EMAIL_FROM_ADDRESS" envDefault:"hello@example.com"`
	FromName     string `env:"EMAIL_FROM_NAME" envDefault:"Personalized AI Solutions"`
	SalesInbox   string `env:"SALES_EMAIL"`
}

type TurnstileConfig struct {
	SiteKey   string `env:"SITE_KEY"`
	SecretKey string `env:"SECRET_KEY"`
}

type AdminConfig struct {
	JWTSecret    string `env:"JWT_SECRET"`
	PasswordHash string `env:"ADMIN_PASSWORD_HASH"`
}

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"APP_ENV" envDefault:"production"`
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	APIURL      string `env:"API_URL"`
	PageVariant string `env:"PAGE_VARIANT" envDefault:"checkout"`
	DatabaseURL string `env:"DATABASE_URL"`
	AssetsDir   string `env:"ASSETS_DIR" envDefault:"public/assets"`

	// ContactSection toggles the lead form on the page.
	ContactSection bool     `env:"CONTACT_SECTION" envDefault:"true"`
	CORSOrigins    []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:8080,http://localhost:5173"`
	RateLimit      int      `env:"RATE_LIMIT_MAX" envDefault:"20"`

	Stripe    StripeConfig    `envPrefix:"STRIPE_"`
	R2        R2Config        `envPrefix:"R2_"`
	Email     EmailConfig
	Turnstile TurnstileConfig `envPrefix:"CF_TURNSTILE_"`
	Admin     AdminConfig
}

// IsDevelopment reports whether the service runs with development defaults.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// CheckoutAPIURL is the base the checkout initiator posts to. Defaults to this
// service's own /api group.
func (c *Config) CheckoutAPIURL() string {
	if c.APIURL != "" {
		return strings.TrimRight(c.APIURL, "/")
	}
	return "http://127.0.0.1:" + c.Port + "/api"
}

// PriceIDs maps plan identifiers to the configured Stripe price ids.
func (c *Config) PriceIDs() map[string]string {
	return map[string]string{
		"single-agent": c.Stripe.PriceSingleAgent,
		"multi-agent":  c.Stripe.PriceMultiAgent,
		"enterprise":   c.Stripe.PriceEnterprise,
	}
}

func (c *Config) validate() error {
	switch c.PageVariant {
	case VariantCheckout, VariantContact:
	default:
		return fmt.Errorf("unsupported PAGE_VARIANT %q", c.PageVariant)
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("RATE_LIMIT_MAX must be positive, got %d", c.RateLimit)
	}
	return nil
}

// LoadConfig reads an optional .env file and parses the process environment.
func LoadConfig() (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	return parse(env.Options{})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
