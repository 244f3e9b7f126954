package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidPublishableKey = errors.New("invalid publishable key")
	ErrMissingSessionID      = errors.New("missing checkout session id")
	ErrSessionModeMismatch   = errors.New("checkout session does not match the publishable key mode")
	ErrNoURLResolver         = errors.New("no checkout URL resolver configured")
)

// Mode is the Stripe environment a key or session belongs to.
type Mode string

const (
	ModeTest Mode = "test"
	ModeLive Mode = "live"
)

// URLResolver finds the hosted payment page of a checkout session.
type URLResolver interface {
	CheckoutURL(ctx context.Context, sessionID string) (string, error)
}

// Navigator moves the browser to another location. In the server it is bound
// to the current HTTP response.
type Navigator interface {
	Navigate(url string) error
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(url string) error

func (f NavigatorFunc) Navigate(url string) error {
	return f(url)
}

// HostedCheckout is the browser-side payment handle: it knows the publishable
// key and can send a visitor to the hosted checkout page of a session.
type HostedCheckout struct {
	publishableKey string
	mode           Mode
	resolver       URLResolver
}

// LoadHostedCheckout validates the publishable key and returns a ready handle.
func LoadHostedCheckout(publishableKey string, resolver URLResolver) (*HostedCheckout, error) {
	mode, err := keyMode(publishableKey)
	if err != nil {
		return nil, err
	}
	if resolver == nil {
		return nil, ErrNoURLResolver
	}
	return &HostedCheckout{
		publishableKey: publishableKey,
		mode:           mode,
		resolver:       resolver,
	}, nil
}

func (h *HostedCheckout) Mode() Mode {
	return h.mode
}

// RedirectToCheckout sends nav to the hosted page for sessionID. Nothing
// happens on nav unless every check passes.
func (h *HostedCheckout) RedirectToCheckout(ctx context.Context, nav Navigator, sessionID string) error {
	if sessionID == "" {
		return ErrMissingSessionID
	}
	if mode := sessionMode(sessionID); mode != "" && mode != h.mode {
		return fmt.Errorf("%w: session is %s, key is %s", ErrSessionModeMismatch, mode, h.mode)
	}

	url, err := h.resolver.CheckoutURL(ctx, sessionID)
	if err != nil {
		return err
	}
	return nav.Navigate(url)
}

func keyMode(key string) (Mode, error) {
	switch {
	case strings.HasPrefix(key, "pk_test_") && len(key) > len("pk_test_"):
		return ModeTest, nil
	case strings.HasPrefix(key, "pk_live_") && len(key) > len("pk_live_"):
		return ModeLive, nil
	case strings.HasPrefix(key, "sk_"), strings.HasPrefix(key, "rk_"):
		return "", fmt.Errorf("%w: secret keys must not be used in the browser", ErrInvalidPublishableKey)
	default:
		return "", ErrInvalidPublishableKey
	}
}

// sessionMode returns "" for ids without a recognizable prefix; those are left
// to the resolver to reject.
func sessionMode(sessionID string) Mode {
	switch {
	case strings.HasPrefix(sessionID, "cs_test_"):
		return ModeTest
	case strings.HasPrefix(sessionID, "cs_live_"):
		return ModeLive
	}
	return ""
}
