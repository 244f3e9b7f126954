package checkout

import (
	"context"
	"sync"

	"github.com/sefazor/textback-landing/pkg/payment"
)

// Client is the payment handle the initiator hands session ids to.
type Client interface {
	RedirectToCheckout(ctx context.Context, nav payment.Navigator, sessionID string) error
}

// LoadFunc builds the payment handle.
type LoadFunc func() (Client, error)

// ClientLoader initializes the payment handle on first use and hands the same
// handle (or the same error) to every later caller.
type ClientLoader struct {
	once   sync.Once
	load   LoadFunc
	client Client
	err    error
}

func NewClientLoader(load LoadFunc) *ClientLoader {
	return &ClientLoader{load: load}
}

// Get blocks until the first initialization finishes.
func (l *ClientLoader) Get() (Client, error) {
	l.once.Do(func() {
		l.client, l.err = l.load()
	})
	return l.client, l.err
}

// HostedCheckoutLoader loads a payment.HostedCheckout from a publishable key.
func HostedCheckoutLoader(publishableKey string, resolver payment.URLResolver) *ClientLoader {
	return NewClientLoader(func() (Client, error) {
		h, err := payment.LoadHostedCheckout(publishableKey, resolver)
		if err != nil {
			return nil, err
		}
		return h, nil
	})
}
