package payment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sefazor/textback-landing/pkg/payment"
)

type resolverStub struct {
	calls []string
	url   string
	err   error
}

func (r *resolverStub) CheckoutURL(_ context.Context, sessionID string) (string, error) {
	r.calls = append(r.calls, sessionID)
	return r.url, r.err
}

func TestLoadHostedCheckout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		key     string
		mode    payment.Mode
		wantErr bool
	}{
		{name: "test key", key: "pk_test_51abc", mode: payment.ModeTest},
		{name: "live key", key: "pk_live_51abc", mode: payment.ModeLive},
		{name: "empty", key: "", wantErr: true},
		{name: "prefix only", key: "pk_test_", wantErr: true},
		{name: "secret key", key: "sk_test_51abc", wantErr: true},
		{name: "garbage", key: "hello", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := payment.LoadHostedCheckout(tt.key, &resolverStub{})
			if tt.wantErr {
				require.ErrorIs(t, err, payment.ErrInvalidPublishableKey)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.mode, h.Mode())
		})
	}
}

func TestRedirectToCheckout(t *testing.T) {
	t.Parallel()

	t.Run("navigates to resolved url", func(t *testing.T) {
		resolver := &resolverStub{url: "https://checkout.stripe.com/c/pay/cs_test_123"}
		h, err := payment.LoadHostedCheckout("pk_test_key", resolver)
		require.NoError(t, err)

		var visited []string
		nav := payment.NavigatorFunc(func(url string) error {
			visited = append(visited, url)
			return nil
		})

		require.NoError(t, h.RedirectToCheckout(context.Background(), nav, "cs_test_123"))
		assert.Equal(t, []string{"cs_test_123"}, resolver.calls)
		assert.Equal(t, []string{"https://checkout.stripe.com/c/pay/cs_test_123"}, visited)
	})

	t.Run("empty session id", func(t *testing.T) {
		resolver := &resolverStub{url: "https://example.com"}
		h, err := payment.LoadHostedCheckout("pk_test_key", resolver)
		require.NoError(t, err)

		err = h.RedirectToCheckout(context.Background(), failingNavigator(t), "")
		require.ErrorIs(t, err, payment.ErrMissingSessionID)
		assert.Empty(t, resolver.calls)
	})

	t.Run("mode mismatch", func(t *testing.T) {
		resolver := &resolverStub{url: "https://example.com"}
		h, err := payment.LoadHostedCheckout("pk_test_key", resolver)
		require.NoError(t, err)

		err = h.RedirectToCheckout(context.Background(), failingNavigator(t), "cs_live_999")
		require.ErrorIs(t, err, payment.ErrSessionModeMismatch)
		assert.Empty(t, resolver.calls)
	})

	t.Run("resolver error", func(t *testing.T) {
		resolver := &resolverStub{err: errors.New("no such session")}
		h, err := payment.LoadHostedCheckout("pk_live_key", resolver)
		require.NoError(t, err)

		err = h.RedirectToCheckout(context.Background(), failingNavigator(t), "cs_live_1")
		require.EqualError(t, err, "no such session")
	})

	t.Run("navigator error", func(t *testing.T) {
		h, err := payment.LoadHostedCheckout("pk_test_key", &resolverStub{url: "https://example.com"})
		require.NoError(t, err)

		nav := payment.NavigatorFunc(func(string) error { return errors.New("response already sent") })
		require.EqualError(t, h.RedirectToCheckout(context.Background(), nav, "cs_test_1"), "response already sent")
	})
}

func failingNavigator(t *testing.T) payment.Navigator {
	t.Helper()
	return payment.NavigatorFunc(func(url string) error {
		t.Errorf("unexpected navigation to %s", url)
		return nil
	})
}
