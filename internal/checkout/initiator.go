package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/sefazor/textback-landing/pkg/payment"
)

const sessionPath = "/create-checkout-session"

var (
	ErrBackendStatus    = errors.New("checkout backend returned an error status")
	ErrMissingSessionID = errors.New("checkout backend response has no sessionId")
)

type sessionRequest struct {
	Plan string `json:"plan"`
}

type sessionResponse struct {
	SessionID string `json:"sessionId"`
}

// Initiator starts a hosted checkout for a plan: it asks the backend for a
// session and hands the session id to the payment client.
type Initiator struct {
	apiURL string
	loader *ClientLoader
	http   *resty.Client
	logger *zap.Logger
}

func NewInitiator(apiURL string, loader *ClientLoader, logger *zap.Logger) *Initiator {
	apiURL = strings.TrimRight(apiURL, "/")
	return &Initiator{
		apiURL: apiURL,
		loader: loader,
		http:   resty.New().SetBaseURL(apiURL),
		logger: logger,
	}
}

// Initiate runs one checkout attempt. It issues at most one backend request and
// never retries. When the redirect succeeds it returns immediately.
func (i *Initiator) Initiate(ctx context.Context, plan string, nav payment.Navigator) Result {
	client, err := i.loader.Get()
	if err != nil {
		return failed(plan, CauseInitFailure, err)
	}

	resp, err := i.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(sessionRequest{Plan: plan}).
		Post(sessionPath)
	if err != nil {
		return failed(plan, CauseNetworkFailure, err)
	}
	if resp.IsError() {
		return failed(plan, CauseNetworkFailure, fmt.Errorf("%w: %s", ErrBackendStatus, resp.Status()))
	}

	var body sessionResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return failed(plan, CauseMalformedResponse, fmt.Errorf("failed to decode checkout response: %w", err))
	}
	if body.SessionID == "" {
		return failed(plan, CauseMalformedResponse, ErrMissingSessionID)
	}

	// The session id is single-use and short-lived: redirect right away.
	if err := client.RedirectToCheckout(ctx, nav, body.SessionID); err != nil {
		r := failed(plan, CauseRedirectFailure, err)
		r.SessionID = body.SessionID
		return r
	}
	return Result{Plan: plan, SessionID: body.SessionID}
}

// Run is the fire-and-forget form of Initiate: failures go to the operator log
// and are dropped.
func (i *Initiator) Run(ctx context.Context, plan string, nav payment.Navigator) {
	res := i.Initiate(ctx, plan, nav)
	if res.OK() {
		return
	}
	i.logger.Error("checkout error",
		zap.String("plan", res.Plan),
		zap.String("cause", string(res.Cause)),
		zap.String("session_id", res.SessionID),
		zap.Error(res.Err),
	)
}
