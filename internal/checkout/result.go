package checkout

import "fmt"

// Cause classifies why a checkout attempt did not reach the hosted page.
type Cause string

const (
	CauseNone              Cause = ""
	CauseInitFailure       Cause = "init-failure"
	CauseNetworkFailure    Cause = "network-failure"
	CauseMalformedResponse Cause = "malformed-response"
	CauseRedirectFailure   Cause = "redirect-failure"
)

// Result is the outcome of one checkout attempt. A zero Cause means the
// visitor was sent to the hosted payment page.
type Result struct {
	Plan      string
	SessionID string
	Cause     Cause
	Err       error
}

func (r Result) OK() bool {
	return r.Cause == CauseNone
}

func (r Result) Error() string {
	if r.OK() {
		return ""
	}
	return fmt.Sprintf("checkout %s for plan %q: %v", r.Cause, r.Plan, r.Err)
}

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (r Result) Unwrap() error {
	return r.Err
}

func failed(plan string, cause Cause, err error) Result {
	return Result{Plan: plan, Cause: cause, Err: err}
}
