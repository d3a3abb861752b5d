package resilience

import (
	"errors"
	"net"
	"strings"
	"syscall"
)

// TransientError marks a provider failure as safe to retry. The places
// client wraps 429 and 5xx responses in it; the status code is kept for
// logging.
type TransientError struct {
	Err        error
	StatusCode int
}

func (e *TransientError) Error() string {
	return e.Err.Error()
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// NewTransientError wraps err as transient, recording the HTTP status
// that triggered it (0 when the failure was not an HTTP response).
func NewTransientError(err error, statusCode int) *TransientError {
	return &TransientError{Err: err, StatusCode: statusCode}
}

// Directory and LLM calls surface network problems as wrapped client
// errors whose chains are not always inspectable, so a few known
// message fragments are matched as a fallback.
var transientFragments = []string{
	"connection reset by peer",
	"no such host",
	"tls handshake timeout",
	"i/o timeout",
}

// IsTransient reports whether err is worth retrying: an explicit
// TransientError, a network timeout, a refused or reset connection, or a
// known transient message fragment. Auth failures, bad requests, and
// parse errors are permanent and return false.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var te *TransientError
	if errors.As(err, &te) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, f := range transientFragments {
		if strings.Contains(msg, f) {
			return true
		}
	}
	return false
}
