package fetch

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
)

// ErrorKind classifies a failed fetch. Failures terminate a single service's
// pipeline and are recorded; they never abort a discovery batch.
type ErrorKind string

const (
	KindTimeout        ErrorKind = "timeout"
	KindConnection     ErrorKind = "connection_error"
	KindHTTPStatus     ErrorKind = "http_error"
	KindParse          ErrorKind = "parse_error"
	KindNoFeatureTypes ErrorKind = "no_feature_types"
	KindNoFeatures     ErrorKind = "no_features"
	KindUnsupported    ErrorKind = "unsupported_service_type"
)

// Error is a classified fetch failure.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindHTTPStatus:
		return fmt.Sprintf("%s: status %d", e.Kind, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Kind extracts the classification from err, defaulting to connection_error
// for unclassified failures.
func Kind(err error) ErrorKind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindConnection
}

// IsTimeout reports whether err is a classified timeout.
func IsTimeout(err error) bool { return Kind(err) == KindTimeout }

func classify(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Err: err}
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &Error{Kind: KindTimeout, Err: err}
	}
	var ue *url.Error
	if errors.As(err, &ue) && ue.Timeout() {
		return &Error{Kind: KindTimeout, Err: err}
	}
	return &Error{Kind: KindConnection, Err: err}
}
