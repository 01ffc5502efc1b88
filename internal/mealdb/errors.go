package mealdb

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"
)

// Kind classifies a failed request.
type Kind int

const (
	KindUnknown Kind = iota
	KindTimeout
	KindConnection
	KindRequest
)

// String returns the user-facing classification name.
func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "Timeout"
	case KindConnection:
		return "ConnectionError"
	case KindRequest:
		return "RequestError"
	default:
		return "UnknownError"
	}
}

// ErrEmptyQuery is returned when a keyword search is attempted with a blank query.
var ErrEmptyQuery = errors.New("query must not be empty")

// Error is a classified request failure.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("mealdb %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// KindOf returns the classification carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var mErr *Error
	if errors.As(err, &mErr) {
		return mErr.Kind
	}
	return KindUnknown
}

// classifyTransport maps an error returned by http.Client.Do.
func classifyTransport(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}

	if isTLSFailure(err) {
		return KindConnection
	}

	var opErr *net.OpError
	var dnsErr *net.DNSError
	switch {
	case errors.As(err, &dnsErr), errors.As(err, &opErr):
		return KindConnection
	case errors.Is(err, syscall.ECONNREFUSED), errors.Is(err, syscall.ECONNRESET):
		return KindConnection
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return KindConnection
	}
	return KindRequest
}

// classifyBody maps an error raised while reading or decoding a response body.
func classifyBody(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) || errors.Is(err, syscall.ECONNRESET) {
		return KindConnection
	}
	return KindRequest
}

// isTLSFailure reports a handshake or certificate failure.
func isTLSFailure(err error) bool {
	var certErr *tls.CertificateVerificationError
	var recordErr tls.RecordHeaderError
	var authorityErr x509.UnknownAuthorityError
	var hostnameErr x509.HostnameError
	return errors.As(err, &certErr) ||
		errors.As(err, &recordErr) ||
		errors.As(err, &authorityErr) ||
		errors.As(err, &hostnameErr)
}
