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
	"testing"

	"github.com/stretchr/testify/assert"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindTimeout, "Timeout"},
		{KindConnection, "ConnectionError"},
		{KindRequest, "RequestError"},
		{KindUnknown, "UnknownError"},
		{Kind(99), "UnknownError"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.kind.String())
	}
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", &Error{Kind: KindTimeout, Op: "search", Err: context.DeadlineExceeded})
	assert.Equal(t, KindTimeout, KindOf(wrapped))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestClassifyTransport(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{"deadline", fmt.Errorf("get: %w", context.DeadlineExceeded), KindTimeout},
		{"net timeout", &net.OpError{Op: "read", Err: timeoutErr{}}, KindTimeout},
		{"dial refused", &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}, KindConnection},
		{"dns", &net.DNSError{Err: "no such host", Name: "example.invalid"}, KindConnection},
		{"reset", fmt.Errorf("read: %w", syscall.ECONNRESET), KindConnection},
		{"eof", fmt.Errorf("get: %w", io.EOF), KindConnection},
		{"untrusted certificate", fmt.Errorf("get: %w", &tls.CertificateVerificationError{Err: x509.UnknownAuthorityError{}}), KindConnection},
		{"unknown authority", x509.UnknownAuthorityError{}, KindConnection},
		{"hostname mismatch", x509.HostnameError{Certificate: &x509.Certificate{}, Host: "www.themealdb.com"}, KindConnection},
		{"not tls", tls.RecordHeaderError{Msg: "first record does not look like a TLS handshake"}, KindConnection},
		{"other", errors.New("unsupported protocol scheme"), KindRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyTransport(tt.err))
		})
	}
}

func TestClassifyBody(t *testing.T) {
	assert.Equal(t, KindTimeout, classifyBody(context.DeadlineExceeded))
	assert.Equal(t, KindConnection, classifyBody(&net.OpError{Op: "read", Err: syscall.ECONNRESET}))
	assert.Equal(t, KindRequest, classifyBody(io.ErrUnexpectedEOF))
	assert.Equal(t, KindRequest, classifyBody(io.EOF))
}

func TestErrorMessage(t *testing.T) {
	err := &Error{Kind: KindRequest, Op: "search", Err: &StatusError{StatusCode: 503}}
	assert.Equal(t, "mealdb search: RequestError: unexpected status 503", err.Error())
	assert.True(t, errors.Is(err, err.Err))
}
