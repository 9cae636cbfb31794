package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransportError_Message(t *testing.T) {
	withStatus := &TransportError{Status: 503}
	assert.Equal(t, "unexpected status 503", withStatus.Error())

	cause := errors.New("connection refused")
	withCause := &TransportError{Err: cause}
	assert.Contains(t, withCause.Error(), "connection refused")
	assert.ErrorIs(t, withCause, cause)
}

func TestValidationError_MessageIsStable(t *testing.T) {
	err := &ValidationError{Fields: map[string][]string{
		"username": {"has already been taken"},
		"email":    {"is invalid", "is too long"},
	}}

	// field order is sorted so the message does not flap between runs
	assert.Equal(t, "email is invalid, is too long; username has already been taken", err.Error())
}

func TestValidationError_Empty(t *testing.T) {
	err := &ValidationError{}
	assert.Equal(t, "validation failed", err.Error())
}
