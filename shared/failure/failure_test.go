package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"shareit/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "Booking status is not WAITING",
	}

	assert.Equal(t, "Booking status is not WAITING", f.Error())
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		message string
	}{
		{name: "InvalidFromParam", failure: failure.InvalidFromParam, message: "from must be greater than or equal to 0"},
		{name: "InvalidSizeParam", failure: failure.InvalidSizeParam, message: "size must be greater than or equal to 1"},
		{name: "MissingSharerError", failure: failure.MissingSharerError, message: "X-Sharer-User-Id header is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, tt.failure.Code)
			assert.Equal(t, tt.message, tt.failure.Message)
		})
	}
}

func TestBadRequest(t *testing.T) {
	assert.Nil(t, failure.BadRequest(nil))

	err := failure.BadRequest(errors.New("decode failed"))
	assert.Equal(t, &failure.Failure{Code: http.StatusBadRequest, Message: "decode failed"}, err)
}

func TestFormattedConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "not found",
			err:     failure.NotFoundf("Booking with id=%d not found", 7),
			code:    http.StatusNotFound,
			message: "Booking with id=7 not found",
		},
		{
			name:    "bad request",
			err:     failure.BadRequestf("Unknown state: %s", "SOON"),
			code:    http.StatusBadRequest,
			message: "Unknown state: SOON",
		},
		{
			name:    "conflict",
			err:     failure.Conflictf("Email %s already exists", "a@b.c"),
			code:    http.StatusConflict,
			message: "Email a@b.c already exists",
		},
		{
			name:    "internal",
			err:     failure.InternalError(errors.New("boom")),
			code:    http.StatusInternalServerError,
			message: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "failure", err: failure.NotFound("missing"), code: http.StatusNotFound},
		{name: "wrapped failure", err: fmt.Errorf("service: %w", failure.Conflict("dup")), code: http.StatusConflict},
		{name: "plain error", err: errors.New("db down"), code: http.StatusInternalServerError},
		{name: "nil", err: nil, code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
		})
	}
}
