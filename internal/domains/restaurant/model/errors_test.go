package model

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRestaurantErrorIs(t *testing.T) {
	err := fmt.Errorf("create: %w", NewNameTaken("Na Telha"))

	assert.True(t, errors.Is(err, ErrNameTaken))
	assert.False(t, errors.Is(err, ErrRestaurantNotFound))
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
}

func TestGetErrorResponse(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid", NewInvalidArgument("invalid filter", errors.New("limit: must be between 1 and 100")), http.StatusBadRequest, CodeInvalidArgument},
		{"not found", NewRestaurantNotFound("x"), http.StatusNotFound, CodeRestaurantNotFound},
		{"conflict", NewNameTaken("Na Telha"), http.StatusConflict, CodeNameTaken},
		{"store", NewStoreUnavailable("find", errors.New("conn refused")), http.StatusServiceUnavailable, CodeStoreUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _, code := GetErrorResponse(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}

	_, msg, _ := GetErrorResponse(NewNameTaken("Na Telha"))
	assert.Equal(t, "a restaurant with this name already exists", msg)

	_, msg, _ = GetErrorResponse(NewStoreUnavailable("find", errors.New("password=secret")))
	assert.NotContains(t, msg, "secret")
}
