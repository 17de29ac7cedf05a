package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP_AppError(t *testing.T) {
	err := fmt.Errorf("service: %w", ErrInvalidPeriod)

	got := ToHTTP(err)

	assert.Equal(t, http.StatusBadRequest, got.Status)
	assert.Equal(t, CodeInvalidInput, got.Code)
	assert.Equal(t, ErrInvalidPeriod.Message, got.Message)
}

func TestToHTTP_UnknownErrorHidesMessage(t *testing.T) {
	got := ToHTTP(errors.New("pq: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.Equal(t, CodeInternalError, got.Code)
	assert.NotContains(t, got.Message, "pq")
}

func TestAppError_IsMatchesWrappedCopy(t *testing.T) {
	wrapped := Wrap(errors.New("boom"), ErrNotFound.Code, ErrNotFound.Message, ErrNotFound.HTTPStatus)

	assert.ErrorIs(t, wrapped, ErrNotFound)
	assert.NotErrorIs(t, wrapped, ErrConflict)
}

func TestMapValidationError(t *testing.T) {
	type payload struct {
		Year  int `validate:"required"`
		Month int `validate:"min=1,max=12"`
	}
	v := validator.New()

	err := MapValidationError(v.Struct(payload{Month: 3}))
	assert.Equal(t, "Year is required", err.Error())

	err = MapValidationError(v.Struct(payload{Year: 2024, Month: 13}))
	assert.Equal(t, "Month is invalid", err.Error())

	err = MapValidationError(errors.New("eof"))
	assert.Equal(t, "Invalid input", err.Error())
}
