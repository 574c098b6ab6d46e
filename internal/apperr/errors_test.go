package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/base-checker/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("field is required")

	assert.Equal(t, "field is required", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("parse failed")
	err := apperr.NewValidationWrap("invalid expression", inner)

	assert.Equal(t, "invalid expression: parse failed", err.Error())
	assert.ErrorIs(t, err, inner)
}

func TestNewSubjectWrap_MatchesSentinel(t *testing.T) {
	err := apperr.NewSubjectWrap(`variable "c" was not declared`, "c", apperr.ErrUndeclared)

	assert.ErrorIs(t, err, apperr.ErrUndeclared)
	assert.NotErrorIs(t, err, apperr.ErrDuplicate)
	assert.Equal(t, "c", err.Subject)
	assert.Equal(t, `variable "c" was not declared: undeclared variable`, err.Error())
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewSubjectWrap(`variable "x" already declared`, "x", apperr.ErrDuplicate)

	wrapped := fmt.Errorf("declare: %w", original)
	doubleWrapped := fmt.Errorf("session: %w", wrapped)

	var ve *apperr.ValidationError
	require.True(t, errors.As(doubleWrapped, &ve), "errors.As should find ValidationError through double wrapping")
	assert.Equal(t, "x", ve.Subject)
	assert.ErrorIs(t, doubleWrapped, apperr.ErrDuplicate)
}

func TestValidationError_NotFoundForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("read line failed")
	wrapped := fmt.Errorf("session error: %w", plain)

	var ve *apperr.ValidationError
	assert.False(t, errors.As(wrapped, &ve), "errors.As should NOT find ValidationError in plain error chain")
}
