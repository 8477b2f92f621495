package utils

import (
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mantis/internal/shared/errors"
)

func TestBindingErrorToAppError_ValidationErrors(t *testing.T) {
	type form struct {
		Name     string `validate:"required"`
		Quantity int    `validate:"gt=0"`
	}

	err := validator.New().Struct(form{})
	require.Error(t, err)

	appErr := BindingErrorToAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Contains(t, appErr.Details, "name is required")
	assert.Contains(t, appErr.Details, "quantity must be greater than 0")
}

func TestBindingErrorToAppError_OtherError(t *testing.T) {
	assert.Nil(t, BindingErrorToAppError(fmt.Errorf("unexpected EOF")))
}
