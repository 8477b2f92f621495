package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mantis/internal/shared/constants"
	"mantis/internal/shared/errors"
)

func newParamTestContext() *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	return c
}

func TestGetUserIDFromContext(t *testing.T) {
	t.Run("returns ID set by middleware", func(t *testing.T) {
		c := newParamTestContext()
		c.Set(constants.ContextKeyUserID, uint(42))

		userID, err := GetUserIDFromContext(c)
		require.NoError(t, err)
		assert.Equal(t, uint(42), userID)
	})

	t.Run("missing key is unauthorized", func(t *testing.T) {
		c := newParamTestContext()

		_, err := GetUserIDFromContext(c)
		require.Error(t, err)
		assert.True(t, errors.IsUnauthorized(err))
	})

	t.Run("wrong type is unauthorized", func(t *testing.T) {
		c := newParamTestContext()
		c.Set(constants.ContextKeyUserID, "42")

		_, err := GetUserIDFromContext(c)
		require.Error(t, err)
		assert.True(t, errors.IsUnauthorized(err))
	})
}
