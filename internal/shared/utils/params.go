package utils

import (
	"github.com/gin-gonic/gin"

	"mantis/internal/shared/constants"
	"mantis/internal/shared/errors"
)

// GetUserIDFromContext extracts the authenticated user ID placed in the gin
// context by the auth middleware. Returns an unauthorized error when the key
// is missing or carries an unexpected type.
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, errors.NewUnauthorizedError("user not authenticated")
	}

	userID, ok := value.(uint)
	if !ok || userID == 0 {
		return 0, errors.NewUnauthorizedError("user not authenticated")
	}

	return userID, nil
}
