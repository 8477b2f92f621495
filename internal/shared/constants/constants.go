package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Bulk import caps
	MaxImportErrorMessages = 20

	// Context keys
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)
