package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers         = "users"
	TableDishes        = "dishes"
	TablePackages      = "packages"
	TablePackageItems  = "package_items"
	TableCuisineTypes  = "cuisine_types"
	TableCategories    = "categories"
	TableSubCategories = "sub_categories"
	TableFreeForms     = "free_forms"
	TablePackageTypes  = "package_types"

	// Default values
	DefaultCurrency = "SAR"
	DefaultPieces   = 1

	// Upload limits
	MaxImageUploadBytes = 10 << 20 // 10MB
	UploadFormField     = "image"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgInvalidCredentials  = "Invalid email or password"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
)
