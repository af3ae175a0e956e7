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

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"

	// Context keys
	ContextKeyAdminID   = "admin_id"
	ContextKeyAdminName = "admin_name"
	ContextKeyAdminRole = "admin_role"
	ContextKeyRequestID = "request_id"

	// Named sequences for the serial allocator
	SequenceTicket = "ticket"

	// Database table names
	TableTickets          = "tickets"
	TableTicketActivities = "ticket_activities"
	TableTicketComments   = "ticket_comments"
	TableOrganizations    = "organizations"
	TablePlatforms        = "platforms"
	TableAdmins           = "admins"
	TableCounters         = "counters"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgValidationFailed    = "Validation failed"
)
