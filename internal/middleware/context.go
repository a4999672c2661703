package middleware

// Context keys for the authenticated account and request tracing. UserName is
// the display name handlers surface when attributing dashboard actions.
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
	ContextKeyUserName  = "user_name"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"
)
