package contextkeys

// Custom key type to avoid collisions with other context values.
type ContextKey string

// DBContextKey holds the request-scoped *gorm.DB: the connection pool in
// normal operation, or a transaction when a test wraps the request in one.
const DBContextKey = ContextKey("db")
