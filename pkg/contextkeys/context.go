package contextkeys

// ContextKey - тип для ключей контекста, чтобы избежать коллизий
type ContextKey string

const (
	// UserIDContextKey - ключ, под которым middleware кладет ID пользователя
	UserIDContextKey ContextKey = "userID"

	// ClaimsContextKey - ключ для полных JWT claims
	ClaimsContextKey ContextKey = "claims"

	// RequestIDContextKey - ключ для request ID
	RequestIDContextKey ContextKey = "requestID"
)
