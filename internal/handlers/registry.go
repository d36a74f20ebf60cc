package handlers

// AppHandlers bundles every handler the router registers.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	PesananHandler *PesananHandler
}
