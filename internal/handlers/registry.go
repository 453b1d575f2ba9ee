package handlers

// AppHandlers groups every route handler for registration.
type AppHandlers struct {
	UserHandler    *UserHandler
	AuthHandler    *AuthHandler
	ProfileHandler *ProfileHandler
	PostHandler    *PostHandler
}
