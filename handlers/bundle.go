// File: lokseva/handlers/bundle.go
package handlers

import "lokseva/services/user"

// HandlerBundle aggregates the handlers the route registry wires up.
type HandlerBundle struct {
	Auth    *AuthHandler
	Booking *BookingHandler
	Review  *ReviewHandler

	// UserService backs the admin session middleware.
	UserService user.UserService
}
