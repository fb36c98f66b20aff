package handlers

// HandlerBundle groups the route handlers for registration.
type HandlerBundle struct {
	Auth     *AuthHandler
	Rooms    *RoomHandler
	Bookings *BookingHandler
	Reviews  *ReviewHandler
}
