package bookingRepo

import "gobookhotel/models"

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetAll retrieves all bookings, filtered by owner email when non-empty.
	GetAll(email string) ([]models.Booking, error)
	// Create inserts a new booking and returns the store-issued id.
	Create(booking *models.Booking) (string, error)
	// Delete removes a booking by its hex ObjectID and returns how many
	// documents were removed.
	Delete(id string) (int64, error)
}
