package roomRepo

import "gobookhotel/models"

// Price sort directives for GetAll.
const (
	SortNone = 0
	SortAsc  = 1
	SortDesc = -1
)

// RoomRepository defines methods for room data access.
type RoomRepository interface {
	// GetAll retrieves all rooms, optionally sorted by price per night.
	// SortNone keeps the collection's natural order.
	GetAll(priceOrder int) ([]models.Room, error)
	// GetByID retrieves a room by its hex ObjectID. A well-formed id that
	// matches nothing yields (nil, nil).
	GetByID(id string) (*models.Room, error)
}
