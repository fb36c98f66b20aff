package reviewRepo

import "gobookhotel/models"

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// Create inserts a new review and returns the store-issued id.
	Create(review *models.Review) (string, error)
	// GetAll retrieves reviews, equality-filtered on the document "id" field
	// when refID is non-empty.
	GetAll(refID string) ([]models.Review, error)
}
