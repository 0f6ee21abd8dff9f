package venueRepo

import "weddify/models"

// VenueSearchCriteria defines criteria for a venue search.
type VenueSearchCriteria struct {
	City        string
	MinCapacity int
	MaxPrice    int64
	Limit       int64
}

// VenueRepository defines methods for venue data access.
type VenueRepository interface {
	// GetByID retrieves a venue by its unique ID. Returns (nil, nil) when absent.
	GetByID(id string) (*models.Venue, error)
	// GetByVendor retrieves all venues owned by a vendor.
	GetByVendor(vendorID string) ([]models.Venue, error)
	// Search performs a criteria search over active venues.
	Search(criteria VenueSearchCriteria) ([]models.Venue, error)
	// Create inserts a new venue record.
	Create(venue *models.Venue) error
	// Update modifies an existing venue record.
	Update(venue *models.Venue) error
	// Delete removes a venue record by its ID.
	Delete(id string) error
}
