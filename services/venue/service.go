// Package venue manages venue listings owned by vendors.
package venue

import (
	"fmt"
	"time"

	venueRepo "weddify/database/repository/venue"
	"weddify/models"

	"github.com/google/uuid"
)

// VenueService defines venue catalogue operations.
type VenueService interface {
	CreateVenue(vendorID string, venue models.Venue) (*models.Venue, error)
	GetVenueByID(id string) (*models.Venue, error)
	ListVendorVenues(vendorID string) ([]models.Venue, error)
	SearchVenues(criteria venueRepo.VenueSearchCriteria) ([]models.Venue, error)
	UpdateVenue(vendorID string, venue models.Venue) (*models.Venue, error)
	DeleteVenue(vendorID, venueID string) error
}

// DefaultVenueService is the production implementation.
type DefaultVenueService struct {
	Repo venueRepo.VenueRepository
}

func (s *DefaultVenueService) CreateVenue(vendorID string, venue models.Venue) (*models.Venue, error) {
	if venue.Name == "" || venue.City == "" {
		return nil, fmt.Errorf("venue name and city are required")
	}
	if venue.Capacity <= 0 {
		return nil, fmt.Errorf("venue capacity must be positive")
	}

	now := time.Now()
	venue.ID = uuid.New().String()
	venue.VendorID = vendorID
	venue.IsActive = true
	venue.CreatedAt = now
	venue.UpdatedAt = now

	if err := s.Repo.Create(&venue); err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}
	return &venue, nil
}

func (s *DefaultVenueService) GetVenueByID(id string) (*models.Venue, error) {
	v, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("venue with id %s not found", id)
	}
	return v, nil
}

func (s *DefaultVenueService) ListVendorVenues(vendorID string) ([]models.Venue, error) {
	return s.Repo.GetByVendor(vendorID)
}

func (s *DefaultVenueService) SearchVenues(criteria venueRepo.VenueSearchCriteria) ([]models.Venue, error) {
	return s.Repo.Search(criteria)
}

func (s *DefaultVenueService) UpdateVenue(vendorID string, venue models.Venue) (*models.Venue, error) {
	current, err := s.Repo.GetByID(venue.ID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, fmt.Errorf("venue with id %s not found", venue.ID)
	}
	if current.VendorID != vendorID {
		return nil, fmt.Errorf("venue %s does not belong to vendor %s", venue.ID, vendorID)
	}

	venue.VendorID = vendorID
	venue.CreatedAt = current.CreatedAt
	venue.UpdatedAt = time.Now()
	if err := s.Repo.Update(&venue); err != nil {
		return nil, fmt.Errorf("failed to update venue: %w", err)
	}
	return s.Repo.GetByID(venue.ID)
}

func (s *DefaultVenueService) DeleteVenue(vendorID, venueID string) error {
	current, err := s.Repo.GetByID(venueID)
	if err != nil {
		return err
	}
	if current == nil {
		return fmt.Errorf("venue with id %s not found", venueID)
	}
	if current.VendorID != vendorID {
		return fmt.Errorf("venue %s does not belong to vendor %s", venueID, vendorID)
	}
	return s.Repo.Delete(venueID)
}
