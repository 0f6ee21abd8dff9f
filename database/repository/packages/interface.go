package packageRepo

import (
	"context"
	"errors"

	"weddify/models"
)

// ErrNoCapacity is returned by Reserve when the conditional increment
// matched no document: the package is full, deactivated, or missing.
var ErrNoCapacity = errors.New("package has no remaining booking capacity")

// PackageRepository defines methods for vendor-package data access.
type PackageRepository interface {
	// GetByID retrieves a package by its unique ID. Returns (nil, nil) when absent.
	GetByID(id string) (*models.Package, error)
	// GetByVendor retrieves all packages owned by a vendor.
	GetByVendor(vendorID string) ([]models.Package, error)
	// Search retrieves active packages matching the criteria.
	Search(criteria PackageSearchCriteria) ([]models.Package, error)
	// Create inserts a new package record.
	Create(pkg *models.Package) error
	// Update modifies an existing package record.
	Update(pkg *models.Package) error
	// Delete removes a package record by its ID.
	Delete(id string) error

	// Reserve atomically claims one booking slot: it increments
	// currentBookings only while the package is available and below
	// maxBookings, flipping isAvailable off when the increment fills the
	// last slot. The whole check-and-increment is a single conditional
	// write; losing the race yields ErrNoCapacity. Returns the
	// post-update package state.
	Reserve(ctx context.Context, packageID string) (*models.Package, error)
	// Release undoes a reservation: decrements currentBookings and
	// re-opens availability. Used for rollback and cancellations.
	Release(ctx context.Context, packageID string) error
}

// PackageSearchCriteria defines criteria for a package search.
type PackageSearchCriteria struct {
	Category      string
	VendorID      string
	MaxPrice      int64
	OnlyAvailable bool
	Limit         int64
}
