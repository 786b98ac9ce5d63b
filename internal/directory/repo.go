package directory

import (
	"context"

	"gorm.io/gorm"

	"github.com/urevent360-byte/urevent360app-sub000/pkg/db/models"
)

// DirectoryRepository defines the read surface required by the search service.
type DirectoryRepository interface {
	ListVenues(ctx context.Context) ([]models.Venue, error)
	ListVendors(ctx context.Context) ([]models.Vendor, error)
}

// Repository exposes read-only access to the vendor and venue directory.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a directory repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListVenues returns the venue directory ordered by name.
func (r *Repository) ListVenues(ctx context.Context) ([]models.Venue, error) {
	var rows []models.Venue
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListVendors returns the vendor directory, best rated first.
func (r *Repository) ListVendors(ctx context.Context) ([]models.Vendor, error) {
	var rows []models.Vendor
	if err := r.db.WithContext(ctx).Order("rating DESC, name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
