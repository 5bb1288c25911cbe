package repository

import (
	"context"

	"github.com/runwaydesk/sponsorhub/internal/domain"
)

// PackageRepository defines the interface for sponsorship package data access
type PackageRepository interface {
	// Create creates a new package template
	Create(ctx context.Context, pkg *domain.Package) error
	// GetByID retrieves a package by ID
	GetByID(ctx context.Context, id string) (*domain.Package, error)
	// GetByIDForUpdate retrieves a package by ID and locks its row for
	// the duration of the surrounding transaction
	GetByIDForUpdate(ctx context.Context, id string) (*domain.Package, error)
	// List retrieves the full package catalog
	List(ctx context.Context) ([]*domain.Package, error)
	// Update updates a package template
	Update(ctx context.Context, pkg *domain.Package) error
}
