package storage

import (
	"context"

	"github.com/chris/washflow/pkg/models"
)

// OutletStore defines the outlet operations owned by this service.
// Outlet records themselves are managed elsewhere.
type OutletStore interface {
	// GetOutlet retrieves an outlet by its ID.
	GetOutlet(ctx context.Context, id string) (*models.Outlet, error)

	// SetOutletRating writes the derived rating, but only while the outlet's
	// rating_count still equals observedCount. A newer tally wins otherwise.
	SetOutletRating(ctx context.Context, id string, rating float64, observedCount int64) error
}

// VehicleReader reads the vehicle registry.
type VehicleReader interface {
	// GetVehicle retrieves a vehicle by its ID.
	GetVehicle(ctx context.Context, id string) (*models.Vehicle, error)
}
