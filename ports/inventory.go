package ports

import (
	"context"

	"showroom/domain/vehicle"
)

// InventoryReader provides read-only access to the loaded vehicle records
type InventoryReader interface {
	// Records returns every record. The slice is shared and must not be modified.
	Records(ctx context.Context) ([]vehicle.Record, error)
	// Find resolves one record by identifier; a miss is a NOT_FOUND AppError.
	Find(ctx context.Context, id string) (vehicle.Record, error)
	Schema() vehicle.Schema
}
