package ports

import "context"

// Source fetches the raw inventory spreadsheet
type Source interface {
	// Fetch returns the full resource body. A non-success response or unreadable
	// resource is reported as a LOAD_FAILURE AppError.
	Fetch(ctx context.Context) ([]byte, error)
	// Location names the resource; its extension selects the parser.
	Location() string
}
