package ports

import (
	"context"

	"mbticonsultant/domain/periodic"
)

// TableSource provides read-only access to the personality table.
// Implementations reload the source on every call; nothing is cached.
type TableSource interface {
	Load(ctx context.Context) (*periodic.Table, error)
}
