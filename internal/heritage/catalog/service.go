package catalog

import (
	"context"
	"errors"
)

// ErrNotFound indicates the backend has no record for the requested id.
var ErrNotFound = errors.New("catalog: record not found")

// Service describes read access to the public listing API.
type Service interface {
	// List fetches the full record snapshot.
	List(ctx context.Context) ([]Record, error)
	// Detail fetches one record's full property set.
	Detail(ctx context.Context, id string) (*Detail, error)
}
