package repository

import (
	"context"
	"errors"

	"github.com/equilease/lease-service/internal/models"
)

// ErrDealNotFound is returned when an id does not match any stored deal.
var ErrDealNotFound = errors.New("deal not found")

// DealStore is the keyed persistence contract for deal records. Backends
// may be transactional or a whole-collection file; callers only rely on
// these operations.
type DealStore interface {
	// Save appends a new deal to the collection.
	Save(ctx context.Context, deal *models.Deal) error
	// Get returns the deal with the given id, or ErrDealNotFound.
	Get(ctx context.Context, id string) (*models.Deal, error)
	// Update overwrites an existing deal, matched by id. Returns
	// ErrDealNotFound if no such deal exists.
	Update(ctx context.Context, deal *models.Deal) error
	// List returns every stored deal.
	List(ctx context.Context) ([]models.Deal, error)
}
