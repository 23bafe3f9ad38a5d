package cart

import (
	"context"

	"github.com/Aadi-1821/RustynKart-backend/internal/domain"
	util "github.com/Aadi-1821/RustynKart-backend/pkg/util"
)

// Aggregator applies cart state transitions against the external store. It
// holds no per-request state; correctness under concurrency rests on the
// store's atomic increment.
type Aggregator struct {
	store Store
}

// NewAggregator builds the aggregator around a store.
func NewAggregator(store Store) *Aggregator {
	return &Aggregator{store: store}
}

// Add records one more unit of an item/size pair, creating the cart and the
// intermediate entry as needed. Not idempotent: each call increments, so
// adding twice yields quantity 2.
func (a *Aggregator) Add(ctx context.Context, principalID, itemID, size string) error {
	if itemID == "" || size == "" {
		return ErrMissingKeys
	}
	if _, err := a.store.Increment(ctx, principalID, itemID, size); err != nil {
		return util.NewStorageError(err)
	}
	return nil
}

// Update overwrites the quantity of an existing item/size pair. The pair must
// already be in the cart; quantity 0 is accepted and stored as a zero entry
// rather than removed. The existence check and the write are not one atomic
// step: concurrent updates to the same pair resolve last-write-wins, which is
// the documented semantic for absolute overwrites.
func (a *Aggregator) Update(ctx context.Context, principalID, itemID, size string, quantity int) error {
	if itemID == "" || size == "" {
		return ErrMissingKeys
	}
	if quantity < 0 {
		return ErrNegativeQuantity
	}

	current, err := a.store.Load(ctx, principalID)
	if err != nil {
		return util.NewStorageError(err)
	}
	if !current.Has(itemID, size) {
		return ErrItemNotInCart
	}

	if err := a.store.SetQuantity(ctx, principalID, itemID, size, quantity); err != nil {
		return util.NewStorageError(err)
	}
	return nil
}

// Read returns the principal's cart verbatim, an empty map when none exists.
func (a *Aggregator) Read(ctx context.Context, principalID string) (domain.Cart, error) {
	current, err := a.store.Load(ctx, principalID)
	if err != nil {
		return nil, util.NewStorageError(err)
	}
	if current == nil {
		current = domain.NewCart()
	}
	return current, nil
}
