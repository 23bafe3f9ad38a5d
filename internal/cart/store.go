package cart

import (
	"context"
	"errors"

	"github.com/Aadi-1821/RustynKart-backend/internal/domain"
)

// Aggregator failures callers branch on.
var (
	// ErrItemNotInCart means an update referenced an item/size pair the cart
	// does not hold.
	ErrItemNotInCart = errors.New("item or size not found in cart")
	// ErrMissingKeys means itemId or size was empty.
	ErrMissingKeys = errors.New("itemId and size are required")
	// ErrNegativeQuantity means an update carried a quantity below zero.
	ErrNegativeQuantity = errors.New("quantity must be a non-negative integer")
)

// Store persists cart documents keyed by principal id. Load must return an
// empty cart, not an error, for a principal with no stored cart. Increment
// must be atomic for a given (principal, item, size) triple so concurrent adds
// never lose updates; SetQuantity is a single-field overwrite.
type Store interface {
	Load(ctx context.Context, principalID string) (domain.Cart, error)
	Increment(ctx context.Context, principalID, itemID, size string) (int, error)
	SetQuantity(ctx context.Context, principalID, itemID, size string, quantity int) error
}
