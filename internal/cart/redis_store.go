package cart

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/Aadi-1821/RustynKart-backend/internal/domain"
)

// fieldSeparator joins itemId and size into one hash field. Catalog ids and
// size labels never contain it.
const fieldSeparator = "|"

// RedisStore keeps one hash per principal (`cart:<principalId>`) with one
// field per item/size pair. HINCRBY makes Add a single atomic operation on
// the server, so concurrent adds for the same pair always accumulate.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func cartKey(principalID string) string {
	return "cart:" + principalID
}

func cartField(itemID, size string) string {
	return itemID + fieldSeparator + size
}

// Load fetches the whole cart document. A principal with no stored hash gets
// an empty cart.
func (s *RedisStore) Load(ctx context.Context, principalID string) (domain.Cart, error) {
	fields, err := s.client.HGetAll(ctx, cartKey(principalID)).Result()
	if err != nil {
		return nil, fmt.Errorf("load cart %s: %w", principalID, err)
	}

	result := domain.NewCart()
	for field, raw := range fields {
		itemID, size, ok := strings.Cut(field, fieldSeparator)
		if !ok {
			continue
		}
		quantity, err := strconv.Atoi(raw)
		if err != nil || quantity < 0 {
			continue
		}
		result.SetQuantity(itemID, size, quantity)
	}
	return result, nil
}

// Increment atomically adds one unit and returns the new quantity.
func (s *RedisStore) Increment(ctx context.Context, principalID, itemID, size string) (int, error) {
	quantity, err := s.client.HIncrBy(ctx, cartKey(principalID), cartField(itemID, size), 1).Result()
	if err != nil {
		return 0, fmt.Errorf("increment cart %s: %w", principalID, err)
	}
	return int(quantity), nil
}

// SetQuantity overwrites a single field. The write itself is atomic; callers
// performing check-then-set accept last-write-wins.
func (s *RedisStore) SetQuantity(ctx context.Context, principalID, itemID, size string, quantity int) error {
	if err := s.client.HSet(ctx, cartKey(principalID), cartField(itemID, size), quantity).Err(); err != nil {
		return fmt.Errorf("set cart %s: %w", principalID, err)
	}
	return nil
}
