package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aadi-1821/RustynKart-backend/internal/domain"
)

func TestCartIncrement(t *testing.T) {
	t.Parallel()

	c := domain.NewCart()
	assert.Equal(t, 1, c.Increment("shoe1", "M"))
	assert.Equal(t, 2, c.Increment("shoe1", "M"))
	assert.Equal(t, 1, c.Increment("shoe1", "L"))

	assert.Equal(t, 2, c.Quantity("shoe1", "M"))
	assert.Equal(t, 1, c.Quantity("shoe1", "L"))
	assert.Equal(t, 0, c.Quantity("shoe2", "M"))
}

func TestCartHas(t *testing.T) {
	t.Parallel()

	c := domain.NewCart()
	assert.False(t, c.Has("shoe1", "M"))

	c.Increment("shoe1", "M")
	assert.True(t, c.Has("shoe1", "M"))
	assert.False(t, c.Has("shoe1", "L"))
	assert.False(t, c.Has("shoe2", "M"))

	// a zero entry is present, not absent
	c.SetQuantity("shoe1", "M", 0)
	assert.True(t, c.Has("shoe1", "M"))
	assert.Equal(t, 0, c.Quantity("shoe1", "M"))

	var nilCart domain.Cart
	assert.False(t, nilCart.Has("shoe1", "M"))
	assert.Equal(t, 0, nilCart.Quantity("shoe1", "M"))
}

func TestCartClone(t *testing.T) {
	t.Parallel()

	c := domain.NewCart()
	c.Increment("shoe1", "M")

	copied := c.Clone()
	copied.Increment("shoe1", "M")
	copied.Increment("shoe2", "S")

	assert.Equal(t, 1, c.Quantity("shoe1", "M"))
	assert.Equal(t, 0, c.Quantity("shoe2", "S"))
	assert.Equal(t, 2, copied.Quantity("shoe1", "M"))
}
