package order_test

import (
	"testing"

	"foodbot/internal/core/domain/model/order"
	"foodbot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCart(t *testing.T) {
	t.Run("builds lines in insertion order", func(t *testing.T) {
		cart, err := order.NewCart([]string{"rice", "soda"}, []int{2, 1})

		require.NoError(t, err)
		require.NoError(t, cart.Validate())
		assert.Equal(t, []order.Line{{Name: "rice", Quantity: 2}, {Name: "soda", Quantity: 1}}, cart.Lines())
		assert.Equal(t, "rice: 2, soda: 1", cart.String())
	})

	t.Run("last duplicate wins and keeps first position", func(t *testing.T) {
		cart, err := order.NewCart([]string{"rice", "soda", "rice"}, []int{2, 1, 4})

		require.NoError(t, err)
		assert.Equal(t, 2, cart.Len())
		assert.Equal(t, "rice: 4, soda: 1", cart.String())
	})

	t.Run("mismatched lengths", func(t *testing.T) {
		_, err := order.NewCart([]string{"rice", "soda"}, []int{2})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), order.ErrLinesMismatch.Error())
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := order.NewCart([]string{" "}, []int{1})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("empty input gives empty cart", func(t *testing.T) {
		cart, err := order.NewCart(nil, nil)
		require.NoError(t, err)
		assert.True(t, cart.IsEmpty())
		assert.Empty(t, cart.String())
	})
}

func TestCart_ZeroValueIsInvalid(t *testing.T) {
	var cart *order.Cart
	require.ErrorIs(t, cart.Validate(), order.ErrCartIsNotConstructed)
	require.ErrorIs(t, (&order.Cart{}).Validate(), order.ErrCartIsNotConstructed)
}

func TestCart_Merge(t *testing.T) {
	cart, _ := order.NewCart([]string{"rice", "soda"}, []int{2, 1})
	update, _ := order.NewCart([]string{"rice", "naan"}, []int{5, 3})

	cart.Merge(update)

	assert.Equal(t, "rice: 5, soda: 1, naan: 3", cart.String())
	qty, ok := cart.Quantity("soda")
	assert.True(t, ok)
	assert.Equal(t, 1, qty)

	cart.Merge(nil)
	assert.Equal(t, 3, cart.Len())
}

func TestCart_Remove(t *testing.T) {
	cart, _ := order.NewCart([]string{"rice", "soda", "naan"}, []int{2, 1, 3})

	removed, notFound := cart.Remove([]string{"rice", "pizza", "rice"})

	assert.Equal(t, []string{"rice"}, removed)
	assert.Equal(t, []string{"pizza", "rice"}, notFound)
	assert.Equal(t, "soda: 1, naan: 3", cart.String())

	_, ok := cart.Quantity("rice")
	assert.False(t, ok)

	removed, notFound = cart.Remove([]string{"naan", "soda"})
	assert.Equal(t, []string{"naan", "soda"}, removed)
	assert.Empty(t, notFound)
	assert.True(t, cart.IsEmpty())
}

func TestCart_RemoveKeepsIndexConsistent(t *testing.T) {
	cart, _ := order.NewCart([]string{"a", "b", "c"}, []int{1, 2, 3})

	cart.Remove([]string{"a"})
	update, _ := order.NewCart([]string{"c"}, []int{9})
	cart.Merge(update)

	assert.Equal(t, "b: 2, c: 9", cart.String())
}

func TestCart_CloneIsIndependent(t *testing.T) {
	cart, _ := order.NewCart([]string{"rice"}, []int{2})
	clone := cart.Clone()

	clone.Remove([]string{"rice"})

	assert.Equal(t, 1, cart.Len())
	assert.True(t, clone.IsEmpty())
	require.NoError(t, clone.Validate())
}

func TestNewStatus_FromCart(t *testing.T) {
	status, err := order.NewStatus("delivered")
	require.NoError(t, err)
	assert.Equal(t, "delivered", status.String())

	_, err = order.NewStatus("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	assert.Equal(t, "in progress", order.InProgress.String())
}
