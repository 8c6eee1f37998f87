package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetMissingKey(t *testing.T) {
	store := New[[]string]()

	value, ok := store.Get("products")

	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestSetThenGet(t *testing.T) {
	store := New[[]string]()
	store.Set("products", []string{"PROD001"})

	value, ok := store.Get("products")

	assert.True(t, ok)
	assert.Equal(t, []string{"PROD001"}, value)
}

func TestInvalidateRemovesKey(t *testing.T) {
	store := New[[]string]()
	store.Set("products", []string{"PROD001"})

	store.Invalidate("products")

	_, ok := store.Get("products")
	assert.False(t, ok)
}

func TestInvalidateMissingKeyIsNoop(t *testing.T) {
	store := New[[]string]()
	store.Invalidate("products")

	_, ok := store.Get("products")
	assert.False(t, ok)
}
