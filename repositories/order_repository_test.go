package repositories

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/models"
)

func TestGenerateOrderIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD\d{13}\d{3}$`)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		id := GenerateOrderID()
		assert.Regexp(t, pattern, id)
		seen[id] = true
	}
	assert.Greater(t, len(seen), 1, "ids should not all collide")
}

func TestOrderRepositoryCreateAndGet(t *testing.T) {
	repo := NewOrderRepository()
	order := models.Order{
		ID:          "ORD123",
		TotalAmount: 1299,
		Status:      models.OrderPending,
		CreatedAt:   time.Now(),
	}

	repo.Create(order)

	got, ok := repo.Get("ORD123")
	require.True(t, ok)
	assert.Equal(t, order, got)

	_, ok = repo.Get("ORD999")
	assert.False(t, ok)
}

func TestGetOrSynthesizeIsIdempotent(t *testing.T) {
	repo := NewOrderRepository()

	first := repo.GetOrSynthesize("ORD-unknown")
	second := repo.GetOrSynthesize("ORD-unknown")

	assert.Equal(t, first, second, "repeated fetches return the same snapshot")
	assert.Equal(t, "ORD-unknown", first.ID)
	assert.Equal(t, models.OrderPending, first.Status)
	assert.Equal(t, 1, repo.Count())
}

func TestGetOrSynthesizePrefersStoredOrder(t *testing.T) {
	repo := NewOrderRepository()
	stored := models.Order{ID: "ORD1", TotalAmount: 42, Status: models.OrderPaid}
	repo.Create(stored)

	got := repo.GetOrSynthesize("ORD1")

	assert.Equal(t, stored, got)
}
