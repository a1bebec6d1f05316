package repositories

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"shopfront/models"
)

// OrderRepository is the in-memory order book behind the mocked order
// API. Orders are immutable after Create.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]models.Order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: map[string]models.Order{}}
}

// GenerateOrderID builds ids like ORD1735689600000042.
func GenerateOrderID() string {
	return fmt.Sprintf("ORD%d%03d", time.Now().UnixMilli(), rand.Intn(1000))
}

func (r *OrderRepository) Create(order models.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = order
}

func (r *OrderRepository) Get(id string) (models.Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	return order, ok
}

// GetOrSynthesize returns the stored order, or fabricates and caches a
// placeholder pending order for an unknown id. Demo-only convenience:
// a real backend must 404 here, which is why the behavior is isolated
// in this one method.
func (r *OrderRepository) GetOrSynthesize(id string) models.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order, ok := r.orders[id]; ok {
		return order
	}

	log.Printf("Warning: synthesizing placeholder order for unknown id %s", id)
	now := time.Now()
	order := models.Order{
		ID:     id,
		UserID: "user123",
		Items: []models.OrderItem{
			{
				ProductID:    "1",
				ProductName:  "Smart Watch Pro",
				ProductImage: "/images/products/smart-watch-pro.jpg",
				Price:        1299,
				Quantity:     1,
			},
		},
		TotalAmount: 1299,
		Address: models.Address{
			Name:     "Sample Customer",
			Phone:    "13800138000",
			Province: "Guangdong",
			City:     "Shenzhen",
			District: "Nanshan",
			Address:  "1 Technology Park Road",
		},
		Status:        models.OrderPending,
		PaymentMethod: "wechat",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	r.orders[id] = order
	return order
}

func (r *OrderRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
