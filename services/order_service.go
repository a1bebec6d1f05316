package services

import (
	"strings"
	"time"

	"shopfront/models"
	"shopfront/repositories"
)

// OrderService assembles and stores orders for the mocked order API.
// Item names and prices are resolved from the catalog here; whatever
// the client sent besides productId and quantity is ignored.
type OrderService struct {
	orders   *repositories.OrderRepository
	products *repositories.ProductRepository
}

func NewOrderService(orders *repositories.OrderRepository, products *repositories.ProductRepository) *OrderService {
	return &OrderService{orders: orders, products: products}
}

func (s *OrderService) CreateOrder(req models.OrderRequest) (models.Order, error) {
	if len(req.Items) == 0 {
		return models.Order{}, models.NewValidationError("order items must not be empty")
	}
	if strings.TrimSpace(req.RecipientName) == "" ||
		strings.TrimSpace(req.PhoneNumber) == "" ||
		strings.TrimSpace(req.Address.Address) == "" {
		return models.Order{}, models.NewValidationError("shipping address is incomplete")
	}
	if strings.TrimSpace(req.PaymentMethod) == "" {
		return models.Order{}, models.NewValidationError("payment method is required")
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	total := 0.0
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return models.Order{}, models.NewValidationError("item quantity must be positive")
		}
		product, ok := s.products.GetByID(item.ProductID)
		if !ok {
			return models.Order{}, models.NewValidationError("unknown product: " + item.ProductID)
		}
		items = append(items, models.OrderItem{
			ProductID:    product.ID,
			ProductName:  product.Name,
			ProductImage: product.Image,
			Price:        product.Price,
			Quantity:     item.Quantity,
		})
		total += product.Price * float64(item.Quantity)
	}

	now := time.Now()
	order := models.Order{
		ID:     repositories.GenerateOrderID(),
		UserID: "user123",
		Items:  items,
		Address: models.Address{
			Name:     req.RecipientName,
			Phone:    req.PhoneNumber,
			Province: req.Address.Province,
			City:     req.Address.City,
			District: req.Address.District,
			Address:  req.Address.Address,
		},
		TotalAmount:   total,
		Status:        models.OrderPending,
		PaymentMethod: req.PaymentMethod,
		Remark:        req.Remark,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	s.orders.Create(order)
	return order, nil
}

// GetOrder is idempotent: repeated calls for the same id return the
// same snapshot.
func (s *OrderService) GetOrder(id string) models.Order {
	return s.orders.GetOrSynthesize(id)
}
