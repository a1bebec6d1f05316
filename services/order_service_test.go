package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/models"
	"shopfront/repositories"
)

func newOrderServiceFixture(t *testing.T) *OrderService {
	t.Helper()
	products, err := repositories.NewProductRepository()
	require.NoError(t, err)
	return NewOrderService(repositories.NewOrderRepository(), products)
}

func validOrderRequest() models.OrderRequest {
	return models.OrderRequest{
		RecipientName: "Zhang San",
		PhoneNumber:   "13800138000",
		Address: models.AddressFields{
			Province: "Guangdong",
			City:     "Shenzhen",
			District: "Nanshan",
			Address:  "1 Technology Park Road",
		},
		PaymentMethod: "wechat",
		Items: []models.ItemRequest{
			{ProductID: "1", Quantity: 2},
			{ProductID: "2", Quantity: 1},
		},
	}
}

func TestCreateOrderResolvesPricesServerSide(t *testing.T) {
	svc := newOrderServiceFixture(t)

	order, err := svc.CreateOrder(validOrderRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.OrderPending, order.Status)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Smart Watch Pro", order.Items[0].ProductName)
	assert.InDelta(t, 1299, order.Items[0].Price, 1e-9)
	assert.InDelta(t, 1299*2+499, order.TotalAmount, 1e-9)
	assert.Equal(t, "Zhang San", order.Address.Name)
}

func TestCreateOrderIsRetrievable(t *testing.T) {
	svc := newOrderServiceFixture(t)

	order, err := svc.CreateOrder(validOrderRequest())
	require.NoError(t, err)

	got := svc.GetOrder(order.ID)
	assert.Equal(t, order, got)
}

func TestCreateOrderValidation(t *testing.T) {
	svc := newOrderServiceFixture(t)

	tests := []struct {
		name   string
		mutate func(*models.OrderRequest)
	}{
		{"empty items", func(r *models.OrderRequest) { r.Items = nil }},
		{"missing recipient", func(r *models.OrderRequest) { r.RecipientName = " " }},
		{"missing phone", func(r *models.OrderRequest) { r.PhoneNumber = "" }},
		{"missing street address", func(r *models.OrderRequest) { r.Address.Address = "" }},
		{"missing payment method", func(r *models.OrderRequest) { r.PaymentMethod = "" }},
		{"unknown product", func(r *models.OrderRequest) { r.Items[0].ProductID = "999" }},
		{"non-positive quantity", func(r *models.OrderRequest) { r.Items[0].Quantity = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validOrderRequest()
			tt.mutate(&req)

			_, err := svc.CreateOrder(req)

			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, models.ErrValidation, appErr.Kind)
		})
	}
}
