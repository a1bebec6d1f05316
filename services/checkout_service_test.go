package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/models"
	"shopfront/repositories"
)

func validAddress() models.Address {
	return models.Address{
		Name:     "Zhang San",
		Phone:    "13800138000",
		Province: "Guangdong",
		City:     "Shenzhen",
		District: "Nanshan",
		Address:  "1 Technology Park Road",
	}
}

// orderAPIStub records requests and answers POST /api/orders.
type orderAPIStub struct {
	requests   atomic.Int64
	statusCode int
	rawBody    string
	lastReq    models.OrderRequest
}

func (s *orderAPIStub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.requests.Add(1)
		_ = json.NewDecoder(r.Body).Decode(&s.lastReq)

		if s.rawBody != "" {
			w.WriteHeader(s.statusCode)
			w.Write([]byte(s.rawBody))
			return
		}

		if s.statusCode >= 400 {
			w.WriteHeader(s.statusCode)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false, "message": "order rejected",
			})
			return
		}

		now := time.Now()
		order := models.Order{
			ID:            "ORD1735689600000042",
			Status:        models.OrderPending,
			PaymentMethod: s.lastReq.PaymentMethod,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		w.WriteHeader(201)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true, "message": "Order created", "data": order,
		})
	}
}

func newCheckoutFixture(t *testing.T, stub *orderAPIStub) (*CheckoutService, *CartService) {
	t.Helper()
	server := httptest.NewServer(stub.handler())
	t.Cleanup(server.Close)

	cart := NewCartService(repositories.NewMemoryCartRepository())
	checkout := NewCheckoutService(cart, server.URL, 5*time.Second)
	return checkout, cart
}

func TestSubmitEmptyCartBlockedWithoutNetworkCall(t *testing.T) {
	stub := &orderAPIStub{statusCode: 201}
	checkout, _ := newCheckoutFixture(t, stub)

	_, err := checkout.Submit(context.Background(), testSession, CheckoutForm{Address: validAddress()})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.ErrValidation, appErr.Kind)
	assert.Zero(t, stub.requests.Load(), "no network call for a validation failure")
}

func TestSubmitIncompleteAddressBlockedWithoutNetworkCall(t *testing.T) {
	stub := &orderAPIStub{statusCode: 201}
	checkout, cart := newCheckoutFixture(t, stub)
	ctx := context.Background()

	_, err := cart.Add(ctx, testSession, testProduct("1", 1299), 1)
	require.NoError(t, err)

	incomplete := validAddress()
	incomplete.City = ""

	_, err = checkout.Submit(ctx, testSession, CheckoutForm{Address: incomplete})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.ErrValidation, appErr.Kind)
	assert.Zero(t, stub.requests.Load())
	assert.Len(t, cart.Get(ctx, testSession).Items, 1, "cart untouched")
}

func TestSubmitRejectsInvalidPhone(t *testing.T) {
	stub := &orderAPIStub{statusCode: 201}
	checkout, cart := newCheckoutFixture(t, stub)
	ctx := context.Background()

	_, err := cart.Add(ctx, testSession, testProduct("1", 1299), 1)
	require.NoError(t, err)

	for _, phone := range []string{"12345", "23800138000", "138001380001", "1380013800a"} {
		addr := validAddress()
		addr.Phone = phone

		_, err := checkout.Submit(ctx, testSession, CheckoutForm{Address: addr})

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr, "phone %q", phone)
		assert.Equal(t, models.ErrValidation, appErr.Kind)
	}
	assert.Zero(t, stub.requests.Load())
}

func TestSubmitSuccessClearsCartAndReturnsOrderID(t *testing.T) {
	stub := &orderAPIStub{statusCode: 201}
	checkout, cart := newCheckoutFixture(t, stub)
	ctx := context.Background()

	_, err := cart.Add(ctx, testSession, testProduct("1", 1299), 2)
	require.NoError(t, err)
	_, err = cart.Add(ctx, testSession, testProduct("2", 499), 1)
	require.NoError(t, err)

	order, err := checkout.Submit(ctx, testSession, CheckoutForm{Address: validAddress()})
	require.NoError(t, err)

	assert.Equal(t, "ORD1735689600000042", order.ID)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Empty(t, cart.Get(ctx, testSession).Items, "cart cleared on success")

	// Wire request carries product references and quantities only.
	require.Len(t, stub.lastReq.Items, 2)
	assert.Equal(t, models.ItemRequest{ProductID: "1", Quantity: 2}, stub.lastReq.Items[0])
	assert.Equal(t, models.ItemRequest{ProductID: "2", Quantity: 1}, stub.lastReq.Items[1])
	assert.Equal(t, "Zhang San", stub.lastReq.RecipientName)
	assert.Equal(t, "wechat", stub.lastReq.PaymentMethod, "payment method defaults")
}

func TestSubmitFailureLeavesCartUntouched(t *testing.T) {
	stub := &orderAPIStub{statusCode: 500}
	checkout, cart := newCheckoutFixture(t, stub)
	ctx := context.Background()

	_, err := cart.Add(ctx, testSession, testProduct("1", 1299), 1)
	require.NoError(t, err)

	_, err = checkout.Submit(ctx, testSession, CheckoutForm{Address: validAddress()})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.ErrTransport, appErr.Kind)
	assert.Len(t, cart.Get(ctx, testSession).Items, 1)

	// A retry after failure re-enters submission.
	stub.statusCode = 201
	_, err = checkout.Submit(ctx, testSession, CheckoutForm{Address: validAddress()})
	require.NoError(t, err)
	assert.Empty(t, cart.Get(ctx, testSession).Items)
}

func TestSubmitUnexpectedBodyIsDataShapeError(t *testing.T) {
	stub := &orderAPIStub{statusCode: 200, rawBody: `{"unexpected": true}`}
	checkout, cart := newCheckoutFixture(t, stub)
	ctx := context.Background()

	_, err := cart.Add(ctx, testSession, testProduct("1", 1299), 1)
	require.NoError(t, err)

	_, err = checkout.Submit(ctx, testSession, CheckoutForm{Address: validAddress()})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.ErrDataShape, appErr.Kind)
	assert.Len(t, cart.Get(ctx, testSession).Items, 1, "cart untouched")
}

func TestSubmitUnreachableAPIIsTransportError(t *testing.T) {
	cart := NewCartService(repositories.NewMemoryCartRepository())
	checkout := NewCheckoutService(cart, "http://127.0.0.1:1", 500*time.Millisecond)
	ctx := context.Background()

	_, err := cart.Add(ctx, testSession, testProduct("1", 1299), 1)
	require.NoError(t, err)

	_, err = checkout.Submit(ctx, testSession, CheckoutForm{Address: validAddress()})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.ErrTransport, appErr.Kind)
}

func TestSubmitSingleFlightPerSession(t *testing.T) {
	stub := &orderAPIStub{statusCode: 201}
	checkout, cart := newCheckoutFixture(t, stub)
	ctx := context.Background()

	_, err := cart.Add(ctx, testSession, testProduct("1", 1299), 1)
	require.NoError(t, err)

	require.True(t, checkout.begin(testSession))

	_, err = checkout.Submit(ctx, testSession, CheckoutForm{Address: validAddress()})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.ErrValidation, appErr.Kind)
	assert.Contains(t, appErr.Message, "already in progress")

	checkout.finish(testSession)

	_, err = checkout.Submit(ctx, testSession, CheckoutForm{Address: validAddress()})
	require.NoError(t, err)
}
