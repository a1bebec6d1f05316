package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"shopfront/models"
)

// phonePattern accepts 11-digit mobile numbers.
var phonePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

// CheckoutForm is what the storefront collects before submission.
type CheckoutForm struct {
	Address       models.Address `json:"address"`
	PaymentMethod string         `json:"payment_method"`
	Remark        string         `json:"remark"`
}

// CheckoutService runs the order submission flow against the order
// API. The cart is cleared only after a confirmed success; a failed
// submission leaves it untouched.
type CheckoutService struct {
	cart     *CartService
	client   *http.Client
	baseURL  string
	mu       sync.Mutex
	inFlight map[string]bool
}

func NewCheckoutService(cart *CartService, baseURL string, timeout time.Duration) *CheckoutService {
	return &CheckoutService{
		cart:     cart,
		client:   &http.Client{Timeout: timeout},
		baseURL:  strings.TrimRight(baseURL, "/"),
		inFlight: map[string]bool{},
	}
}

// ValidateAddress checks completeness before any network call.
func ValidateAddress(addr models.Address) error {
	switch {
	case strings.TrimSpace(addr.Name) == "":
		return models.NewValidationError("recipient name is required")
	case strings.TrimSpace(addr.Phone) == "":
		return models.NewValidationError("phone number is required")
	case !phonePattern.MatchString(strings.TrimSpace(addr.Phone)):
		return models.NewValidationError("phone number is not a valid mobile number")
	case strings.TrimSpace(addr.Province) == "":
		return models.NewValidationError("province is required")
	case strings.TrimSpace(addr.City) == "":
		return models.NewValidationError("city is required")
	case strings.TrimSpace(addr.District) == "":
		return models.NewValidationError("district is required")
	case strings.TrimSpace(addr.Address) == "":
		return models.NewValidationError("street address is required")
	}
	return nil
}

// begin marks a session's submission in flight. Only one submission
// per session may be outstanding at a time.
func (s *CheckoutService) begin(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[sessionID] {
		return false
	}
	s.inFlight[sessionID] = true
	return true
}

func (s *CheckoutService) finish(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, sessionID)
}

// Submit posts the session's cart as an order. On success the cart is
// cleared and the created order returned.
func (s *CheckoutService) Submit(ctx context.Context, sessionID string, form CheckoutForm) (models.Order, error) {
	if !s.begin(sessionID) {
		return models.Order{}, models.NewValidationError("a submission is already in progress")
	}
	defer s.finish(sessionID)

	cart := s.cart.Get(ctx, sessionID)
	if len(cart.Items) == 0 {
		return models.Order{}, models.NewValidationError("cart is empty")
	}
	if err := ValidateAddress(form.Address); err != nil {
		return models.Order{}, err
	}
	if strings.TrimSpace(form.PaymentMethod) == "" {
		form.PaymentMethod = "wechat"
	}

	req := models.OrderRequest{
		RecipientName: form.Address.Name,
		PhoneNumber:   form.Address.Phone,
		Address: models.AddressFields{
			Province: form.Address.Province,
			City:     form.Address.City,
			District: form.Address.District,
			Address:  form.Address.Address,
		},
		PaymentMethod: form.PaymentMethod,
		Remark:        form.Remark,
		Items:         make([]models.ItemRequest, 0, len(cart.Items)),
	}
	for _, item := range cart.Items {
		req.Items = append(req.Items, models.ItemRequest{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
		})
	}

	order, err := s.postOrder(ctx, req)
	if err != nil {
		log.Printf("Order submission failed for session %s: %v", sessionID, err)
		return models.Order{}, err
	}

	// Confirmed success: only now does the cart get cleared.
	if err := s.cart.Clear(ctx, sessionID); err != nil {
		log.Printf("Order %s created but cart for session %s could not be cleared: %v", order.ID, sessionID, err)
	}

	log.Printf("Order %s submitted for session %s (%d items)", order.ID, sessionID, len(req.Items))
	return order, nil
}

func (s *CheckoutService) postOrder(ctx context.Context, orderReq models.OrderRequest) (models.Order, error) {
	body, err := json.Marshal(orderReq)
	if err != nil {
		return models.Order{}, models.NewDataShapeError("failed to encode order request", err)
	}

	url := s.baseURL + "/api/orders"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return models.Order{}, models.NewTransportError("failed to build order request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return models.Order{}, models.NewTransportError("order API unreachable", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Order{}, models.NewTransportError("failed to read order response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := apiErrorMessage(raw)
		return models.Order{}, models.NewTransportError(
			fmt.Sprintf("order submission failed: %d %s", resp.StatusCode, message), nil)
	}

	var envelope struct {
		Success bool          `json:"success"`
		Message string        `json:"message"`
		Data    *models.Order `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Data == nil || envelope.Data.ID == "" {
		return models.Order{}, models.NewDataShapeError("order response has unexpected structure", err)
	}
	return *envelope.Data, nil
}

// GetOrder fetches an order snapshot by id from the order API.
func (s *CheckoutService) GetOrder(ctx context.Context, orderID string) (models.Order, error) {
	url := s.baseURL + "/api/orders/" + orderID
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.Order{}, models.NewTransportError("failed to build order request", err)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return models.Order{}, models.NewTransportError("order API unreachable", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Order{}, models.NewTransportError("failed to read order response", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.Order{}, models.NewTransportError(
			fmt.Sprintf("order lookup failed: %d %s", resp.StatusCode, apiErrorMessage(raw)), nil)
	}

	var envelope struct {
		Data *models.Order `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Data == nil {
		return models.Order{}, models.NewDataShapeError("order response has unexpected structure", err)
	}
	return *envelope.Data, nil
}

func apiErrorMessage(raw []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	return strings.TrimSpace(string(raw))
}
