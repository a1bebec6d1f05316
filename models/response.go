package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type PaginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
	// PageLabels is the page-number window to render; -1 marks an
	// ellipsis between non-adjacent numbers.
	PageLabels []int `json:"page_labels"`
}

type PaginatedResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Data    interface{}    `json:"data"`
	Meta    PaginationMeta `json:"meta"`
}

// CartView is the cart as returned to the storefront: items plus the
// totals derived from them, never stored.
type CartView struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"total_items"`
	TotalPrice float64    `json:"total_price"`
	CartOpen   bool       `json:"cart_open"`
}

func NewCartView(cart *Cart, open bool) CartView {
	items := cart.Items
	if items == nil {
		items = []CartItem{}
	}
	return CartView{
		Items:      items,
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
		CartOpen:   open,
	}
}
