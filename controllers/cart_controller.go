package controllers

import (
	"github.com/gin-gonic/gin"

	"shopfront/middleware"
	"shopfront/models"
	"shopfront/repositories"
	"shopfront/services"
)

type CartController struct {
	cart     *services.CartService
	products *repositories.ProductRepository
}

func NewCartController(cart *services.CartService, products *repositories.ProductRepository) *CartController {
	return &CartController{cart: cart, products: products}
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// Quantity is a pointer so an omitted field is rejected instead of
// being read as zero, which would silently remove the line.
type updateItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// @Summary Get cart
// @Description Get the session's cart with derived totals
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart := ctrl.cart.Get(c.Request.Context(), middleware.SessionID(c))
	c.JSON(200, gin.H{"success": true, "message": "Cart retrieved", "data": models.NewCartView(cart, false)})
}

// @Summary Add item to cart
// @Description Add a product; an existing line has its quantity incremented
// @Tags Cart
// @Accept json
// @Produce json
// @Param item body addItemRequest true "Item to add"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "product_id is required"})
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	product, ok := ctrl.products.GetByID(req.ProductID)
	if !ok {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	cart, err := ctrl.cart.Add(c.Request.Context(), middleware.SessionID(c), product, req.Quantity)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to save cart"})
		return
	}

	// Adding opens the cart view in the storefront.
	c.JSON(200, gin.H{"success": true, "message": "Item added", "data": models.NewCartView(cart, true)})
}

// @Summary Update item quantity
// @Description Set a line's quantity exactly; zero or less removes it
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param item body updateItemRequest true "New quantity"
// @Success 200 {object} models.Response
// @Router /api/cart/items/{id} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "quantity is required"})
		return
	}

	cart, err := ctrl.cart.UpdateQuantity(c.Request.Context(), middleware.SessionID(c), c.Param("id"), *req.Quantity)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to save cart"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Cart updated", "data": models.NewCartView(cart, false)})
}

// @Summary Remove item
// @Description Remove a line from the cart; absent ids are a no-op
// @Tags Cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /api/cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	cart, err := ctrl.cart.Remove(c.Request.Context(), middleware.SessionID(c), c.Param("id"))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to save cart"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Item removed", "data": models.NewCartView(cart, false)})
}

// @Summary Clear cart
// @Description Empty the cart and remove its persisted snapshot
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	if err := ctrl.cart.Clear(c.Request.Context(), middleware.SessionID(c)); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to clear cart"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Cart cleared", "data": models.NewCartView(&models.Cart{}, false)})
}
