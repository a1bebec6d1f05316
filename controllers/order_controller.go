package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"shopfront/events"
	"shopfront/middleware"
	"shopfront/models"
	"shopfront/services"
)

// OrderController is the mocked order API: orders live in memory and
// are echoed back with a server-assigned id.
type OrderController struct {
	orders    *services.OrderService
	publisher *events.Publisher
}

func NewOrderController(orders *services.OrderService, publisher *events.Publisher) *OrderController {
	return &OrderController{orders: orders, publisher: publisher}
}

// @Summary Create order
// @Description Create an order from product references; name and price are resolved server-side
// @Tags Orders
// @Accept json
// @Produce json
// @Param order body models.OrderRequest true "Order request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RecordOrderOperation("create", false)
		c.JSON(400, gin.H{"success": false, "message": "Invalid order request: " + err.Error()})
		return
	}

	order, err := ctrl.orders.CreateOrder(req)
	if err != nil {
		middleware.RecordOrderOperation("create", false)
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			c.JSON(400, gin.H{"success": false, "message": appErr.Message})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to create order"})
		return
	}

	ctrl.publisher.PublishOrderCreated(order)
	middleware.RecordOrderOperation("create", true)

	c.JSON(201, gin.H{"success": true, "message": "Order created", "data": order})
}

// @Summary Get order by ID
// @Description Get an order snapshot; unknown ids get a placeholder order (demo behavior)
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Router /api/orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	id := c.Param("id")

	order := ctrl.orders.GetOrder(id)
	middleware.RecordOrderOperation("retrieve", true)

	c.JSON(200, gin.H{"success": true, "message": "Order retrieved", "data": order})
}
