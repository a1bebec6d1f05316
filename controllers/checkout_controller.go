package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"shopfront/middleware"
	"shopfront/models"
	"shopfront/services"
)

type CheckoutController struct {
	checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

// @Summary Submit order
// @Description Submit the session's cart as an order; the cart is cleared only on success
// @Tags Checkout
// @Accept json
// @Produce json
// @Param form body services.CheckoutForm true "Checkout form"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/checkout [post]
func (ctrl *CheckoutController) Submit(c *gin.Context) {
	var form services.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid checkout form"})
		return
	}

	order, err := ctrl.checkout.Submit(c.Request.Context(), middleware.SessionID(c), form)
	if err != nil {
		middleware.RecordOrderOperation("checkout", false)
		c.JSON(statusForError(err), gin.H{"success": false, "message": messageForError(err)})
		return
	}

	middleware.RecordOrderOperation("checkout", true)
	c.JSON(200, gin.H{"success": true, "message": "Order submitted", "data": order})
}

// @Summary Get submitted order
// @Description Fetch the confirmation snapshot for a submitted order
// @Tags Checkout
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 502 {object} models.ErrorResponse
// @Router /api/checkout/orders/{id} [get]
func (ctrl *CheckoutController) GetOrder(c *gin.Context) {
	order, err := ctrl.checkout.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"success": false, "message": messageForError(err)})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order retrieved", "data": order})
}

func statusForError(err error) int {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case models.ErrValidation:
			return 400
		case models.ErrTransport, models.ErrDataShape:
			return 502
		}
	}
	return 500
}

func messageForError(err error) string {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal error"
}
