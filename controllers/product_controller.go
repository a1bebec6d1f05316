package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"shopfront/config"
	"shopfront/models"
	"shopfront/pagination"
	"shopfront/repositories"
)

const productCacheTTL = 5 * time.Minute

type ProductController struct {
	products *repositories.ProductRepository
}

func NewProductController(products *repositories.ProductRepository) *ProductController {
	return &ProductController{products: products}
}

func getProductCacheKey(page, limit int) string {
	return fmt.Sprintf("products_list_p%d_l%d", page, limit)
}

// @Summary List products
// @Description Get paginated list of products
// @Tags Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(8)
// @Success 200 {object} models.PaginatedResponse
// @Router /api/products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(config.AppConfig.DefaultPageSize)))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = config.AppConfig.DefaultPageSize
	}
	if limit > config.AppConfig.MaxPageSize {
		limit = config.AppConfig.MaxPageSize
	}

	// Direct page entry past the end is clamped to the last page.
	total := ctrl.products.Count()
	state := pagination.NewState(limit, total)
	if !state.SetPage(page) {
		state.SetPage(state.TotalPages())
	}
	page = state.Page

	cacheKey := getProductCacheKey(page, limit)
	ctx := context.Background()

	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	items, _ := ctrl.products.GetPage(page, limit)

	response := models.PaginatedResponse{
		Success: true,
		Message: "Products retrieved",
		Data:    items,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: state.TotalPages(),
			PageLabels: state.Labels(),
		},
	}

	if config.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		config.RedisClient.Set(ctx, cacheKey, string(jsonData), productCacheTTL)
	}

	c.JSON(200, response)
}

// @Summary Get product by ID
// @Description Get product details
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id := c.Param("id")

	product, ok := ctrl.products.GetByID(id)
	if !ok {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product retrieved", "data": product})
}

// @Summary Get product reviews
// @Description Get the ordered list of reviews for a product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id}/reviews [get]
func (ctrl *ProductController) GetProductReviews(c *gin.Context) {
	id := c.Param("id")

	reviews, ok := ctrl.products.GetReviews(id)
	if !ok {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Reviews retrieved", "data": reviews})
}
