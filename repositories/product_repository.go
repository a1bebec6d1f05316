package repositories

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"

	"shopfront/models"
	"shopfront/pagination"
)

//go:embed products.json
var catalogSeed []byte

// ProductRepository serves the catalog from an embedded seed. The
// product endpoints are a mocked collaborator; there is no database
// behind them.
type ProductRepository struct {
	products []models.Product
	byID     map[string]models.Product
}

func NewProductRepository() (*ProductRepository, error) {
	return newProductRepositoryFrom(catalogSeed)
}

func newProductRepositoryFrom(seed []byte) (*ProductRepository, error) {
	var products []models.Product
	if err := json.Unmarshal(seed, &products); err != nil {
		return nil, fmt.Errorf("failed to parse product catalog: %w", err)
	}

	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	log.Printf("Catalog loaded: %d products", len(products))
	return &ProductRepository{products: products, byID: byID}, nil
}

// GetPage returns the products on the given page and the total count.
// The returned slice is never nil.
func (r *ProductRepository) GetPage(page, limit int) ([]models.Product, int) {
	start, end := pagination.SliceBounds(page, limit, len(r.products))
	items := make([]models.Product, end-start)
	copy(items, r.products[start:end])
	return items, len(r.products)
}

func (r *ProductRepository) GetByID(id string) (models.Product, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// GetReviews returns a product's comments in catalog order. A missing
// or nil comment list degrades to an empty slice with a warning.
func (r *ProductRepository) GetReviews(productID string) ([]models.Comment, bool) {
	p, ok := r.byID[productID]
	if !ok {
		return nil, false
	}
	if p.Comments == nil {
		log.Printf("Warning: product %s has no comment list, returning empty reviews", productID)
		return []models.Comment{}, true
	}
	return p.Comments, true
}

func (r *ProductRepository) Count() int {
	return len(r.products)
}
