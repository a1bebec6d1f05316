package services

import (
	"context"
	"log"

	"shopfront/models"
	"shopfront/repositories"
)

// CartService is the session-scoped cart store. Every mutation loads
// the snapshot, applies the change, and writes the whole item list
// back through the persistence port.
type CartService struct {
	repo repositories.CartRepository
}

func NewCartService(repo repositories.CartRepository) *CartService {
	return &CartService{repo: repo}
}

// load hydrates a cart. A missing snapshot means an empty cart; a
// corrupt one is logged and also treated as empty, never an error.
func (s *CartService) load(ctx context.Context, sessionID string) *models.Cart {
	items, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		if err != repositories.ErrNoSnapshot {
			log.Printf("Failed to load cart snapshot for session %s: %v", sessionID, err)
		}
		return &models.Cart{}
	}
	return &models.Cart{Items: items}
}

func (s *CartService) save(ctx context.Context, sessionID string, cart *models.Cart) error {
	if err := s.repo.Save(ctx, sessionID, cart.Items); err != nil {
		log.Printf("Failed to save cart snapshot for session %s: %v", sessionID, err)
		return err
	}
	return nil
}

func (s *CartService) Get(ctx context.Context, sessionID string) *models.Cart {
	return s.load(ctx, sessionID)
}

func (s *CartService) Add(ctx context.Context, sessionID string, product models.Product, quantity int) (*models.Cart, error) {
	cart := s.load(ctx, sessionID)
	cart.Add(product, quantity)
	if err := s.save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) Remove(ctx context.Context, sessionID, productID string) (*models.Cart, error) {
	cart := s.load(ctx, sessionID)
	cart.Remove(productID)
	if err := s.save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*models.Cart, error) {
	cart := s.load(ctx, sessionID)
	cart.UpdateQuantity(productID, quantity)
	if err := s.save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear empties the cart and removes the persisted snapshot.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.repo.Clear(ctx, sessionID); err != nil {
		log.Printf("Failed to clear cart snapshot for session %s: %v", sessionID, err)
		return err
	}
	return nil
}
