package service

import (
	"context"
	"errors"
	"fmt"

	"gearshed-backend/internal/domain"
	"gearshed-backend/internal/lifecycle"
	"gearshed-backend/internal/metrics"
	"gearshed-backend/internal/repository"
)

type cartService struct {
	userRepo repository.UserRepository
	itemRepo repository.ItemRepository
}

func NewCartService(userRepo repository.UserRepository, itemRepo repository.ItemRepository) CartService {
	return &cartService{userRepo: userRepo, itemRepo: itemRepo}
}

func (s *cartService) GetCart(ctx context.Context, userID string) ([]domain.CartLine, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Cart, nil
}

// Reserve validates against the item snapshot and updates only the user's
// cart. Stock is untouched until checkout, and checkout re-validates
// against fresh counts, so a stale reservation can fail later but can never
// overdraw.
func (s *cartService) Reserve(ctx context.Context, userID, itemID string, quantity int64) (domain.CartLine, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return domain.CartLine{}, err
	}
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return domain.CartLine{}, err
	}

	// An existing line for the same item grows instead of duplicating;
	// the combined quantity has to fit the available stock.
	total := quantity
	lineIdx := -1
	for i, line := range user.Cart {
		if line.ItemID == itemID {
			total += line.Quantity
			lineIdx = i
			break
		}
	}

	line, err := lifecycle.Reserve(item, total)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			metrics.InsufficientStockRejections.Inc()
		}
		return domain.CartLine{}, err
	}

	cart := user.Cart
	if lineIdx >= 0 {
		cart[lineIdx] = line
	} else {
		cart = append(cart, line)
	}
	if err := s.userRepo.UpdateCart(ctx, userID, cart); err != nil {
		return domain.CartLine{}, err
	}
	return line, nil
}

func (s *cartService) RemoveLine(ctx context.Context, userID, itemID string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	cart := make([]domain.CartLine, 0, len(user.Cart))
	found := false
	for _, line := range user.Cart {
		if line.ItemID == itemID {
			found = true
			continue
		}
		cart = append(cart, line)
	}
	if !found {
		return fmt.Errorf("cart line for item %s: %w", itemID, domain.ErrNotFound)
	}
	return s.userRepo.UpdateCart(ctx, userID, cart)
}

func (s *cartService) Clear(ctx context.Context, userID string) error {
	return s.userRepo.UpdateCart(ctx, userID, nil)
}
