package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sara/shopease/internal/database/models"
	"gorm.io/gorm"
)

var (
	ErrItemNotFound    = errors.New("cart item not found")
	ErrProductNotFound = errors.New("product not found")
)

// Service manages one cart per user, created lazily on first access.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) getOrCreate(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.WithContext(ctx).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = models.Cart{UserID: userID, Items: []models.CartItem{}}
	if err := s.db.WithContext(ctx).Create(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	return s.getOrCreate(ctx, userID)
}

// Add puts a product in the cart, bumping the quantity when it is already
// there.
func (s *Service) Add(ctx context.Context, userID, productID uuid.UUID, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		quantity = 1
	}

	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	cart, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	var item models.CartItem
	err = s.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cart.ID, productID).
		First(&item).Error
	switch {
	case err == nil:
		item.Quantity += quantity
		if err := s.db.WithContext(ctx).Save(&item).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{CartID: cart.ID, ProductID: productID, Quantity: quantity}
		if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return s.reload(ctx, cart.ID)
}

// UpdateQuantity sets an item's quantity; zero or negative removes the item.
func (s *Service) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*models.Cart, error) {
	cart, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	var item models.CartItem
	if err := s.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cart.ID, productID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	if quantity <= 0 {
		// Hard delete: a soft-deleted row would still hold the unique
		// (cart_id, product_id) pair and block re-adding the product.
		if err := s.db.WithContext(ctx).Unscoped().Delete(&item).Error; err != nil {
			return nil, err
		}
	} else {
		item.Quantity = quantity
		if err := s.db.WithContext(ctx).Save(&item).Error; err != nil {
			return nil, err
		}
	}

	return s.reload(ctx, cart.ID)
}

func (s *Service) Remove(ctx context.Context, userID, productID uuid.UUID) (*models.Cart, error) {
	cart, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Unscoped().
		Where("cart_id = ? AND product_id = ?", cart.ID, productID).
		Delete(&models.CartItem{}).Error; err != nil {
		return nil, err
	}

	return s.reload(ctx, cart.ID)
}

func (s *Service) Clear(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	cart, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Unscoped().
		Where("cart_id = ?", cart.ID).
		Delete(&models.CartItem{}).Error; err != nil {
		return nil, err
	}

	return s.reload(ctx, cart.ID)
}

func (s *Service) reload(ctx context.Context, cartID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	if err := s.db.WithContext(ctx).
		Preload("Items.Product").
		First(&cart, "id = ?", cartID).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}
