package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sara/shopease/internal/database/models"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// ListFilter narrows the catalog listing. Zero values mean "no filter".
type ListFilter struct {
	Query    string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]models.Product, error) {
	q := s.db.WithContext(ctx).Model(&models.Product{})

	if filter.Query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Query)+"%")
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", *filter.MaxPrice)
	}

	var products []models.Product
	if err := q.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

type ProductInput struct {
	Name         string
	Description  string
	Price        float64
	Image        string
	Category     string
	CountInStock int
	Brand        string
}

func (s *Service) Create(ctx context.Context, input ProductInput) (*models.Product, error) {
	product := &models.Product{
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		Image:        input.Image,
		Category:     input.Category,
		CountInStock: input.CountInStock,
		Brand:        input.Brand,
	}
	if product.Category == "" {
		product.Category = "general"
	}

	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, input ProductInput) (*models.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Image = input.Image
	product.CountInStock = input.CountInStock
	product.Brand = input.Brand
	if input.Category != "" {
		product.Category = input.Category
	}

	if err := s.db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
