package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/lionhard83/sample-server-tests/internal/model"
	"github.com/lionhard83/sample-server-tests/internal/repository"
)

var ErrProductNotFound = errors.New("product not found")

// ProductService handles product catalog business logic.
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// Create stores a new product and returns it.
func (s *ProductService) Create(ctx context.Context, req model.ProductRequest) (model.ProductResponse, error) {
	product := &model.Product{
		ID:    uuid.NewString(),
		Name:  req.Name,
		Brand: req.Brand,
		Price: *req.Price,
	}

	if err := s.repo.Insert(ctx, product); err != nil {
		return model.ProductResponse{}, err
	}
	return product.Response(), nil
}

// Get retrieves a product by id.
func (s *ProductService) Get(ctx context.Context, id string) (model.ProductResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return model.ProductResponse{}, ErrProductNotFound
		}
		return model.ProductResponse{}, err
	}
	return product.Response(), nil
}

// List retrieves products matching the filter.
func (s *ProductService) List(ctx context.Context, filter model.ProductFilter) ([]model.ProductResponse, error) {
	products, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]model.ProductResponse, len(products))
	for i, p := range products {
		result[i] = p.Response()
	}
	return result, nil
}

// Update replaces an existing product's attributes.
func (s *ProductService) Update(ctx context.Context, id string, req model.ProductRequest) (model.ProductResponse, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return model.ProductResponse{}, ErrProductNotFound
		}
		return model.ProductResponse{}, err
	}

	existing.Name = req.Name
	existing.Brand = req.Brand
	existing.Price = *req.Price

	if err := s.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return model.ProductResponse{}, ErrProductNotFound
		}
		return model.ProductResponse{}, err
	}
	return existing.Response(), nil
}

// Delete removes a product by id.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return ErrProductNotFound
	}
	return err
}
