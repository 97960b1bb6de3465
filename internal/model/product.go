package model

import "time"

// Product represents a product in the catalog.
type Product struct {
	ID        string
	Name      string
	Brand     string
	Price     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductRequest represents a product create or update request.
type ProductRequest struct {
	Name  string   `json:"name" validate:"required"`
	Brand string   `json:"brand" validate:"required"`
	Price *float64 `json:"price" validate:"required,gte=0"`
}

// ProductResponse represents product data returned by the API.
type ProductResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Brand string  `json:"brand"`
	Price float64 `json:"price"`
}

// Response converts a product to its API representation.
func (p *Product) Response() ProductResponse {
	return ProductResponse{
		ID:    p.ID,
		Name:  p.Name,
		Brand: p.Brand,
		Price: p.Price,
	}
}

// ProductFilter narrows a product listing. Nil/empty fields match everything.
type ProductFilter struct {
	Name  string
	Brand string
	Price *float64
}
