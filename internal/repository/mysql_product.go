package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lionhard83/sample-server-tests/internal/model"
)

// MySQLProductRepository is a MySQL-backed ProductRepository.
type MySQLProductRepository struct {
	db *sql.DB
}

// NewMySQLProductRepository creates a new MySQLProductRepository.
func NewMySQLProductRepository(db *sql.DB) *MySQLProductRepository {
	return &MySQLProductRepository{db: db}
}

const productColumns = `id, name, brand, price, created_at, updated_at`

// Insert stores a new product.
func (r *MySQLProductRepository) Insert(ctx context.Context, product *model.Product) error {
	query := `INSERT INTO products (id, name, brand, price) VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, product.ID, product.Name, product.Brand, product.Price)
	return err
}

// FindByID retrieves a product by id.
func (r *MySQLProductRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ?`

	product := &model.Product{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&product.ID, &product.Name, &product.Brand, &product.Price,
		&product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// List retrieves products matching the filter, ordered by creation time.
func (r *MySQLProductRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	var args []any

	if filter.Name != "" {
		query += ` AND name = ?`
		args = append(args, filter.Name)
	}
	if filter.Brand != "" {
		query += ` AND brand = ?`
		args = append(args, filter.Brand)
	}
	if filter.Price != nil {
		query += ` AND price = ?`
		args = append(args, *filter.Price)
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Brand, &p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Update replaces an existing product record.
func (r *MySQLProductRepository) Update(ctx context.Context, product *model.Product) error {
	query := `UPDATE products SET name = ?, brand = ?, price = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, product.Name, product.Brand, product.Price, product.ID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		if _, err := r.FindByID(ctx, product.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a product by id.
func (r *MySQLProductRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM products WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
