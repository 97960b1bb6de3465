package repository

import (
	"context"
	"sync"
	"time"

	"github.com/lionhard83/sample-server-tests/internal/model"
)

// MemoryAccountRepository is an in-memory AccountRepository guarded by a
// mutex. The email uniqueness check and the insert happen under the same
// lock, so concurrent signups with the same email cannot both succeed.
// All reads return copies; callers never share memory with the store.
type MemoryAccountRepository struct {
	mu      sync.RWMutex
	users   map[string]model.User // keyed by id
	byEmail map[string]string     // email -> id
}

// NewMemoryAccountRepository creates an empty in-memory account store.
func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{
		users:   make(map[string]model.User),
		byEmail: make(map[string]string),
	}
}

// Insert stores a new user, failing with ErrDuplicateEmail if the email is taken.
func (r *MemoryAccountRepository) Insert(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return ErrDuplicateEmail
	}

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.users[user.ID] = *user
	r.byEmail[user.Email] = user.ID
	return nil
}

// FindByEmail retrieves a user by email address.
func (r *MemoryAccountRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	u := r.users[id]
	return &u, nil
}

// FindByVerificationCode retrieves a user by their pending verification code.
func (r *MemoryAccountRepository) FindByVerificationCode(ctx context.Context, code string) (*model.User, error) {
	if code == "" {
		return nil, ErrUserNotFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.VerificationCode == code {
			u := u
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

// FindByID retrieves a user by id.
func (r *MemoryAccountRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

// Save persists mutations to an existing user record.
func (r *MemoryAccountRepository) Save(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[user.ID]
	if !ok {
		return ErrUserNotFound
	}

	user.CreatedAt = stored.CreatedAt
	user.UpdatedAt = time.Now().UTC()
	r.users[user.ID] = *user
	return nil
}

// MemoryProductRepository is an in-memory ProductRepository guarded by a mutex.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]model.Product
}

// NewMemoryProductRepository creates an empty in-memory product store.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{products: make(map[string]model.Product)}
}

// Insert stores a new product.
func (r *MemoryProductRepository) Insert(ctx context.Context, product *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now
	r.products[product.ID] = *product
	return nil
}

// FindByID retrieves a product by id.
func (r *MemoryProductRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &p, nil
}

// List retrieves products matching the filter, unfiltered fields match all.
func (r *MemoryProductRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		if filter.Name != "" && p.Name != filter.Name {
			continue
		}
		if filter.Brand != "" && p.Brand != filter.Brand {
			continue
		}
		if filter.Price != nil && p.Price != *filter.Price {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

// Update replaces an existing product record.
func (r *MemoryProductRepository) Update(ctx context.Context, product *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.products[product.ID]
	if !ok {
		return ErrProductNotFound
	}

	product.CreatedAt = stored.CreatedAt
	product.UpdatedAt = time.Now().UTC()
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by id.
func (r *MemoryProductRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}
