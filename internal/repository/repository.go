package repository

import (
	"context"
	"errors"

	"github.com/lionhard83/sample-server-tests/internal/model"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrDuplicateEmail  = errors.New("email already exists")
	ErrProductNotFound = errors.New("product not found")
)

// AccountRepository stores user accounts. Implementations own all concurrency
// control: two Inserts racing on the same email must yield exactly one success
// and one ErrDuplicateEmail.
type AccountRepository interface {
	Insert(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByVerificationCode(ctx context.Context, code string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	Save(ctx context.Context, user *model.User) error
}

// ProductRepository stores catalog products.
type ProductRepository interface {
	Insert(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id string) error
}
