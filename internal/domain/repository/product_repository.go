package repository

import (
	"context"

	"github.com/vstock/ventas-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para el catálogo.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
