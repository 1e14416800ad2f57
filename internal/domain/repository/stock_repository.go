package repository

import (
	"context"

	"github.com/vstock/ventas-api/internal/domain/entity"
)

// StockRepository define el puerto de persistencia para los registros de stock.
type StockRepository interface {
	Create(ctx context.Context, stock *entity.Stock) error
	GetByID(ctx context.Context, id string) (*entity.Stock, error)
	// UpdateQuantity reemplaza la cantidad de un registro existente.
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	// ListWithProducts devuelve los registros de stock con el nombre del producto (join).
	ListWithProducts(ctx context.Context) ([]*entity.StockWithProduct, error)
}
