package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vstock/ventas-api/internal/application/dto"
	"github.com/vstock/ventas-api/internal/domain"
	"github.com/vstock/ventas-api/internal/domain/entity"
	"github.com/vstock/ventas-api/internal/domain/repository"
)

// StockUseCase casos de uso del inventario: alta de stock, ajuste de cantidad
// y listado con nombres de producto.
type StockUseCase struct {
	stockRepo   repository.StockRepository
	productRepo repository.ProductRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(stockRepo repository.StockRepository, productRepo repository.ProductRepository) *StockUseCase {
	return &StockUseCase{stockRepo: stockRepo, productRepo: productRepo}
}

// Add crea un registro de stock nuevo para un producto existente.
// Cada alta crea un registro propio (el esquema admite varios por producto).
func (uc *StockUseCase) Add(ctx context.Context, in dto.AddStockRequest) (*dto.StockResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.NewValidationError("quantity must be greater than zero")
	}
	if in.MinimumStock < 0 || in.MaximumStock < 0 {
		return nil, domain.NewValidationError("stock levels must be >= 0")
	}
	if in.MaximumStock > 0 && in.MinimumStock > in.MaximumStock {
		return nil, domain.NewValidationError("minimum_stock must not exceed maximum_stock")
	}

	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	stock := &entity.Stock{
		ID:           uuid.New().String(),
		ProductID:    in.ProductID,
		Quantity:     in.Quantity,
		MinimumStock: in.MinimumStock,
		MaximumStock: in.MaximumStock,
		UpdatedAt:    time.Now(),
	}
	if err := uc.stockRepo.Create(ctx, stock); err != nil {
		return nil, err
	}
	return toStockResponse(stock, product.Name), nil
}

// UpdateQuantity reemplaza la cantidad de un registro de stock.
func (uc *StockUseCase) UpdateQuantity(ctx context.Context, stockID string, in dto.UpdateStockRequest) error {
	if in.Quantity < 0 {
		return domain.NewValidationError("quantity must be >= 0")
	}
	stock, err := uc.stockRepo.GetByID(ctx, stockID)
	if err != nil {
		return err
	}
	if stock == nil {
		return domain.ErrNotFound
	}
	return uc.stockRepo.UpdateQuantity(ctx, stockID, in.Quantity)
}

// List devuelve todos los registros de stock con el nombre del producto.
func (uc *StockUseCase) List(ctx context.Context) ([]dto.StockResponse, error) {
	rows, err := uc.stockRepo.ListWithProducts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, *toStockResponse(&r.Stock, r.ProductName))
	}
	return out, nil
}

func toStockResponse(s *entity.Stock, productName string) *dto.StockResponse {
	return &dto.StockResponse{
		StockID:      s.ID,
		ProductID:    s.ProductID,
		ProductName:  productName,
		Quantity:     s.Quantity,
		MinimumStock: s.MinimumStock,
		MaximumStock: s.MaximumStock,
		UpdatedAt:    s.UpdatedAt,
	}
}
