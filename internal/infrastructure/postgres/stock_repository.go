package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vstock/ventas-api/internal/domain/entity"
	"github.com/vstock/ventas-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación del puerto StockRepository sobre PostgreSQL.
type StockRepo struct {
	pool *pgxpool.Pool
}

// NewStockRepository construye el adaptador de persistencia de inventario.
func NewStockRepository(pool *pgxpool.Pool) *StockRepo {
	return &StockRepo{pool: pool}
}

// Create persiste un registro de stock nuevo.
func (r *StockRepo) Create(ctx context.Context, stock *entity.Stock) error {
	query := `
		INSERT INTO product_stock (stock_id, product_id, quantity, minimum_stock, maximum_stock, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query,
		stock.ID, stock.ProductID, stock.Quantity, stock.MinimumStock, stock.MaximumStock, stock.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// GetByID obtiene un registro de stock. Devuelve nil, nil si no existe.
func (r *StockRepo) GetByID(ctx context.Context, id string) (*entity.Stock, error) {
	query := `
		SELECT stock_id, product_id, quantity, minimum_stock, maximum_stock, updated_at
		FROM product_stock WHERE stock_id = $1`
	var s entity.Stock
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.ProductID, &s.Quantity, &s.MinimumStock, &s.MaximumStock, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// UpdateQuantity reemplaza la cantidad de un registro.
// El CHECK (quantity >= 0) de la tabla respalda la validación del use case.
func (r *StockRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE product_stock SET quantity = $2, updated_at = now() WHERE stock_id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update stock quantity: %w", err)
	}
	return nil
}

// ListWithProducts devuelve todos los registros con el nombre del producto (join con el catálogo).
func (r *StockRepo) ListWithProducts(ctx context.Context) ([]*entity.StockWithProduct, error) {
	query := `
		SELECT ps.stock_id, ps.product_id, ps.quantity, ps.minimum_stock, ps.maximum_stock, ps.updated_at, vp.product_name
		FROM product_stock ps
		JOIN vendor_products vp ON vp.product_id = ps.product_id
		ORDER BY vp.product_name, ps.stock_id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockWithProduct
	for rows.Next() {
		var s entity.StockWithProduct
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Quantity, &s.MinimumStock, &s.MaximumStock, &s.UpdatedAt, &s.ProductName); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
