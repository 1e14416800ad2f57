package dto

import "time"

// AddStockRequest entrada del formulario "Add Stock".
type AddStockRequest struct {
	ProductID    string `json:"product_id" validate:"required,uuid"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
	MinimumStock int    `json:"minimum_stock" validate:"min=0"`
	MaximumStock int    `json:"maximum_stock" validate:"min=0"`
}

// UpdateStockRequest entrada del formulario "Update Stock".
type UpdateStockRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// StockResponse salida de un registro de stock con el nombre del producto.
type StockResponse struct {
	StockID      string    `json:"stock_id"`
	ProductID    string    `json:"product_id"`
	ProductName  string    `json:"product_name,omitempty"`
	Quantity     int       `json:"quantity"`
	MinimumStock int       `json:"minimum_stock"`
	MaximumStock int       `json:"maximum_stock"`
	UpdatedAt    time.Time `json:"updated_at"`
}
