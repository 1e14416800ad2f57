package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada del formulario "Add Products".
// La imagen llega como archivo multipart aparte, no en este cuerpo.
type CreateProductRequest struct {
	Name     string          `json:"product_name" form:"product_name" validate:"required,min=1,max=200"`
	Category string          `json:"category" form:"category" validate:"required,min=1,max=100"`
	MRP      decimal.Decimal `json:"mrp" form:"mrp" validate:"required"`
	Discount decimal.Decimal `json:"discount" form:"discount"` // porcentaje 0–100
}

// UpdateProductRequest entrada del formulario "Update Products".
// Si no se sube imagen nueva se conserva la ruta almacenada.
type UpdateProductRequest struct {
	Name     string          `json:"product_name" form:"product_name" validate:"required,min=1,max=200"`
	Category string          `json:"category" form:"category" validate:"required,min=1,max=100"`
	MRP      decimal.Decimal `json:"mrp" form:"mrp" validate:"required"`
	Discount decimal.Decimal `json:"discount" form:"discount"`
}

// ProductResponse salida de un producto del catálogo.
type ProductResponse struct {
	ID        string          `json:"product_id"`
	Name      string          `json:"product_name"`
	Category  string          `json:"category"`
	MRP       decimal.Decimal `json:"mrp"`
	Discount  decimal.Decimal `json:"discount"`
	ImagePath string          `json:"image,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
