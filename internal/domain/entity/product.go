package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo del vendedor.
// ImagePath es la ruta local persistida de la imagen subida (puede estar vacía).
type Product struct {
	ID        string
	Name      string
	Category  string
	MRP       decimal.Decimal // precio máximo de venta, >= 0
	Discount  decimal.Decimal // porcentaje 0–100
	ImagePath string
	CreatedAt time.Time
	UpdatedAt time.Time
}
