package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta registrada. Las filas son inmutables: las escribe
// un proceso de ingesta externo (cmd/seed en desarrollo) y aquí solo se leen.
type Sale struct {
	SaleID         string
	ProductID      string
	Quantity       int
	SaleAmount     decimal.Decimal // >= 0
	SaleDate       time.Time
	Location       string
	CustomerAge    int
	CustomerGender string
	PaymentType    string
	SaleChannel    string
}
