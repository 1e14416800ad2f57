package entity

import "time"

// Stock representa un registro de existencias de un producto.
// El esquema permite varios registros por producto (cada alta de stock crea uno).
type Stock struct {
	ID           string
	ProductID    string
	Quantity     int // >= 0
	MinimumStock int
	MaximumStock int
	UpdatedAt    time.Time
}

// StockWithProduct es la fila del listado de inventario (join con el catálogo).
type StockWithProduct struct {
	Stock
	ProductName string
}
