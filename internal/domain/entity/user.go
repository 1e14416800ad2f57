package entity

import "time"

// Tipos de usuario válidos.
const (
	UserTypeCustomer = "Customer"
	UserTypeVendor   = "Vendor"
)

// User representa un usuario registrado (cliente o vendedor).
// CompanyName solo aplica para vendedores; para clientes queda vacío.
type User struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	UserType     string // Customer | Vendor
	CompanyName  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsVendor indica si el usuario puede administrar catálogo e inventario.
func (u *User) IsVendor() bool { return u.UserType == UserTypeVendor }
