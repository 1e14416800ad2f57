// seed puebla la base con datos de demostración: un vendedor, un catálogo
// pequeño con su stock y un año de ventas repartidas por ubicación, canal y
// perfil de cliente. Pensado para levantar el dashboard y el chatbot en local.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/vstock/ventas-api/internal/infrastructure/postgres"
	"github.com/vstock/ventas-api/pkg/config"
)

type demoProduct struct {
	name     string
	category string
	mrp      float64
	discount float64
}

var demoProducts = []demoProduct{
	{"Wireless Mouse", "Electronics", 24.99, 10},
	{"Mechanical Keyboard", "Electronics", 89.90, 5},
	{"Water Bottle 1L", "Home", 12.50, 0},
	{"Running Shoes", "Sports", 119.00, 15},
	{"Yoga Mat", "Sports", 35.00, 0},
	{"Desk Lamp", "Home", 42.75, 20},
}

var (
	locations = []string{"Delhi", "Mumbai", "Bangalore", "Chennai", "Kolkata"}
	genders   = []string{"Male", "Female", "Other"}
	payments  = []string{"Card", "Cash", "UPI", "Wallet"}
	channels  = []string{"Online", "In-Store", "Phone"}
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	// Vendedor de demostración (password: "demo-password").
	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		fail("hash de password: %v", err)
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, name, email, phone, password_hash, user_type, company_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		ON CONFLICT DO NOTHING`,
		uuid.New().String(), "Demo Vendor", "vendor@example.com", "+10000000000",
		string(hash), "Vendor", "Demo Trading Co.",
	)
	if err != nil {
		fail("insertar usuario: %v", err)
	}

	rng := rand.New(rand.NewSource(42)) // semilla fija: corridas reproducibles

	productIDs := make([]string, 0, len(demoProducts))
	for _, p := range demoProducts {
		id := uuid.New().String()
		productIDs = append(productIDs, id)
		_, err := pool.Exec(ctx, `
			INSERT INTO vendor_products (product_id, product_name, category, mrp, discount, image, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, NULL, now(), now())`,
			id, p.name, p.category,
			decimal.NewFromFloat(p.mrp), decimal.NewFromFloat(p.discount),
		)
		if err != nil {
			fail("insertar producto %q: %v", p.name, err)
		}
		_, err = pool.Exec(ctx, `
			INSERT INTO product_stock (stock_id, product_id, quantity, minimum_stock, maximum_stock, updated_at)
			VALUES ($1, $2, $3, $4, $5, now())`,
			uuid.New().String(), id, 20+rng.Intn(180), 10, 250,
		)
		if err != nil {
			fail("insertar stock de %q: %v", p.name, err)
		}
	}

	// Un año de ventas terminando hoy.
	const saleCount = 600
	end := time.Now().Truncate(24 * time.Hour)
	for i := 0; i < saleCount; i++ {
		productIdx := rng.Intn(len(demoProducts))
		qty := 1 + rng.Intn(5)
		unit := demoProducts[productIdx].mrp * (1 - demoProducts[productIdx].discount/100)
		amount := decimal.NewFromFloat(unit * float64(qty)).Round(2)
		saleDate := end.AddDate(0, 0, -rng.Intn(365))

		_, err := pool.Exec(ctx, `
			INSERT INTO sales (sale_id, product_id, quantity, sale_amount, sale_date, location,
			                   customer_age, customer_gender, payment_type, sale_channel)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			uuid.New().String(), productIDs[productIdx], qty, amount, saleDate,
			locations[rng.Intn(len(locations))],
			18+rng.Intn(52),
			genders[rng.Intn(len(genders))],
			payments[rng.Intn(len(payments))],
			channels[rng.Intn(len(channels))],
		)
		if err != nil {
			fail("insertar venta %d: %v", i, err)
		}
	}

	fmt.Printf("Seed completado: %d productos, %d ventas.\n", len(demoProducts), saleCount)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
