// seed aplica el esquema SQL y carga datos de demostración (materias primas,
// productos y recetas). Es idempotente: si ya hay materias primas no vuelve a
// insertar nada.
//
// Uso: go run ./cmd/seed [ruta/schema.sql]
// Por defecto busca internal/infrastructure/postgres/schema.sql.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/diamon/manufacturing-inventory/internal/domain/entity"
	"github.com/diamon/manufacturing-inventory/internal/infrastructure/postgres"
	"github.com/diamon/manufacturing-inventory/pkg/config"
	"github.com/diamon/manufacturing-inventory/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	schemaPath := "internal/infrastructure/postgres/schema.sql"
	if len(os.Args) > 1 {
		schemaPath = os.Args[1]
	}
	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", schemaPath).Msg("leer schema.sql")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}
	log.Info().Msg("esquema aplicado")

	materialRepo := postgres.NewRawMaterialRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	recipeRepo := postgres.NewRecipeRepository(pool)

	existing, err := materialRepo.List()
	if err != nil {
		log.Fatal().Err(err).Msg("listar materias primas")
	}
	if len(existing) > 0 {
		log.Info().Int("materias", len(existing)).Msg("ya hay datos, no se siembra nada")
		return
	}

	now := time.Now()
	materials := map[string]*entity.RawMaterial{}
	for _, m := range []struct {
		code  string
		name  string
		stock int
	}{
		{"RM001", "Steel", 1000},
		{"RM002", "Plastic", 500},
		{"RM003", "Aluminum", 800},
		{"RM004", "Copper", 300},
		{"RM005", "Glass", 200},
	} {
		mat := &entity.RawMaterial{
			ID: uuid.New().String(), Code: m.code, Name: m.name,
			StockQuantity: m.stock, CreatedAt: now, UpdatedAt: now,
		}
		if err := materialRepo.Create(mat); err != nil {
			log.Fatal().Err(err).Str("code", m.code).Msg("sembrar materia prima")
		}
		materials[m.name] = mat
	}

	products := map[string]*entity.Product{}
	for _, p := range []struct {
		code  string
		name  string
		price string
	}{
		{"P001", "Bike", "300.00"},
		{"P002", "Bottle", "10.00"},
	} {
		prod := &entity.Product{
			ID: uuid.New().String(), Code: p.code, Name: p.name,
			Price: decimal.RequireFromString(p.price), CreatedAt: now, UpdatedAt: now,
		}
		if err := productRepo.Create(prod); err != nil {
			log.Fatal().Err(err).Str("code", p.code).Msg("sembrar producto")
		}
		products[p.name] = prod
	}

	for _, r := range []struct {
		product  string
		material string
		required int
	}{
		{"Bike", "Steel", 50},
		{"Bottle", "Plastic", 5},
	} {
		rec := &entity.Recipe{
			ID:               uuid.New().String(),
			ProductID:        products[r.product].ID,
			RawMaterialID:    materials[r.material].ID,
			RequiredQuantity: r.required,
			CreatedAt:        now,
		}
		if err := recipeRepo.Create(rec); err != nil {
			log.Fatal().Err(err).Str("product", r.product).Msg("sembrar receta")
		}
	}

	log.Info().Msg("datos de demostración sembrados")
}
