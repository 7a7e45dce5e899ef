package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restock-api/internal/application/dto"
	"github.com/jhoicas/Restock-api/internal/application/inventory"
	"github.com/jhoicas/Restock-api/internal/domain/entity"
	"github.com/jhoicas/Restock-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Restock-api/pkg/config"
	"github.com/jhoicas/Restock-api/pkg/logger"
)

// Carga datos de demostración: tres sedes y artículos representativos. Los
// artículos se crean a través del caso de uso de inventario, de modo que las
// alertas derivadas (stock bajo, por vencer) se generan por el motor de reglas
// y no a mano. Es idempotente: si ya hay sedes, no hace nada.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	locationRepo := postgres.NewLocationRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	inventoryUC := inventory.NewUseCase(itemRepo, txRunner)

	existing, err := locationRepo.List(1, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar sedes")
	}
	if len(existing) > 0 {
		log.Info().Msg("la base de datos ya tiene datos, seed omitido")
		return
	}

	now := time.Now()
	locs := []*entity.Location{
		{
			ID:         uuid.New().String(),
			Name:       "Downtown Branch",
			Address:    "123 Main Street, Downtown",
			City:       "New York",
			StaffCount: 25,
			Status:     entity.LocationStatusActive,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:         uuid.New().String(),
			Name:       "Airport Terminal",
			Address:    "456 Airport Road, Terminal 2",
			City:       "Los Angeles",
			StaffCount: 18,
			Status:     entity.LocationStatusActive,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:         uuid.New().String(),
			Name:       "Shopping Mall",
			Address:    "789 Mall Drive, Level 3",
			City:       "Chicago",
			StaffCount: 22,
			Status:     entity.LocationStatusActive,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}
	for _, l := range locs {
		if err := locationRepo.Create(l); err != nil {
			log.Fatal().Err(err).Str("location", l.Name).Msg("crear sede")
		}
	}

	items := []dto.CreateItemRequest{
		{
			Name:            "Tomato",
			SKU:             "TOM-001",
			Quantity:        50,
			Unit:            "kg",
			Supplier:        "Fresh Farms Co.",
			UnitPrice:       decimal.NewFromFloat(2.50),
			ReorderLevel:    20,
			ReorderQuantity: 50,
			ExpiryDate:      now.AddDate(0, 0, 30),
			Category:        "Vegetables",
			LocationID:      locs[0].ID,
		},
		{
			Name:            "Chicken Breast",
			SKU:             "CHK-001",
			Quantity:        35,
			Unit:            "kg",
			Supplier:        "Premium Meat",
			UnitPrice:       decimal.NewFromFloat(8.00),
			ReorderLevel:    15,
			ReorderQuantity: 35,
			ExpiryDate:      now.AddDate(0, 0, 10),
			Category:        "Meat",
			LocationID:      locs[0].ID,
		},
		{
			Name:            "Olive Oil",
			SKU:             "OIL-001",
			Quantity:        8,
			Unit:            "litre",
			Supplier:        "Mediterranean Import",
			UnitPrice:       decimal.NewFromFloat(12.00),
			ReorderLevel:    10,
			ReorderQuantity: 8,
			ExpiryDate:      now.AddDate(0, 0, 180),
			Category:        "Oils",
			LocationID:      locs[1].ID,
		},
		{
			Name:            "Rice",
			SKU:             "RIC-001",
			Quantity:        5,
			Unit:            "kg",
			Supplier:        "Grain Suppliers",
			UnitPrice:       decimal.NewFromFloat(1.50),
			ReorderLevel:    30,
			ReorderQuantity: 5,
			ExpiryDate:      now.AddDate(1, 0, 0),
			Category:        "Grains",
			LocationID:      locs[1].ID,
		},
	}
	for _, in := range items {
		if _, err := inventoryUC.Create(ctx, in); err != nil {
			log.Fatal().Err(err).Str("sku", in.SKU).Msg("crear artículo")
		}
	}

	log.Info().Int("locations", len(locs)).Int("items", len(items)).Msg("seed completado")
}
