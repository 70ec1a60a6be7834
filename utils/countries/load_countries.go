package main

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/grupo09/paises-backend/src/config"
	"github.com/grupo09/paises-backend/src/db"
	"github.com/grupo09/paises-backend/src/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	ctx := context.Background()
	handle, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	seeder := seed.NewSeeder(handle.Repository, cfg.CountriesAPIURL, cfg.TenantTag, cfg.SeedTimeout)
	inserted, err := seeder.LoadCountries(ctx)
	closeHandle(ctx, handle)
	if err != nil {
		log.Fatalf("failed to load countries: %v", err)
	}

	if inserted == 0 {
		log.Println("Countries already loaded")
		return
	}
	log.Printf("%d countries loaded\n", inserted)
}

func closeHandle(ctx context.Context, handle *db.Handle) {
	if err := handle.Close(ctx); err != nil {
		log.WithError(err).Error("Error closing database connection")
	}
}
