package main

import (
	"context"
	"log"

	"fikse-agent-be/internal/bootstrap"
	"fikse-agent-be/internal/config"
	"fikse-agent-be/internal/server"
	"fikse-agent-be/internal/tracer"
	"fikse-agent-be/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 0. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database (optional; without it the vector index runs in memory)
	var gormDB *gorm.DB
	if cfg.Database.Connection != "" {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Panicf("Unable to connect to GORM DB: %v", err)
		}
		gormDB = db
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	if container.NeedsCatalogLoad {
		go func() {
			count, err := container.CatalogService.LoadAndPublish(context.Background(), cfg.Search.CatalogPath)
			if err != nil {
				log.Printf("Background Catalog Load Error: %v", err)
				return
			}
			log.Printf("Background: queued %d catalog rows for embedding", count)
		}()
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
