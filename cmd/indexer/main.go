package main

import (
	"context"
	"log"
	"os"
	"time"

	"fikse-agent-be/internal/config"
	"fikse-agent-be/internal/entity"
	"fikse-agent-be/internal/model"
	"fikse-agent-be/internal/repository/implementation"
	"fikse-agent-be/pkg/catalog"
	"fikse-agent-be/pkg/database"
	"fikse-agent-be/pkg/embedding"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Batch size for bulk inserts into pgvector.
const insertBatchSize = 50

func main() {
	cfg := config.Load()

	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Step 1: Setting up extension and schema...")
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS vector;`).Error; err != nil {
		color.Yellow("Warn: Failed to create vector extension: %v. Continuing...", err)
	}
	if err := db.AutoMigrate(&model.ServiceEmbedding{}, &model.Order{}); err != nil {
		log.Fatal("Error: AutoMigrate failed:", err)
	}

	path := cfg.Search.CatalogPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	color.Cyan("Step 2: Loading catalog from %s...", path)
	f, err := os.Open(path)
	if err != nil {
		log.Fatal("Error: Failed to open catalog:", err)
	}
	records, err := catalog.LoadCSV(f)
	f.Close()
	if err != nil {
		log.Fatal("Error: Failed to parse catalog:", err)
	}
	color.Green("Loaded %d catalog rows", len(records))

	var provider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "gemini" {
		provider = embedding.NewGeminiProvider(cfg.Ai.GoogleGemini)
		color.Cyan("Step 3: Embedding with GEMINI...")
	} else {
		provider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
		color.Cyan("Step 3: Embedding with OLLAMA (%s)...", cfg.Ai.OllamaModel)
	}

	repo := implementation.NewServiceEmbeddingRepository(db)
	ctx := context.Background()

	var batch []*entity.ServiceEmbedding
	indexed := 0
	failed := 0
	start := time.Now()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := repo.CreateBulk(ctx, batch); err != nil {
			log.Fatal("Error: Failed to insert batch:", err)
		}
		indexed += len(batch)
		color.Green("Indexed %d/%d rows", indexed, len(records))
		batch = batch[:0]
	}

	for _, rec := range records {
		document := rec.Text()
		res, err := provider.Generate(document, embedding.TaskRetrievalDocument)
		if err != nil {
			color.Red("Failed to embed %q: %v", rec.Service, err)
			failed++
			continue
		}
		batch = append(batch, &entity.ServiceEmbedding{
			Id:             uuid.New(),
			Record:         rec,
			Document:       document,
			EmbeddingValue: res.Embedding.Values,
			CreatedAt:      time.Now(),
		})
		if len(batch) >= insertBatchSize {
			flush()
		}
	}
	flush()

	if failed > 0 {
		color.Yellow("Done with %d failures in %s. Indexed %d rows.", failed, time.Since(start).Round(time.Second), indexed)
		os.Exit(1)
	}
	color.Green("Done in %s. Indexed %d rows.", time.Since(start).Round(time.Second), indexed)
}
