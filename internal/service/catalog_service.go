package service

import (
	"context"
	"encoding/json"
	"os"

	"fikse-agent-be/internal/dto"
	"fikse-agent-be/internal/pkg/logger"
	"fikse-agent-be/pkg/catalog"
)

// ICatalogService loads the service catalog and queues every row for
// embedding.
type ICatalogService interface {
	LoadAndPublish(ctx context.Context, path string) (int, error)
}

type catalogService struct {
	publisherService IPublisherService
	log              logger.ILogger
}

func NewCatalogService(publisherService IPublisherService, log logger.ILogger) ICatalogService {
	return &catalogService{
		publisherService: publisherService,
		log:              log,
	}
}

func (c *catalogService) LoadAndPublish(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	records, err := catalog.LoadCSV(f)
	if err != nil {
		return 0, err
	}

	for _, rec := range records {
		payload := dto.PublishEmbedServiceMessage{Record: rec}
		payloadJson, err := json.Marshal(payload)
		if err != nil {
			return 0, err
		}
		if err := c.publisherService.Publish(ctx, payloadJson); err != nil {
			return 0, err
		}
	}

	c.log.Info("catalog", "Catalog rows queued for embedding", map[string]interface{}{
		"path": path,
		"rows": len(records),
	})
	return len(records), nil
}
