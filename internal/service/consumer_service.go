package service

import (
	"context"
	"encoding/json"
	"time"

	"fikse-agent-be/internal/dto"
	"fikse-agent-be/internal/entity"
	"fikse-agent-be/internal/pkg/logger"
	"fikse-agent-be/internal/repository/contract"
	"fikse-agent-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	embeddingRepo     contract.ServiceEmbeddingRepository
	embeddingProvider embedding.EmbeddingProvider
	log               logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	embeddingRepo contract.ServiceEmbeddingRepository,
	embeddingProvider embedding.EmbeddingProvider,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		embeddingRepo:     embeddingRepo,
		embeddingProvider: embeddingProvider,
		log:               log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedServiceMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer", "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		// Ack invalid messages to prevent infinite retry.
		msg.Ack()
		return
	}

	document := payload.Record.Text()

	res, err := cs.embeddingProvider.Generate(document, embedding.TaskRetrievalDocument)
	if err != nil {
		cs.log.Error("consumer", "Failed to generate embedding", map[string]interface{}{
			"service": payload.Record.Service,
			"error":   err.Error(),
		})
		msg.Nack()
		return
	}

	row := &entity.ServiceEmbedding{
		Id:             uuid.New(),
		Record:         payload.Record,
		Document:       document,
		EmbeddingValue: res.Embedding.Values,
		CreatedAt:      time.Now(),
	}

	if err := cs.embeddingRepo.CreateBulk(ctx, []*entity.ServiceEmbedding{row}); err != nil {
		cs.log.Error("consumer", "Failed to store embedding", map[string]interface{}{
			"service": payload.Record.Service,
			"error":   err.Error(),
		})
		msg.Nack()
		return
	}

	msg.Ack()
}
