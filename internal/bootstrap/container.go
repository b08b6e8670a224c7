package bootstrap

import (
	"context"
	"log"

	"fikse-agent-be/internal/config"
	"fikse-agent-be/internal/constant"
	"fikse-agent-be/internal/controller"
	"fikse-agent-be/internal/pkg/logger"
	"fikse-agent-be/internal/pkg/mailer"
	"fikse-agent-be/internal/repository/contract"
	"fikse-agent-be/internal/repository/implementation"
	"fikse-agent-be/internal/repository/memory"
	"fikse-agent-be/internal/repository/redisstore"
	"fikse-agent-be/internal/service"
	"fikse-agent-be/pkg/embedding"
	"fikse-agent-be/pkg/intent"

	pktNats "fikse-agent-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SearchController controller.ISearchController
	AgentController  controller.IAgentController
	HealthController controller.IHealthController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService
	CatalogService  service.ICatalogService

	// True when the vector index lives in memory and the catalog must be
	// embedded at startup.
	NeedsCatalogLoad bool

	Logger logger.ILogger
}

// NewContainer wires the dependency graph. db may be nil, in which case the
// vector index and order store run in memory and the catalog is embedded
// through the event bus at startup.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Embedding provider
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "gemini" {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	} else {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	}

	// 4. Storage backends
	var embeddingRepo contract.ServiceEmbeddingRepository
	var orderRepo contract.OrderRepository
	needsCatalogLoad := false
	if db != nil {
		embeddingRepo = implementation.NewServiceEmbeddingRepository(db)
		orderRepo = implementation.NewOrderRepository(db)
	} else {
		log.Printf("[INFO] No database configured, using in-memory vector index")
		embeddingRepo = memory.NewVectorIndex()
		orderRepo = memory.NewOrderRepository()
		needsCatalogLoad = true
	}

	var sessionRepo contract.SessionRepository
	if cfg.App.SessionStore == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		sessionRepo = redisstore.NewSessionRepository(rdb)
	} else {
		sessionRepo = memory.NewSessionRepository()
	}

	// 5. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 6. Services
	publisherService := service.NewPublisherService(constant.EmbedServiceTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		constant.EmbedServiceTopic,
		embeddingRepo,
		embeddingProvider,
		sysLogger,
	)
	catalogService := service.NewCatalogService(publisherService, sysLogger)

	searchService := service.NewSearchService(
		embeddingProvider,
		embeddingRepo,
		cfg.Search,
		sysLogger,
	)
	agentService := service.NewAgentService(
		sessionRepo,
		searchService,
		orderRepo,
		intent.NewRuleClassifier(),
		natsPub,
		emailService,
		cfg.SMTP.OrderNotifyEmail,
		cfg.Search.SuggestionCap,
		sysLogger,
	)

	// 7. Controllers
	return &Container{
		SearchController: controller.NewSearchController(searchService),
		AgentController:  controller.NewAgentController(agentService),
		HealthController: controller.NewHealthController(embeddingRepo),

		ConsumerService:  consumerService,
		CatalogService:   catalogService,
		NeedsCatalogLoad: needsCatalogLoad,

		Logger: sysLogger,
	}
}
