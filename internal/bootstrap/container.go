package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"

	"shop-assistant-be/internal/config"
	"shop-assistant-be/internal/constant"
	"shop-assistant-be/internal/controller"
	"shop-assistant-be/internal/pkg/logger"
	"shop-assistant-be/internal/repository/contract"
	"shop-assistant-be/internal/repository/implementation"
	"shop-assistant-be/internal/repository/memory"
	"shop-assistant-be/internal/repository/redisstore"
	"shop-assistant-be/internal/service"
	"shop-assistant-be/internal/websocket"
	"shop-assistant-be/pkg/assistant/catalog"
	"shop-assistant-be/pkg/assistant/intent"
	"shop-assistant-be/pkg/assistant/response"
	"shop-assistant-be/pkg/assistant/session"
	"shop-assistant-be/pkg/llm/factory"
	pktNats "shop-assistant-be/pkg/nats"
	"shop-assistant-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController         controller.IChatController
	ConversationController controller.IConversationController

	// Engine, exposed for the console simulator
	ChatbotService service.IChatbotService

	// Background services, nil when their backend is not configured
	ConsumerService service.IConsumerService
	InboundService  service.IInboundService

	WebSocketHub *websocket.Hub
	Logger       logger.ILogger

	closers []func()
}

// NewContainer wires the dialogue engine and its transports. db may be nil, which
// disables transcripts. A catalog or backend configuration error fails startup.
func NewContainer(db *gorm.DB, cfg *config.Config) (*Container, error) {
	// 1. Core
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	c := &Container{Logger: sysLogger}

	kb := catalog.Default()
	if err := kb.Validate(); err != nil {
		return nil, fmt.Errorf("knowledge base: %w", err)
	}

	defaultLanguage, ok := store.ParseLanguage(cfg.App.DefaultLanguage)
	if !ok {
		return nil, fmt.Errorf("unsupported DEFAULT_LANGUAGE %q", cfg.App.DefaultLanguage)
	}

	// 2. Session store
	var rdb *redis.Client
	var sessionRepo contract.SessionRepository
	var sessionLock session.DistributedLocker
	switch cfg.Session.Store {
	case "redis":
		opt, err := redis.ParseURL(cfg.Session.RedisURL)
		if err != nil {
			sysLogger.Warn("Bootstrap", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{"error": err.Error()})
			opt = &redis.Options{Addr: cfg.Session.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			sysLogger.Warn("Bootstrap", "Failed to connect to Redis", map[string]interface{}{"error": err.Error()})
		}
		c.closers = append(c.closers, func() { _ = rdb.Close() })
		sessionRepo = redisstore.NewSessionRepository(rdb, cfg.Session.TTL)
		sessionLock = redisstore.NewSessionLock(rdb, cfg.Session.LockTTL, cfg.Session.LockWait)
	case "memory", "":
		sessionRepo = memory.NewSessionRepository(cfg.Session.TTL, cfg.Session.CleanupInterval)
	default:
		return nil, fmt.Errorf("unsupported SESSION_STORE %q", cfg.Session.Store)
	}
	sessions := session.NewManager(sessionRepo, defaultLanguage, sysLogger)
	if sessionLock != nil {
		sessions.UseDistributedLock(sessionLock)
	}

	// 3. Generation backend
	llmProvider, err := factory.NewLLMProvider(factory.Config{
		Provider:    cfg.Llm.Provider,
		Model:       cfg.Llm.Model,
		BaseURL:     cfg.Llm.BaseURL,
		APIKey:      cfg.Llm.APIKey,
		MaxAttempts: cfg.Llm.MaxAttempts,
	})
	if err != nil {
		return nil, fmt.Errorf("llm provider: %w", err)
	}
	if llmProvider == nil {
		sysLogger.Warn("Bootstrap", "Generation disabled, answering from FAQ and fallback texts only", map[string]interface{}{
			"provider": cfg.Llm.Provider,
		})
	} else {
		sysLogger.Info("Bootstrap", "Generation backend configured", map[string]interface{}{
			"provider": cfg.Llm.Provider,
			"model":    cfg.Llm.Model,
		})
	}

	classifier, err := intent.NewClassifier()
	if err != nil {
		return nil, fmt.Errorf("intent rules: %w", err)
	}
	composer := response.NewComposer(kb, llmProvider, cfg.Llm.Timeout, sysLogger)

	// 4. Transcripts over the in-process bus
	var turnPublisher service.IPublisherService
	var turnRepo contract.ConversationTurnRepository
	if db != nil {
		pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
		c.closers = append(c.closers, func() { _ = pubSub.Close() })

		turnRepo = implementation.NewConversationTurnRepository(db)
		turnPublisher = service.NewPublisherService(constant.TurnRecordedTopic, pubSub)
		c.ConsumerService = service.NewConsumerService(pubSub, constant.TurnRecordedTopic, turnRepo, sysLogger)
	} else {
		sysLogger.Info("Bootstrap", "No database configured, transcripts disabled", nil)
	}

	c.ChatbotService = service.NewChatbotService(kb, sessions, classifier, composer, turnPublisher, sysLogger)

	// 5. Chat gateway over NATS
	var outbound service.EventPublisher
	if cfg.Messaging.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.Messaging.NatsURL, sysLogger)
		if err != nil {
			sysLogger.Warn("Bootstrap", "Failed to connect to NATS Publisher", map[string]interface{}{"error": err.Error()})
		}
		natsSub, err := pktNats.NewSubscriber(cfg.Messaging.NatsURL, sysLogger)
		if err != nil {
			sysLogger.Warn("Bootstrap", "Failed to connect to NATS Subscriber", map[string]interface{}{"error": err.Error()})
		}

		if natsPub != nil {
			outbound = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
		if natsSub != nil {
			c.closers = append(c.closers, natsSub.Close)
		}
		if natsPub != nil && natsSub != nil {
			c.InboundService = service.NewInboundService(c.ChatbotService, natsSub, natsPub, cfg.App.PublicBaseURL, sysLogger)
		}
	}

	// 6. Web chat
	wsLogger := logger.NewIsolatedLogger(filepath.Join(filepath.Dir(cfg.App.LogFilePath), "websocket.log"))
	c.WebSocketHub = websocket.NewHub(rdb, wsLogger)

	conversationService := service.NewConversationService(
		sessions,
		turnRepo,
		outbound,
		c.WebSocketHub,
		cfg.App.PublicBaseURL,
		sysLogger,
	)

	// 7. Controllers
	c.ChatController = controller.NewChatController(c.ChatbotService, c.WebSocketHub, cfg.App.PublicBaseURL, wsLogger)
	c.ConversationController = controller.NewConversationController(conversationService, cfg.Auth.JWTSecret)

	return c, nil
}

// Start launches the background workers that have a configured backend.
func (c *Container) Start(ctx context.Context) error {
	go c.WebSocketHub.Run(ctx)

	if c.ConsumerService != nil {
		if err := c.ConsumerService.Consume(ctx); err != nil {
			return fmt.Errorf("transcript consumer: %w", err)
		}
	}
	if c.InboundService != nil {
		if err := c.InboundService.Start(ctx); err != nil {
			return fmt.Errorf("inbound worker: %w", err)
		}
		c.Logger.Info("Bootstrap", "Inbound gateway worker started", nil)
	}
	return nil
}

// Close releases connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}
