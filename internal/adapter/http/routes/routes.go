package routes

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"mass_oss/internal/adapter/events"
	"mass_oss/internal/adapter/http/handlers"
	"mass_oss/internal/adapter/http/middleware"
	"mass_oss/internal/adapter/idempotency"
	"mass_oss/internal/adapter/persistence/repository"
	"mass_oss/internal/config"
	"mass_oss/internal/domain/entities"
	"mass_oss/internal/infrastructure/auth"
	"mass_oss/internal/infrastructure/cache"
	"mass_oss/internal/infrastructure/database"
	"mass_oss/internal/infrastructure/messaging"
	"mass_oss/internal/usecase"
	"mass_oss/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 5 * time.Second

// Dependencies are the collaborators the router serves.
type Dependencies struct {
	WorkOrders usecase.IWorkOrderUseCase
	Estimates  usecase.IEstimateUseCase
	Events     handlers.IEventSource
	// Tokens is nil when authentication is disabled.
	Tokens middleware.ITokenValidator
}

// Run wires the application from cfg and serves until SIGINT/SIGTERM.
func Run(cfg *config.Config) error {
	ctx := context.Background()
	deps, cleanup, err := Build(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.Server.Port),
		Handler: NewRouter(deps),
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("[http] listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	log.Info("[http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	workOrderHandler := handlers.NewWorkOrderHandler(deps.WorkOrders, deps.Events)
	estimateHandler := handlers.NewEstimateHandler(deps.Estimates)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkOrderRoutes(v1, deps.Tokens, workOrderHandler, estimateHandler)
	return router
}

// Build connects the configured backends and assembles the use cases. The
// returned func releases every connection it opened.
func Build(ctx context.Context, cfg *config.Config) (Dependencies, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	repo, err := NewRepository(ctx, cfg)
	if err != nil {
		return Dependencies{}, cleanup, err
	}

	hub := events.NewHub(events.DefaultSubscriberBuffer)
	notifiers := events.Fanout{events.LogNotifier{}, hub}

	var guard interfaces.IIdempotencyGuard = idempotency.NewMemoryGuard(cfg.Redis.IdempotencyTTL)
	if cfg.Redis.Addr != "" {
		rdb, err := cache.ConnectRedis(ctx, cache.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			cleanup()
			return Dependencies{}, func() {}, err
		}
		closers = append(closers, func() { _ = rdb.Close() })
		guard = idempotency.NewRedisGuard(rdb, cfg.Redis.IdempotencyTTL)
		notifiers = append(notifiers, events.NewRedisNotifier(rdb, cfg.Redis.EventsChannel))
	}

	if cfg.MQTT.Broker != "" {
		client, err := messaging.ConnectMQTT(messaging.MQTTOptions{Broker: cfg.MQTT.Broker, ClientID: cfg.MQTT.ClientID})
		if err != nil {
			cleanup()
			return Dependencies{}, func() {}, err
		}
		closers = append(closers, func() { client.Disconnect(250) })
		notifiers = append(notifiers, events.NewMQTTNotifier(client, cfg.MQTT.Topic))
	}

	deps := Dependencies{
		WorkOrders: usecase.NewWorkOrderUseCase(repo, notifiers, guard),
		Estimates:  usecase.NewEstimateUseCase(repo, notifiers),
		Events:     hub,
	}
	if cfg.Auth.Enabled {
		deps.Tokens = auth.NewService(cfg.Auth.JWTSecret)
	} else {
		log.Warn("[http] authentication disabled, every request acts as operator")
	}
	return deps, cleanup, nil
}

// NewRepository returns the routing store: demo orgs in memory, everyone
// else in the configured backend.
func NewRepository(ctx context.Context, cfg *config.Config) (interfaces.IWorkOrderRepository, error) {
	demo := repository.NewWorkOrderMemoryRepository(entities.DemoWorkOrders)

	var remote interfaces.IWorkOrderRepository
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		remote = repository.NewWorkOrderMemoryRepository(nil)
	default:
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{
			Region:          cfg.DynamoDB.Region,
			AccessKeyID:     cfg.DynamoDB.AccessKeyID,
			SecretAccessKey: cfg.DynamoDB.SecretAccessKey,
			Endpoint:        cfg.DynamoDB.Endpoint,
		})
		if err != nil {
			return nil, err
		}
		remote = repository.NewWorkOrderDynamoRepository(ddb, cfg.DynamoDB.Table, cfg.DynamoDB.Timeout)
	}

	log.WithFields(log.Fields{"backend": cfg.Storage.Backend, "demo_prefix": cfg.Storage.DemoOrgPrefix}).Info("[routes] work order store ready")
	return repository.NewWorkOrderRoutingRepository(cfg.Storage.DemoOrgPrefix, demo, remote), nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.WithField("panic", recovered).Error("[http] recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
