// Package bootstrap assembles the application: configuration, storage,
// cadence source, queue, services, and the HTTP router.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"agentcrm-backend/internal/bna"
	"agentcrm-backend/internal/cadence"
	"agentcrm-backend/internal/contacts"
	"agentcrm-backend/internal/plans"
	"agentcrm-backend/internal/queue"
	"agentcrm-backend/internal/recommendations"
	"agentcrm-backend/internal/shared/config"
	"agentcrm-backend/internal/shared/server"
	"agentcrm-backend/internal/shared/storage/db"
	"agentcrm-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Redis  *redis.Client
	Queue  queue.Client

	UsersRepo           users.Repo
	ContactsRepo        contacts.Repo
	PlansRepo           plans.Repo
	RecommendationsRepo recommendations.Repo

	Cadence  cadence.Provider
	Resolver *bna.Resolver

	UsersService           *users.Service
	RecommendationsService *recommendations.Service

	UsersHandler           *users.Handler
	RecommendationsHandler *recommendations.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	redisClient := buildRedis(cfg)
	queueClient, err := buildQueue(ctx)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Redis:  redisClient,
		Queue:  queueClient,
	}

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:                 app.Config,
		UserHandler:            app.UsersHandler,
		RecommendationsHandler: app.RecommendationsHandler,
	})

	return app, nil
}

// Close releases held connections.
func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.DB != nil {
		_ = a.DB.Close()
	}
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildRedis(cfg config.Config) *redis.Client {
	if strings.TrimSpace(cfg.RedisURL) == "" {
		return nil
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Printf("bootstrap: invalid REDIS_URL, cadence falls back to clock: %v", err)
		return nil
	}
	return redis.NewClient(opts)
}

func buildQueue(ctx context.Context) (queue.Client, error) {
	if strings.TrimSpace(os.Getenv("AC_SQS_QUEUE_URL")) == "" {
		return nil, nil
	}
	return queue.NewSQSClient(ctx)
}

// buildCadence picks the day source: explicit override, then the Redis
// counter with a clock fallback, then the clock alone.
func buildCadence(cfg config.Config, redisClient *redis.Client) cadence.Provider {
	var clock cadence.Provider
	if !cfg.ProgramStartDate.IsZero() {
		clock = cadence.Clock{Start: cfg.ProgramStartDate}
	}

	if cfg.CadenceDay > 0 {
		return cadence.Fixed(cfg.CadenceDay)
	}
	if redisClient != nil {
		return cadence.NewRedisProvider(redisClient, clock)
	}
	if clock != nil {
		return clock
	}
	log.Printf("bootstrap: no cadence source configured; defaulting to day 1")
	return cadence.Fixed(1)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) {
	if app.DB != nil {
		app.UsersRepo = &users.PGRepo{DB: app.DB}
		app.ContactsRepo = &contacts.PGRepo{DB: app.DB}
		app.PlansRepo = &plans.PGRepo{DB: app.DB}
		app.RecommendationsRepo = &recommendations.PGRepo{DB: app.DB}
	} else {
		app.UsersRepo = users.NewMemoryRepo()
		app.ContactsRepo = contacts.NewMemoryRepo()
		app.PlansRepo = plans.NewMemoryRepo()
		app.RecommendationsRepo = recommendations.NewMemoryRepo()
	}

	app.Cadence = buildCadence(app.Config, app.Redis)
	app.Resolver = &bna.Resolver{
		Plans:    app.PlansRepo,
		Users:    app.UsersRepo,
		Contacts: app.ContactsRepo,
		Cadence:  app.Cadence,
	}

	app.UsersService = users.NewService(app.UsersRepo)
	app.RecommendationsService = recommendations.NewService(app.Resolver, app.RecommendationsRepo, app.Queue)

	app.UsersHandler = users.NewHandler(app.UsersService)
	app.RecommendationsHandler = recommendations.NewHandler(app.RecommendationsService)
}
