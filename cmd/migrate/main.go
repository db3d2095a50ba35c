package main

// Run database migrations:
//   go run ./cmd/migrate
//
// Publish a cadence day override to Redis:
//   go run ./cmd/migrate -cadence-day 4

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"agentcrm-backend/internal/cadence"
	"agentcrm-backend/internal/shared/config"
	"agentcrm-backend/internal/shared/storage/db"
)

func main() {
	cadenceDay := flag.Int("cadence-day", 0, "publish this cadence day to Redis and exit")
	flag.Parse()

	cfg := config.Load()
	ctx := context.Background()

	if *cadenceDay > 0 {
		if err := publishCadenceDay(ctx, cfg, *cadenceDay); err != nil {
			log.Printf("failed to publish cadence day: %v", err)
			os.Exit(1)
		}
		log.Printf("cadence day set to %d", *cadenceDay)
		return
	}

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("failed to connect database: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		log.Printf("failed to run migrations: %v", err)
		os.Exit(1)
	}
}

func publishCadenceDay(ctx context.Context, cfg config.Config, day int) error {
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return err
	}
	client := redis.NewClient(redisOpts)
	defer client.Close()
	return cadence.NewRedisProvider(client, nil).Publish(ctx, day)
}
