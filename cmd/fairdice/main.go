package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/fairdice/internal/common/clock"
	"github.com/KirkDiggler/fairdice/internal/common/entropy"
	"github.com/KirkDiggler/fairdice/internal/common/uuid"
	"github.com/KirkDiggler/fairdice/internal/config"
	"github.com/KirkDiggler/fairdice/internal/dice"
	"github.com/KirkDiggler/fairdice/internal/handlers/cli"
	auditRepo "github.com/KirkDiggler/fairdice/internal/repositories/audit"
	fairnessService "github.com/KirkDiggler/fairdice/internal/services/fairness"
	gameService "github.com/KirkDiggler/fairdice/internal/services/game"
)

func main() {
	// Load .env file for local development; env vars may be set directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gameDice, err := dice.ParseDice(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n%s\n", err, dice.UsageExample)
		os.Exit(2)
	}

	// The reveal audit trail lives in memory unless Redis is configured
	var audit auditRepo.Repository = auditRepo.NewMemory()
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})

		audit, err = auditRepo.NewRedis(&auditRepo.Config{
			RedisClient: redisClient,
		})
		if err != nil {
			log.Fatalf("Failed to create audit repository: %v", err)
		}
	}

	console := cli.New(nil)
	helpTable := cli.NewHelpTable(os.Stdout, gameDice)
	entropySource := entropy.New(nil)

	fairness, err := fairnessService.NewService(entropySource, console, console, helpTable)
	if err != nil {
		log.Fatalf("Failed to create fairness service: %v", err)
	}

	game, err := gameService.NewService(&gameService.Config{
		MaxTieRerolls: cfg.MaxTieRerolls,
	}, fairness, entropySource, console, console, helpTable, audit, &clock.DefaultClock{}, uuid.New())
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	if _, err := game.PlaySession(context.Background(), &gameService.PlaySessionInput{
		Dice: gameDice,
	}); err != nil {
		log.Fatalf("Game failed: %v", err)
	}
}
