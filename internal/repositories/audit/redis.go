package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/fairdice/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	revealKeyPrefix = "reveal:session:"
)

// Config holds configuration for the Redis audit repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis, for
// players who want the reveal trail to survive the process
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed audit repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveReveal appends a record to its session's list
func (r *redisRepository) SaveReveal(ctx context.Context, input *SaveRevealInput) error {
	if input == nil {
		return ErrNilInput
	}

	if input.Record == nil {
		return ErrNilRecord
	}

	recordJSON, err := json.Marshal(input.Record)
	if err != nil {
		return fmt.Errorf("failed to marshal reveal record: %w", err)
	}

	key := fmt.Sprintf("%s%s", revealKeyPrefix, input.Record.SessionID)
	if err := r.client.RPush(ctx, key, recordJSON).Err(); err != nil {
		return fmt.Errorf("failed to save reveal record: %w", err)
	}

	return nil
}

// ListReveals returns a session's records in save order
func (r *redisRepository) ListReveals(ctx context.Context, input *ListRevealsInput) (*ListRevealsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	key := fmt.Sprintf("%s%s", revealKeyPrefix, input.SessionID)
	raw, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list reveal records: %w", err)
	}

	records := make([]*models.RevealRecord, 0, len(raw))
	for _, item := range raw {
		var record models.RevealRecord
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal reveal record: %w", err)
		}
		records = append(records, &record)
	}

	return &ListRevealsOutput{Records: records}, nil
}
