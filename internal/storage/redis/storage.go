// Package redis stores saved games in Redis so SSH sessions can resume on
// any server instance.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Storage is a Redis-backed implementation of storage.SavedGameStore
type Storage struct {
	client *redis.Client
	cfg    Config
	now    func() time.Time
}

// New creates a new Redis storage instance and verifies the connection
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid url: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis: cannot connect: %w", err)
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
		now:    time.Now,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ping checks that Redis is reachable
func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Ensure Storage implements the interface
var _ storage.SavedGameStore = (*Storage)(nil)

// SaveGame stores the save as JSON and refreshes its TTL.
func (s *Storage) SaveGame(ctx context.Context, owner, gameID string, state []byte) error {
	data, err := json.Marshal(storage.SavedGame{
		Owner:     owner,
		GameID:    gameID,
		State:     state,
		UpdatedAt: s.now().UTC(),
	})
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, savedGameKey(owner, gameID), data, s.cfg.SaveTTL).Err(); err != nil {
		return fmt.Errorf("redis: cannot save game: %w", err)
	}
	return nil
}

func (s *Storage) LoadGame(ctx context.Context, owner, gameID string) (*storage.SavedGame, error) {
	data, err := s.client.Get(ctx, savedGameKey(owner, gameID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrNoSavedGame
		}
		return nil, fmt.Errorf("redis: cannot load game: %w", err)
	}

	var saved storage.SavedGame
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("redis: cannot decode saved game: %w", err)
	}
	return &saved, nil
}

func (s *Storage) DeleteGame(ctx context.Context, owner, gameID string) error {
	if err := s.client.Del(ctx, savedGameKey(owner, gameID)).Err(); err != nil {
		return fmt.Errorf("redis: cannot delete saved game: %w", err)
	}
	return nil
}
