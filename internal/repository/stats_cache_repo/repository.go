package stats_cache_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gkratosBR/Glitch-Arena/internal/model"
	"github.com/gkratosBR/Glitch-Arena/internal/repository"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "player:stats:"

type repo struct {
	client *redis.Client
}

// NewStatsCacheRepository - кеш статистики игроков в Redis.
// Сбор статистики по 20 партиям дорогой, TTL живёт в операторском конфиге
func NewStatsCacheRepository(client *redis.Client) repository.StatsCacheRepository {
	return &repo{
		client: client,
	}
}

// Get - статистика из кеша; (nil, nil) на промахе или протухшем ключе
func (r *repo) Get(ctx context.Context, puuid string) (*model.PlayerStats, error) {
	data, err := r.client.Get(ctx, keyPrefix+puuid).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("stats cache get: %w", err)
	}

	var stats model.PlayerStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("stats cache decode: %w", err)
	}

	return &stats, nil
}

// Set - сохранение статистики с TTL
func (r *repo) Set(ctx context.Context, puuid string, stats model.PlayerStats, ttl time.Duration) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}

	if err := r.client.Set(ctx, keyPrefix+puuid, data, ttl).Err(); err != nil {
		return fmt.Errorf("stats cache set: %w", err)
	}

	return nil
}
