package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Domenick1991/moviebooking/config"
	"github.com/Domenick1991/moviebooking/internal/domain"
	"github.com/Domenick1991/moviebooking/internal/selection"
	"github.com/redis/go-redis/v9"
)

// RedisCache mirrors in-progress selections per session and keeps a short-lived
// copy of the last booking. Selection entries are the durable counterpart of
// the reference UI's localStorage.
type RedisCache struct {
	client       *redis.Client
	selectionTTL time.Duration
	bookingTTL   time.Duration
}

func NewRedisCache(cfg config.RedisConfig, selectionTTL, bookingTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:       redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		selectionTTL: selectionTTL,
		bookingTTL:   bookingTTL,
	}
}

func (c *RedisCache) SaveState(ctx context.Context, session string, state selection.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, selectionKey(session), payload, c.selectionTTL).Err()
}

func (c *RedisCache) LoadState(ctx context.Context, session string) (*selection.State, error) {
	data, err := c.client.Get(ctx, selectionKey(session)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var state selection.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (c *RedisCache) ClearState(ctx context.Context, session string) error {
	return c.client.Del(ctx, selectionKey(session)).Err()
}

func (c *RedisCache) GetLastBooking(ctx context.Context) (*domain.Booking, error) {
	data, err := c.client.Get(ctx, lastBookingKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var booking domain.Booking
	if err := json.Unmarshal(data, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *RedisCache) SetLastBooking(ctx context.Context, booking *domain.Booking) error {
	payload, err := json.Marshal(booking)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, lastBookingKey(), payload, c.bookingTTL).Err()
}

func selectionKey(session string) string {
	return "selection:" + session
}

func lastBookingKey() string {
	return "cache:last_booking"
}

var _ selection.Mirror = (*RedisCache)(nil)
