package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/moviebooking/config"
	"github.com/Domenick1991/moviebooking/internal/bootstrap"
	"github.com/Domenick1991/moviebooking/internal/cache"
	"github.com/Domenick1991/moviebooking/internal/domain"
	"github.com/Domenick1991/moviebooking/internal/kafka"
	"github.com/Domenick1991/moviebooking/internal/repository"
	"github.com/Domenick1991/moviebooking/internal/selection"
	"github.com/Domenick1991/moviebooking/internal/service/booking"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(
		cfg.Redis,
		time.Duration(cfg.Booking.SelectionTTLMinutes)*time.Minute,
		time.Duration(cfg.Booking.LastBookingCacheTTLSec)*time.Second,
	)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	bookingRepo := repository.NewBookingRepository(pool)
	catalog := domain.Catalog{Movies: cfg.Catalog.Movies, Slots: cfg.Catalog.Slots}
	bookingService := booking.NewBookingService(
		bookingRepo,
		catalog,
		producer,
		cfg.Kafka.BookingTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		booking.WithCache(redisCache),
	)
	selections := selection.NewManager(redisCache)

	if err := bootstrap.Run(ctx, cfg, bookingService, selections); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
