package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Booking  BookingConfig  `yaml:"booking"`
	Catalog  CatalogConfig  `yaml:"catalog"`
}

type HTTPConfig struct {
	Address           string `yaml:"address"`
	SwaggerDir        string `yaml:"swagger_dir"`
	LastBookingPath   string `yaml:"last_booking_path"`
	CreateBookingPath string `yaml:"create_booking_path"`
	SelectionPath     string `yaml:"selection_path"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingTopic       string   `yaml:"booking_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type BookingConfig struct {
	SelectionTTLMinutes    int `yaml:"selection_ttl_minutes"`
	LastBookingCacheTTLSec int `yaml:"last_booking_cache_ttl_seconds"`
}

// CatalogConfig lists the movies and time slots offered to clients. Seat
// categories are part of the booking schema and are not configurable.
type CatalogConfig struct {
	Movies []string `yaml:"movies"`
	Slots  []string `yaml:"slots"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.HTTP.LastBookingPath == "" {
		c.HTTP.LastBookingPath = "/api/booking"
	}
	if c.HTTP.CreateBookingPath == "" {
		c.HTTP.CreateBookingPath = "/api/booking"
	}
	if c.HTTP.SelectionPath == "" {
		c.HTTP.SelectionPath = "/api/selection"
	}
	if c.Booking.SelectionTTLMinutes == 0 {
		c.Booking.SelectionTTLMinutes = 30
	}
}
