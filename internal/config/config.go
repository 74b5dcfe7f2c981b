package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Источники каталога мест
const (
	PlacesSourceStatic   = "static"
	PlacesSourcePostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Session  SessionConfig
	Search   SearchConfig
	Map      MapConfig
	Catalog  CatalogConfig
	Log      LogConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	AllowOrigins string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	CatalogCacheTTL time.Duration
}

type SessionConfig struct {
	TTL time.Duration
}

type SearchConfig struct {
	RecentLimit  int
	PopularLimit int
}

// MapConfig - параметры карты. AccessToken передаётся виджету как есть.
type MapConfig struct {
	AccessToken string
	CenterLat   float64
	CenterLon   float64
	Zoom        float64
	PlaceZoom   float64
}

type CatalogConfig struct {
	Source string
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	BatchSize     int
	MaxRetries    int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("API_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "vivemap")
	v.SetDefault("DB_NAME", "vivemap")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("CATALOG_CACHE_TTL", 600)
	v.SetDefault("SESSION_TTL", 86400)
	v.SetDefault("SEARCH_RECENT_LIMIT", 5)
	v.SetDefault("SEARCH_POPULAR_LIMIT", 10)

	v.SetDefault("MAP_CENTER_LAT", -12.0664)
	v.SetDefault("MAP_CENTER_LON", -75.2049)
	v.SetDefault("MAP_ZOOM", 13)
	v.SetDefault("MAP_PLACE_ZOOM", 15)

	v.SetDefault("PLACES_SOURCE", PlacesSourceStatic)
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("WORKER_ENABLED", true)
	v.SetDefault("WORKER_CONSUMER_GROUP", "popular-searches-workers")
	v.SetDefault("WORKER_BATCH_SIZE", 20)
	v.SetDefault("WORKER_MAX_RETRIES", 3)
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile - как Load, но с явным путём к env-файлу. Отсутствие файла не ошибка.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("API_HOST"),
			Port:         v.GetInt("API_PORT"),
			Env:          v.GetString("API_ENV"),
			AllowOrigins: v.GetString("API_ALLOW_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			CatalogCacheTTL: time.Duration(v.GetInt("CATALOG_CACHE_TTL")) * time.Second,
		},
		Session: SessionConfig{
			TTL: time.Duration(v.GetInt("SESSION_TTL")) * time.Second,
		},
		Search: SearchConfig{
			RecentLimit:  v.GetInt("SEARCH_RECENT_LIMIT"),
			PopularLimit: v.GetInt("SEARCH_POPULAR_LIMIT"),
		},
		Map: MapConfig{
			AccessToken: v.GetString("MAPBOX_ACCESS_TOKEN"),
			CenterLat:   v.GetFloat64("MAP_CENTER_LAT"),
			CenterLon:   v.GetFloat64("MAP_CENTER_LON"),
			Zoom:        v.GetFloat64("MAP_ZOOM"),
			PlaceZoom:   v.GetFloat64("MAP_PLACE_ZOOM"),
		},
		Catalog: CatalogConfig{
			Source: strings.ToLower(strings.TrimSpace(v.GetString("PLACES_SOURCE"))),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:       v.GetBool("WORKER_ENABLED"),
			ConsumerGroup: v.GetString("WORKER_CONSUMER_GROUP"),
			BatchSize:     v.GetInt("WORKER_BATCH_SIZE"),
			MaxRetries:    v.GetInt("WORKER_MAX_RETRIES"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения, от которых зависит запуск
func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case PlacesSourceStatic, PlacesSourcePostgres:
	default:
		return fmt.Errorf("invalid PLACES_SOURCE %q: expected %s or %s",
			c.Catalog.Source, PlacesSourceStatic, PlacesSourcePostgres)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid API_PORT %d", c.Server.Port)
	}
	if c.Search.RecentLimit <= 0 {
		return fmt.Errorf("SEARCH_RECENT_LIMIT must be positive")
	}
	if c.Worker.BatchSize <= 0 {
		return fmt.Errorf("WORKER_BATCH_SIZE must be positive")
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// UsesPostgres - каталог мест читается из PostgreSQL
func (c *Config) UsesPostgres() bool {
	return c.Catalog.Source == PlacesSourcePostgres
}
