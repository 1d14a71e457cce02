package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/farellandr/eventportal/internal/models"
)

type Config struct {
	Port           string
	GinMode        string
	LogLevel       string
	LogDevelopment bool

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPath     string

	RedisURL  string
	FilterTTL time.Duration

	GatewayURL     string
	GatewayTimeout time.Duration

	JWTSecret string
	JWTTTL    time.Duration

	BrowsePageSize int
	ManagePageSize int
	UploadDir      string
	PassSecret     string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DEVELOPMENT", false)

	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_PATH", "eventportal.db")

	v.SetDefault("FILTER_TTL", "720h")
	v.SetDefault("GATEWAY_TIMEOUT", "10s")
	v.SetDefault("JWT_TTL", "24h")

	v.SetDefault("BROWSE_PAGE_SIZE", 6)
	v.SetDefault("MANAGE_PAGE_SIZE", 8)
	v.SetDefault("UPLOAD_DIR", "./uploads/")
}

// LoadConfig reads configuration from the environment.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{
		Port:           v.GetString("PORT"),
		GinMode:        v.GetString("GIN_MODE"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		LogDevelopment: v.GetBool("LOG_DEVELOPMENT"),

		DBDriver:   strings.ToLower(v.GetString("DB_DRIVER")),
		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		DBPath:     v.GetString("DB_PATH"),

		RedisURL:  v.GetString("REDIS_URL"),
		FilterTTL: v.GetDuration("FILTER_TTL"),

		GatewayURL:     v.GetString("GATEWAY_URL"),
		GatewayTimeout: v.GetDuration("GATEWAY_TIMEOUT"),

		JWTSecret: v.GetString("JWT_SECRET"),
		JWTTTL:    v.GetDuration("JWT_TTL"),

		BrowsePageSize: v.GetInt("BROWSE_PAGE_SIZE"),
		ManagePageSize: v.GetInt("MANAGE_PAGE_SIZE"),
		UploadDir:      v.GetString("UPLOAD_DIR"),
		PassSecret:     v.GetString("PASS_SECRET"),
	}
	if cfg.PassSecret == "" {
		cfg.PassSecret = cfg.JWTSecret
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.GatewayURL == "" {
		return fmt.Errorf("GATEWAY_URL is required")
	}
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.BrowsePageSize <= 0 || c.ManagePageSize <= 0 {
		return fmt.Errorf("page sizes must be positive")
	}
	return nil
}

func (c *Config) dialector() gorm.Dialector {
	if c.DBDriver == "sqlite" {
		return sqlite.Open(c.DBPath)
	}
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
	return postgres.Open(dsn)
}

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(cfg.dialector(), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if cfg.DBDriver == "sqlite" {
		// an in-memory database exists once per connection
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	err = db.AutoMigrate(&models.Role{}, &models.User{}, &models.Notification{})
	if err != nil {
		return nil, err
	}

	if err := seedRoles(db); err != nil {
		return nil, err
	}

	return db, nil
}

func seedRoles(db *gorm.DB) error {
	for _, name := range []string{models.RoleParticipant, models.RoleOrganizer, models.RoleAdmin} {
		role := models.Role{Name: name}
		if err := db.Where(models.Role{Name: name}).FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("seed role %s: %w", name, err)
		}
	}
	return nil
}

// InitRedis connects to REDIS_URL. It returns a nil client when no URL is
// configured.
func InitRedis(cfg *Config) (*redis.Client, error) {
	if cfg.RedisURL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		opts = &redis.Options{Addr: cfg.RedisURL}
	}
	opts.MaxRetries = 3

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}
