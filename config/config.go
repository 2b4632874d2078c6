package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Booking  BookingConfig
	Identity IdentityConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

// BookingConfig carries the booking-domain knobs. MinIssueDescLen is the
// single server-side source of truth for the issue-description minimum.
type BookingConfig struct {
	ReferencePrefix  string
	MinIssueDescLen  int
	ReferenceRetries int
}

// IdentityConfig configures the development identity verifier. A real
// provider implementation replaces it at bootstrap in production.
type IdentityConfig struct {
	DevToken string
	DevUID   string
	DevEmail string
	DevName  string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.SetDefault("BOOKING_REFERENCE_PREFIX", "REP")
	viper.SetDefault("BOOKING_MIN_ISSUE_DESC", 5)
	viper.SetDefault("BOOKING_REFERENCE_RETRIES", 3)
	viper.SetDefault("IDENTITY_DEV_TOKEN", "test-token")
	viper.SetDefault("IDENTITY_DEV_UID", "test-user-id")
	viper.SetDefault("IDENTITY_DEV_EMAIL", "test@example.com")
	viper.SetDefault("IDENTITY_DEV_NAME", "Test User")

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 7 * 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
		Booking: BookingConfig{
			ReferencePrefix:  viper.GetString("BOOKING_REFERENCE_PREFIX"),
			MinIssueDescLen:  viper.GetInt("BOOKING_MIN_ISSUE_DESC"),
			ReferenceRetries: viper.GetInt("BOOKING_REFERENCE_RETRIES"),
		},
		Identity: IdentityConfig{
			DevToken: viper.GetString("IDENTITY_DEV_TOKEN"),
			DevUID:   viper.GetString("IDENTITY_DEV_UID"),
			DevEmail: viper.GetString("IDENTITY_DEV_EMAIL"),
			DevName:  viper.GetString("IDENTITY_DEV_NAME"),
		},
	}

	return config, nil
}
