package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

// InsecureDevSecret is only ever used when APP_ENV=development and JWT_SECRET
// is unset. It is published in this repository, so any token signed with it
// can be forged by anyone.
const InsecureDevSecret = "replace_with_a_strong_secret_in_prod"

const EnvDevelopment = "development"

var (
	ErrMissingJWTSecret  = errors.New("JWT_SECRET must be set outside development")
	ErrInsecureJWTSecret = errors.New("JWT_SECRET uses the published development secret")
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Analytics AnalyticsConfig
}

type AppConfig struct {
	Port          string
	Env           string
	LogLevel      string
	StaticDir     string
	PublicBaseURL string
}

type DBConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	TimeZone     string
	MaxIdleConns int
	MaxOpenConns int
	AutoMigrate  bool
	LogLevel     string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	Issuer        string
	QRTokenExpiry time.Duration

	// InsecureDefault is set when Secret fell back to InsecureDevSecret.
	InsecureDefault bool
}

type AnalyticsConfig struct {
	CacheTTL time.Duration
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == EnvDevelopment
}

func LoadConfig() (*Config, error) {
	return loadConfig(".env")
}

func loadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	qrExpiry, err := time.ParseDuration(v.GetString("QR_TOKEN_EXPIRY"))
	if err != nil || qrExpiry <= 0 {
		qrExpiry = 30 * 24 * time.Hour
	}

	cacheTTL, err := time.ParseDuration(v.GetString("ANALYTICS_CACHE_TTL"))
	if err != nil || cacheTTL < 0 {
		cacheTTL = 0
	}

	config := &Config{
		App: AppConfig{
			Port:          v.GetString("APP_PORT"),
			Env:           v.GetString("APP_ENV"),
			LogLevel:      v.GetString("LOG_LEVEL"),
			StaticDir:     v.GetString("APP_STATIC_DIR"),
			PublicBaseURL: v.GetString("PUBLIC_BASE_URL"),
		},
		DB: DBConfig{
			Host:         v.GetString("DB_HOST"),
			Port:         v.GetString("DB_PORT"),
			User:         v.GetString("DB_USER"),
			Password:     v.GetString("DB_PASSWORD"),
			Name:         v.GetString("DB_NAME"),
			SSLMode:      v.GetString("DB_SSLMODE"),
			TimeZone:     v.GetString("DB_TIMEZONE"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
			AutoMigrate:  v.GetBool("DB_AUTO_MIGRATE"),
			LogLevel:     v.GetString("DB_LOG_LEVEL"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        v.GetString("JWT_SECRET"),
			Issuer:        v.GetString("JWT_ISSUER"),
			QRTokenExpiry: qrExpiry,
		},
		Analytics: AnalyticsConfig{
			CacheTTL: cacheTTL,
		},
	}

	if err := config.resolveSecret(); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", EnvDevelopment)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "hospital_db")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_MAX_OPEN_CONNS", 100)
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("JWT_ISSUER", "hospital-records")
	v.SetDefault("QR_TOKEN_EXPIRY", "720h")
	v.SetDefault("ANALYTICS_CACHE_TTL", "30s")
}

// resolveSecret enforces the signing secret policy: required everywhere but
// development, where an unset secret falls back to InsecureDevSecret.
func (c *Config) resolveSecret() error {
	switch {
	case c.JWT.Secret == "" && c.IsDevelopment():
		c.JWT.Secret = InsecureDevSecret
		c.JWT.InsecureDefault = true
	case c.JWT.Secret == "":
		return ErrMissingJWTSecret
	case c.JWT.Secret == InsecureDevSecret && !c.IsDevelopment():
		return ErrInsecureJWTSecret
	case c.JWT.Secret == InsecureDevSecret:
		c.JWT.InsecureDefault = true
	}
	return nil
}
