package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	Cron          CronConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
}

type AppConfig struct {
	Env          string `envconfig:"UREVENT_APP_ENV" default:"development"`
	Port         string `envconfig:"UREVENT_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"UREVENT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"UREVENT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"UREVENT_DB_DSN"`
	Driver string `envconfig:"UREVENT_DB_DRIVER" default:"postgres"`

	MaxOpenConns    int           `envconfig:"UREVENT_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"UREVENT_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"UREVENT_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"UREVENT_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"UREVENT_REDIS_URL"`
	Address      string        `envconfig:"UREVENT_REDIS_ADDR"`
	Password     string        `envconfig:"UREVENT_REDIS_PASSWORD"`
	DB           int           `envconfig:"UREVENT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"UREVENT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"UREVENT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"UREVENT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"UREVENT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"UREVENT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"UREVENT_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"UREVENT_JWT_ISSUER" default:"urevent360"`
	ExpirationMinutes      int    `envconfig:"UREVENT_JWT_EXPIRATION_MINUTES" default:"60"`
	RefreshTokenTTLMinutes int    `envconfig:"UREVENT_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"UREVENT_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"UREVENT_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"UREVENT_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"UREVENT_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"UREVENT_ARGON_KEY_LEN" default:"32"`
}

type CronConfig struct {
	Interval time.Duration `envconfig:"UREVENT_CRON_INTERVAL" default:"1h"`
	LockTTL  time.Duration `envconfig:"UREVENT_CRON_LOCK_TTL" default:"65m"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"UREVENT_AUTH_LOGIN_WINDOW" default:"5m"`
	LoginIPLimit       int           `envconfig:"UREVENT_AUTH_LOGIN_IP_LIMIT" default:"20"`
	LoginEmailLimit    int           `envconfig:"UREVENT_AUTH_LOGIN_EMAIL_LIMIT" default:"10"`
	RegisterWindow     time.Duration `envconfig:"UREVENT_AUTH_REGISTER_WINDOW" default:"15m"`
	RegisterIPLimit    int           `envconfig:"UREVENT_AUTH_REGISTER_IP_LIMIT" default:"10"`
	RegisterEmailLimit int           `envconfig:"UREVENT_AUTH_REGISTER_EMAIL_LIMIT" default:"5"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"UREVENT_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"UREVENT_AUTO_MIGRATE" default:"false"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if !c.FeatureFlags.UseSQLite && c.DB.DSN == "" {
		return fmt.Errorf("UREVENT_DB_DSN is required")
	}
	if c.Redis.URL != "" {
		if _, err := url.Parse(c.Redis.URL); err != nil {
			return fmt.Errorf("invalid UREVENT_REDIS_URL: %w", err)
		}
	}
	if c.JWT.ExpirationMinutes <= 0 {
		return fmt.Errorf("UREVENT_JWT_EXPIRATION_MINUTES must be positive")
	}
	return nil
}
