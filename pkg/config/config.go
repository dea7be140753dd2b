package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	Session       SessionConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"REWARDS_APP_ENV" required:"true"`
	Port         string `envconfig:"REWARDS_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"REWARDS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"REWARDS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"REWARDS_DB_DSN"`
	Driver string `envconfig:"REWARDS_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"REWARDS_DB_HOST"`
	LegacyPort     int    `envconfig:"REWARDS_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"REWARDS_DB_USER"`
	LegacyPassword string `envconfig:"REWARDS_DB_PASSWORD"`
	LegacyName     string `envconfig:"REWARDS_DB_NAME"`
	LegacySSLMode  string `envconfig:"REWARDS_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"REWARDS_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"REWARDS_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"REWARDS_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"REWARDS_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"REWARDS_REDIS_URL" required:"true"`
	Address      string        `envconfig:"REWARDS_REDIS_ADDR"`
	Password     string        `envconfig:"REWARDS_REDIS_PASSWORD"`
	DB           int           `envconfig:"REWARDS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"REWARDS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"REWARDS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"REWARDS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"REWARDS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"REWARDS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// SessionConfig drives the signed session cookie issued at login.
type SessionConfig struct {
	Secret            string `envconfig:"REWARDS_SESSION_SECRET" required:"true"`
	Issuer            string `envconfig:"REWARDS_SESSION_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"REWARDS_SESSION_EXPIRATION_MINUTES" default:"1440"`
	CookieName        string `envconfig:"REWARDS_SESSION_COOKIE_NAME" default:"rewards_session"`
	CookieSecure      bool   `envconfig:"REWARDS_SESSION_COOKIE_SECURE" default:"false"`
}

// TTL returns the session lifetime configured in minutes.
func (s SessionConfig) TTL() time.Duration {
	if s.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(s.ExpirationMinutes) * time.Minute
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"REWARDS_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginIPLimit    int           `envconfig:"REWARDS_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	LoginEmailLimit int           `envconfig:"REWARDS_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"10"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"REWARDS_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
