package config

// EnvPrefix is the envconfig prefix shared by all REWARDS_* variables.
const EnvPrefix = "REWARDS"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "REWARDS_APP_ENV"
	EnvPort     = "REWARDS_APP_PORT"
	EnvLogLevel = "REWARDS_LOG_LEVEL"

	EnvDBDSN  = "REWARDS_DB_DSN"
	EnvDBHost = "REWARDS_DB_HOST"
	EnvDBUser = "REWARDS_DB_USER"
	EnvDBName = "REWARDS_DB_NAME"

	EnvRedisURL = "REWARDS_REDIS_URL"

	EnvSessionSecret  = "REWARDS_SESSION_SECRET"
	EnvSessionIssuer  = "REWARDS_SESSION_ISSUER"
	EnvSessionExpMins = "REWARDS_SESSION_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
