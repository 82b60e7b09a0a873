package config

const (
	EnvPrefix = "STOREFRONT"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv         = "STOREFRONT_APP_ENV"
	EnvPort           = "STOREFRONT_APP_PORT"
	EnvLogLevel       = "STOREFRONT_LOG_LEVEL"
	EnvDBDSN          = "STOREFRONT_DB_DSN"
	EnvDBDriver       = "STOREFRONT_DB_DRIVER"
	EnvRedisURL       = "STOREFRONT_REDIS_URL"
	EnvCORSOrigins    = "STOREFRONT_CORS_ALLOWED_ORIGINS"
	EnvAutoMigrate    = "STOREFRONT_AUTO_MIGRATE"
	EnvMetricsEnabled = "STOREFRONT_METRICS_ENABLED"

	EnvPGHost     = "PGHOST"
	EnvPGPort     = "PGPORT"
	EnvPGUser     = "PGUSER"
	EnvPGPassword = "PGPASSWORD"
	EnvPGDatabase = "PGDATABASE"
)

var legacyDBEnvVars = []string{EnvPGHost, EnvPGUser, EnvPGDatabase}
