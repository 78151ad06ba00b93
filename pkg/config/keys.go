package config

const EnvPrefix = "BOOKNEST"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv           = "BOOKNEST_APP_ENV"
	EnvPort             = "BOOKNEST_APP_PORT"
	EnvLogLevel         = "BOOKNEST_LOG_LEVEL"
	EnvLogWarnStack     = "BOOKNEST_LOG_WARN_STACK"
	EnvCatalogPath      = "BOOKNEST_CATALOG_PATH"
	EnvOrderHistoryPath = "BOOKNEST_ORDER_HISTORY_PATH"
	EnvSettlementDelay  = "BOOKNEST_CHECKOUT_SETTLEMENT_DELAY"
	EnvCheckoutCurrency = "BOOKNEST_CHECKOUT_CURRENCY"
	EnvSessionIdleTTL   = "BOOKNEST_SESSION_IDLE_TTL"
	EnvSessionMax       = "BOOKNEST_SESSION_MAX"
	EnvMetricsEnabled   = "BOOKNEST_METRICS_ENABLED"
)
