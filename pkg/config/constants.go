package config

const (
	EnvPrefix = "MUNCHBAY"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv          = "MUNCHBAY_APP_ENV"
	EnvPort            = "MUNCHBAY_APP_PORT"
	EnvUpstreamBaseURL = "MUNCHBAY_UPSTREAM_BASE_URL"
	EnvRestaurantID    = "MUNCHBAY_RESTAURANT_ID"
	EnvRedisURL        = "MUNCHBAY_REDIS_URL"
)
