package config

// EnvPrefix is applied by envconfig when resolving variables.
const EnvPrefix = "wishtrack"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
	AppEnvTest = "test"
)

const (
	EnvAppEnv = "WISHTRACK_APP_ENV"
	EnvDBDSN  = "WISHTRACK_DB_DSN"
	EnvDBHost = "WISHTRACK_DB_HOST"
	EnvDBUser = "WISHTRACK_DB_USER"
	EnvDBName = "WISHTRACK_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
