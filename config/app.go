package config

type App struct {
	Port               string `env:"APP_PORT" default:"8080"`
	Env                string `env:"APP_ENV" default:"dev"`
	BackendAPIURL      string `env:"BACKEND_API_URL,required"`
	MidtransClientKey  string `env:"MIDTRANS_CLIENT_KEY"`
	MidtransProduction bool   `env:"MIDTRANS_PRODUCTION" default:"false"`
	RedisAddr          string `env:"REDIS_ADDR" default:"localhost:6379"`
	SessionTTLHours    int    `env:"SESSION_TTL_HOURS" default:"24"`
}
