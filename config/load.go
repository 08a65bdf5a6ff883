package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func Load() App {
	// .env is optional; real deployments set env directly.
	_ = godotenv.Load()

	cfg := App{
		Port:               getenv("APP_PORT", "8080"),
		Env:                getenv("APP_ENV", "dev"),
		BackendAPIURL:      must("BACKEND_API_URL"),
		MidtransClientKey:  os.Getenv("MIDTRANS_CLIENT_KEY"),
		MidtransProduction: getbool("MIDTRANS_PRODUCTION"),
		RedisAddr:          getenv("REDIS_ADDR", "localhost:6379"),
		SessionTTLHours:    getint("SESSION_TTL_HOURS", 24),
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getbool(k string) bool {
	b, _ := strconv.ParseBool(os.Getenv(k))
	return b
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		slog.Error("required env missing", "key", k)
		panic("missing env " + k)
	}
	return v
}
