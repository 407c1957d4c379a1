package config

import (
	"os"
	"strconv"
	"strings"
)

// insecureJWTFallback keeps the service bootable without JWT_SECRET.
// Never rely on it outside local development.
const insecureJWTFallback = "p9Z!c3P#qLm82^Gd5@wXr7$Bk1Nf4&Hs8Yz0TuV6jKoQ2eCiR%aDnLgMhJ"

type Config struct {
	ServiceName string
	ServerPort  int

	DatabaseURL string

	JWTSecret []byte

	UploadRoot string
	CORSOrigin string

	KafkaBrokers []string

	ESURL      string
	ESUser     string
	ESPassword string
}

func Load() Config {
	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", "sushishop"),
		ServerPort:  EnvIntDefault("SERVER_PORT", 8080),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTSecret: []byte(EnvDefault("JWT_SECRET", insecureJWTFallback)),

		UploadRoot: EnvDefault("UPLOAD_ROOT", "wwwroot/uploads"),
		CORSOrigin: EnvDefault("CORS_ORIGIN", "http://localhost:3000"),

		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),

		ESURL:      os.Getenv("ES_URL"),
		ESUser:     os.Getenv("ES_USER"),
		ESPassword: os.Getenv("ES_PASSWORD"),
	}
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if os.Getenv(key) != "" {
		return os.Getenv(key)
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
