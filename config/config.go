package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort                    = "8080"
	DefaultRedisAddr               = "localhost:6379"
	DefaultAccessTokenExpiryMin    = 60
	DefaultRefreshTokenExpiryMin   = 10080
	DefaultOtpLength               = 6
	DefaultOtpTTLMin               = 5
	DefaultOtpMaxAttempts          = 5
	DefaultProfileCompletionTTLMin = 20
	DefaultOtpMaxRequestsPerHour   = 5
)

type Config struct {
	Env                     string
	Port                    string
	DBURL                   string
	RedisAddr               string
	RedisPassword           string
	RedisDB                 int
	AccessTokenSecret       string
	RefreshTokenSecret      string
	AccessExpiryMin         int
	RefreshExpiryMin        int
	OtpLength               int
	OtpTTLMin               int
	OtpMaxAttempts          int
	ProfileCompletionTTLMin int
	OtpMaxRequestsPerHour   int
}

// Load reads config/.env.dev or config/.env.prod depending on ENV, then
// resolves every option from the environment. Variables already set in
// the environment take precedence over the file.
func Load() *Config {
	env := getEnv("ENV", "development")

	envFile := "config/.env.dev"
	if env == "production" {
		envFile = "config/.env.prod"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("No %s file found, relying on environment variables", envFile)
	}

	return &Config{
		Env:                     env,
		Port:                    getEnv("PORT", DefaultPort),
		DBURL:                   mustGetEnv("DB_URL"),
		RedisAddr:               getEnv("REDIS_ADDR", DefaultRedisAddr),
		RedisPassword:           getEnv("REDIS_PASSWORD", ""),
		RedisDB:                 getEnvAsInt("REDIS_DB", 0),
		AccessTokenSecret:       mustGetEnv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret:      mustGetEnv("REFRESH_TOKEN_SECRET"),
		AccessExpiryMin:         getEnvAsInt("ACCESS_TOKEN_EXPIRY", DefaultAccessTokenExpiryMin),
		RefreshExpiryMin:        getEnvAsInt("REFRESH_TOKEN_EXPIRY", DefaultRefreshTokenExpiryMin),
		OtpLength:               getEnvAsInt("OTP_LENGTH", DefaultOtpLength),
		OtpTTLMin:               getEnvAsInt("OTP_TTL_MINUTES", DefaultOtpTTLMin),
		OtpMaxAttempts:          getEnvAsInt("OTP_MAX_ATTEMPTS", DefaultOtpMaxAttempts),
		ProfileCompletionTTLMin: getEnvAsInt("PROFILE_COMPLETION_TTL_MINUTES", DefaultProfileCompletionTTLMin),
		OtpMaxRequestsPerHour:   getEnvAsInt("OTP_MAX_REQUESTS_PER_EMAIL_PER_HOUR", DefaultOtpMaxRequestsPerHour),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
