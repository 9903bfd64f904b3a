package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int    `json:"port"`
	Environment string `json:"environment"`

	// MongoDB configuration
	MongoURI      string `json:"mongo_uri"`
	MongoDatabase string `json:"mongo_database"`

	// Redis configuration
	RedisURI      string        `json:"redis_uri"`
	RedisPassword string        `json:"redis_password"`
	RedisDB       int           `json:"redis_db"`
	RedisTTL      time.Duration `json:"redis_ttl"`

	// Collection names
	UsersCollection         string `json:"mongo_users_collection"`
	ConfigCollection        string `json:"mongo_config_collection"`
	SharedStudiesCollection string `json:"mongo_shared_studies_collection"`
	FeedbackCollection      string `json:"mongo_feedback_collection"`

	// Sync worker configuration
	DBWorkerCount int `json:"db_worker_count"`

	// Gemini configuration
	GeminiAPIKey string `json:"-"`
	GeminiModel  string `json:"gemini_model"`

	// Supabase storage configuration
	SupabaseURL    string `json:"supabase_url"`
	SupabaseKey    string `json:"-"`
	SupabaseBucket string `json:"supabase_bucket"`

	// Admin console configuration
	AdminGroup    string `json:"admin_group"`
	AdminUser     string `json:"admin_user"`
	AdminPassword string `json:"-"`
	JWTSecret     string `json:"-"`

	// Tracing configuration
	TracingEnabled  bool   `json:"tracing_enabled"`
	TracingEndpoint string `json:"tracing_endpoint"`
}

var (
	AppConfig *Config
)

// LoadConfig loads configuration from environment variables
func LoadConfig() error {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	redisTTL, err := time.ParseDuration(getEnvOrDefault("REDIS_TTL", "60m"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_TTL: %w", err)
	}

	workerCount, err := strconv.Atoi(getEnvOrDefault("DB_WORKER_COUNT", "5"))
	if err != nil {
		return fmt.Errorf("invalid DB_WORKER_COUNT: %w", err)
	}

	AppConfig = &Config{
		// Server configuration
		Port:        port,
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),

		// MongoDB configuration
		MongoURI:      getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGODB_DATABASE", "exegese"),

		// Redis configuration
		RedisURI:      getEnvOrDefault("REDIS_URI", "localhost:6379"),
		RedisPassword: getEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		RedisTTL:      redisTTL,

		// Collection names
		UsersCollection:         getEnvOrDefault("MONGODB_USERS_COLLECTION", "users"),
		ConfigCollection:        getEnvOrDefault("MONGODB_CONFIG_COLLECTION", "config"),
		SharedStudiesCollection: getEnvOrDefault("MONGODB_SHARED_STUDIES_COLLECTION", "shared_studies"),
		FeedbackCollection:      getEnvOrDefault("MONGODB_FEEDBACK_COLLECTION", "feedback"),

		// Sync worker configuration
		DBWorkerCount: workerCount,

		// Gemini configuration
		GeminiAPIKey: getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:  getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),

		// Supabase storage configuration
		SupabaseURL:    getEnvOrDefault("SUPABASE_URL", ""),
		SupabaseKey:    getEnvOrDefault("SUPABASE_KEY", ""),
		SupabaseBucket: getEnvOrDefault("SUPABASE_BUCKET", "uploads"),

		// Admin console configuration
		AdminGroup:    getEnvOrDefault("ADMIN_GROUP", "exegese-admin"),
		AdminUser:     getEnvOrDefault("ADMIN_USER", "admin"),
		AdminPassword: getEnvOrDefault("ADMIN_PASSWORD", ""),
		JWTSecret:     getEnvOrDefault("JWT_SECRET", ""),

		// Tracing configuration
		TracingEnabled:  getEnvOrDefault("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
