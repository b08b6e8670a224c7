package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Search   SearchConfig
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	SessionStore       string // "memory" or "redis"
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host             string
	Port             int
	Email            string
	Password         string
	SenderName       string
	OrderNotifyEmail string // staff inbox that receives order receipts
}

// SearchConfig carries the ranker constants. Defaults mirror the observed
// behavior of the upstream system; override per deployment via env.
type SearchConfig struct {
	CatalogPath    string
	CandidateK     int     // semantic candidates fetched from the vector index
	MaxResults     int     // result cap after ranking and filtering
	SuggestionCap  int     // suggestions shown by the conversational agent
	PriceTolerance float64 // window applied to prices extracted from query text
}

type AIConfig struct {
	EmbeddingProvider string // "gemini" or "ollama"
	OllamaBaseURL     string
	OllamaModel       string
	GoogleGemini      string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			SessionStore:       getEnv("SESSION_STORE", "memory"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:             getEnv("SMTP_HOST", ""),
			Port:             getEnvAsInt("SMTP_PORT", 587),
			Email:            getEnv("SMTP_EMAIL", ""),
			Password:         getEnv("SMTP_PASSWORD", ""),
			SenderName:       getEnv("SMTP_SENDER_NAME", "Fikse"),
			OrderNotifyEmail: getEnv("ORDER_NOTIFY_EMAIL", ""),
		},
		Search: SearchConfig{
			CatalogPath:    getEnv("CATALOG_PATH", "Dataset_categories.csv"),
			CandidateK:     getEnvAsInt("SEARCH_CANDIDATE_K", 100),
			MaxResults:     getEnvAsInt("SEARCH_MAX_RESULTS", 10),
			SuggestionCap:  getEnvAsInt("AGENT_SUGGESTION_CAP", 5),
			PriceTolerance: getEnvAsFloat("SEARCH_PRICE_TOLERANCE", 50),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "ollama"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			GoogleGemini:      getEnv("GOOGLE_GEMINI_API_KEY", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
