package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	Env            string
	OpenAIKey      string
	OpenAIBaseURL  string
	ChatModel      string
	EmbeddingModel string
	WhisperModel   string
	LLMTimeout     time.Duration
	SessionIdleTTL time.Duration
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  .env file not found, using system environment variables")
	}

	return Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:  getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		ChatModel:      getEnv("CHAT_MODEL", "gpt-4o-mini"),
		EmbeddingModel: getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
		WhisperModel:   getEnv("WHISPER_MODEL", "whisper-1"),
		LLMTimeout:     time.Duration(getEnvInt("LLM_TIMEOUT_SECONDS", 30)) * time.Second,
		SessionIdleTTL: time.Duration(getEnvInt("SESSION_IDLE_MINUTES", 30)) * time.Minute,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("⚠️  invalid value for %s: %q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}
