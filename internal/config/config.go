package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config concentra toda a configuração do processo. Montada uma única vez
// no startup e passada explicitamente; nenhum componente lê env por conta
// própria.
type Config struct {
	Port        string
	DatabaseURL string

	EmailHost     string
	EmailPort     int
	EmailAddress  string
	EmailPassword string

	GeminiAPIKey string
	GeminiURL    string
	GeminiVoice  string

	AdBaseURL string
	LogLevel  string
}

const defaultGeminiURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash-preview-tts:generateContent"

// Load carrega o .env (se existir) e monta a Config a partir do ambiente.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		EmailHost:     getEnv("EMAIL_HOST", ""),
		EmailPort:     getEnvAsInt("EMAIL_PORT", 0),
		EmailAddress:  getEnv("EMAIL_ADDRESS", ""),
		EmailPassword: getEnv("EMAIL_PASSWORD", ""),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiURL:    getEnv("GEMINI_URL", defaultGeminiURL),
		GeminiVoice:  getEnv("GEMINI_VOICE", "Kore"),

		AdBaseURL: getEnv("AD_BASE_URL", "https://aoe-personalized-ad.onrender.com"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}
}

// SMTPEnabled indica se temos credenciais completas para enviar email.
// Sem elas o envio fica desabilitado, mas o serviço sobe mesmo assim
// (a landing page continua funcionando).
func (c *Config) SMTPEnabled() bool {
	return c.EmailHost != "" && c.EmailPort != 0 && c.EmailAddress != "" && c.EmailPassword != ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("invalid integer for %s; using default %d", key, defaultValue)
	}
	return defaultValue
}
