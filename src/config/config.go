package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Config agrupa toda la configuración del servicio. Los valores se toman de
// un archivo YAML opcional (CONFIG_PATH) y las variables de entorno tienen
// prioridad sobre el archivo.
type Config struct {
	Port               string `yaml:"port"`
	DBPath             string `yaml:"db_path"`
	JWTSecret          string `yaml:"jwt_secret"`
	FeedbackWebhookURL string `yaml:"feedback_webhook_url"`
	AllowOrigins       string `yaml:"allow_origins"`
	LogLevel           string `yaml:"log_level"`
}

func defaults() *Config {
	return &Config{
		Port:         "3000",
		DBPath:       "./emprendeuni.db",
		JWTSecret:    "fallback-secret-key",
		AllowOrigins: "http://localhost:5173",
		LogLevel:     "info",
	}
}

// Load builds the runtime configuration from the optional YAML file plus
// environment overrides.
func Load() *Config {
	cfg := defaults()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("Warning: cannot read config file %s: %v", path, err)
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Printf("Warning: cannot parse config file %s: %v", path, err)
		}
	}

	overrideFromEnv(&cfg.Port, "PORT")
	overrideFromEnv(&cfg.DBPath, "DB_PATH")
	overrideFromEnv(&cfg.JWTSecret, "JWT_SECRET")
	overrideFromEnv(&cfg.FeedbackWebhookURL, "FEEDBACK_WEBHOOK_URL")
	overrideFromEnv(&cfg.AllowOrigins, "ALLOW_ORIGINS")
	overrideFromEnv(&cfg.LogLevel, "LOG_LEVEL")

	return cfg
}

func overrideFromEnv(dst *string, key string) {
	if value := os.Getenv(key); value != "" {
		*dst = value
	}
}
