package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderYandex LLMProvider = "yandex"
)

type Config struct {
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN,required"`
	AdminChatID      int64  `env:"ADMIN_CHAT_ID"`

	// LLM settings
	LLMProvider      LLMProvider `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey     string      `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string      `env:"OPENAI_BASE_URL"`
	OpenAIModel      string      `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	YandexOAuthToken string      `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string      `env:"YANDEX_FOLDER_ID"`

	// OpenRouter (optional)
	OpenRouterReferrer string `env:"OPENROUTER_REFERRER"`
	OpenRouterTitle    string `env:"OPENROUTER_TITLE"`

	// Product search
	SerperAPIKey   string `env:"SERPER_API_KEY"`
	SerperBaseURL  string `env:"SERPER_BASE_URL" envDefault:"https://google.serper.dev"`
	SearchLocation string `env:"SEARCH_LOCATION" envDefault:"Kenya"`
	SearchGL       string `env:"SEARCH_GL" envDefault:"ke"`

	// Storage
	DatabasePath string `env:"DATABASE_PATH" envDefault:"data/sales_assistant.db"`
	CycleLogPath string `env:"CYCLE_LOG_PATH" envDefault:"logs/cycles.jsonl"`

	// Sweeps
	RecommendInterval time.Duration `env:"RECOMMEND_INTERVAL" envDefault:"1m"`
	DigestInterval    time.Duration `env:"DIGEST_INTERVAL" envDefault:"5m"`

	// Formatting
	MessageParseMode string `env:"MESSAGE_PARSE_MODE" envDefault:"Markdown"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
