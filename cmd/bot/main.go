package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"sales-assistant/internal/config"
	"sales-assistant/internal/llm"
	"sales-assistant/internal/recommend"
	"sales-assistant/internal/scheduler"
	"sales-assistant/internal/search"
	"sales-assistant/internal/storage"
	"sales-assistant/internal/store"
	"sales-assistant/internal/synthesis"
	"sales-assistant/internal/telegram"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	db, err := store.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	st := store.New(db)

	factory := &llm.Factory{
		OpenaiAPIKey:       cfg.OpenAIAPIKey,
		OpenaiBaseURL:      cfg.OpenAIBaseURL,
		OpenRouterReferrer: cfg.OpenRouterReferrer,
		OpenRouterTitle:    cfg.OpenRouterTitle,
		YandexOAuthToken:   cfg.YandexOAuthToken,
		YandexFolderID:     cfg.YandexFolderID,
	}
	llmClient, err := factory.CreateClient(string(cfg.LLMProvider), cfg.OpenAIModel)
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}

	bot, err := telegram.New(cfg.TelegramBotToken, st, llmClient, cfg.MessageParseMode)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	engine := recommend.NewEngine(
		st,
		synthesis.New(llmClient),
		search.NewClient(cfg.SerperAPIKey, cfg.SerperBaseURL, cfg.SearchLocation, cfg.SearchGL),
		bot.Notifier(),
		cfg.AdminChatID,
	)
	if cfg.CycleLogPath != "" {
		rec, err := storage.NewFileRecorder(cfg.CycleLogPath)
		if err != nil {
			log.Printf("failed to init cycle recorder: %v", err)
		} else {
			engine.SetRecorder(rec)
		}
	}

	sched := scheduler.New()
	sched.SetRecommendFunc(engine.SweepRecommendations)
	sched.SetDigestFunc(engine.SweepDigest)
	if err := sched.Start(cfg.RecommendInterval, cfg.DigestInterval); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}

	go bot.Start(context.Background())
	log.Println("🤖 Davis & Shirtliff Assistant is running...")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("🛑 Shutting down...")
	sched.Stop()
	bot.Stop()
}
