package telegram

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"sales-assistant/internal/llm"
)

const (
	greeting = "👋 Hi there! I'm your Davis & Shirtliff Assistant.\n\n" +
		"Feel free to chat with me about anything you need help with!"
	apology = "⚡ Sorry, I'm having trouble thinking right now."
)

// MessageStore is the slice of the store the bot needs: record inbound
// messages. A failure here never blocks the conversational reply.
type MessageStore interface {
	AppendMessage(ctx context.Context, chatID int64, displayName, text string) error
}

type Bot struct {
	api       *tgbotapi.BotAPI
	s         sender
	store     MessageStore
	llmClient llm.Client
	parseMode string
}

func New(botToken string, store MessageStore, llmClient llm.Client, parseMode string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:       api,
		s:         botAPISender{api: api},
		store:     store,
		llmClient: llmClient,
		parseMode: parseMode,
	}, nil
}

// Notifier returns the dispatcher used by the recommendation pipeline,
// bound to the same bot API.
func (b *Bot) Notifier() *Notifier {
	return &Notifier{s: b.s, parseMode: b.parseMode}
}

func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message != nil {
			b.handleIncomingMessage(ctx, update.Message)
		}
	}
}

// Stop closes the update channel, letting Start return.
func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
}

func (b *Bot) handleIncomingMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || msg.Text == "" {
		return
	}

	chatID := msg.Chat.ID
	displayName := msg.From.UserName
	if displayName == "" {
		displayName = msg.From.FirstName
	}

	if msg.IsCommand() && msg.Command() == "start" {
		log.Printf("🚪 User %d started the bot", msg.From.ID)
		b.recordMessage(ctx, chatID, displayName, "started the bot")
		b.sendMessage(chatID, greeting)
		return
	}

	log.Printf("📥 Received text from user %d (@%s): %q", msg.From.ID, msg.From.UserName, msg.Text)

	// Save chat history first so the recommendation sweep sees the
	// activity even if the reply below fails.
	b.recordMessage(ctx, chatID, displayName, msg.Text)

	b.sendMessage(chatID, b.reply(ctx, msg.Text))
}

func (b *Bot) recordMessage(ctx context.Context, chatID int64, displayName, text string) {
	if err := b.store.AppendMessage(ctx, chatID, displayName, text); err != nil {
		log.Printf("❌ Failed to log user message (%d): %v", chatID, err)
	}
}

// reply generates the conversational answer. Best effort: any LLM failure
// degrades to a static apology, never an error message.
func (b *Bot) reply(ctx context.Context, text string) string {
	resp, err := b.llmClient.Generate(ctx, []llm.Message{
		{Role: "user", Content: buildPersonaPrompt(text)},
	})
	if err != nil {
		log.Printf("❌ Failed to generate reply: %v", err)
		return apology
	}
	log.Printf("✅ Reply generated [model=%s, tokens: prompt=%d, completion=%d, total=%d]",
		resp.Model, resp.PromptTokens, resp.CompletionTokens, resp.TotalTokens)
	return resp.Content
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.s.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}
