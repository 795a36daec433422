package recommend

import (
	"context"
	"log"
	"time"

	"sales-assistant/internal/model"
	"sales-assistant/internal/storage"
)

const (
	recentMessageCount = 10
	maxTopProducts     = 5
)

// Store is the slice of the message store the engine needs. All user-record
// mutation goes through these operations.
type Store interface {
	ListEligibleUsers(ctx context.Context) ([]model.User, error)
	RecentMessages(ctx context.Context, chatID int64, n int) ([]model.Message, error)
	SaveTopProducts(ctx context.Context, chatID int64, products []model.Product) error
	AdvanceWatermark(ctx context.Context, chatID int64, at time.Time) error
	GetAllUsers(ctx context.Context) ([]model.User, error)
}

type Synthesizer interface {
	Synthesize(ctx context.Context, messages []model.Message) (string, error)
}

type Searcher interface {
	Search(ctx context.Context, query string) ([]model.Product, error)
}

type Dispatcher interface {
	Send(chatID int64, text string) error
}

// Outcome is the terminal state of one recommendation cycle.
type Outcome int

const (
	Dispatched Outcome = iota
	SkippedNoQuery
	SkippedNoResults
	DispatchFailed
)

func (o Outcome) String() string {
	switch o {
	case Dispatched:
		return "dispatched"
	case SkippedNoQuery:
		return "skipped_no_query"
	case SkippedNoResults:
		return "skipped_no_results"
	case DispatchFailed:
		return "dispatch_failed"
	default:
		return "unknown"
	}
}

// Engine runs the recommendation pipeline for one user at a time:
// synthesize a query from recent chat, search products, persist the top
// results, notify the user, then advance the watermark.
type Engine struct {
	store       Store
	synthesizer Synthesizer
	searcher    Searcher
	dispatcher  Dispatcher
	adminChatID int64
	inflight    *inflightSet
	recorder    storage.Recorder
	now         func() time.Time
}

func NewEngine(store Store, synthesizer Synthesizer, searcher Searcher, dispatcher Dispatcher, adminChatID int64) *Engine {
	return &Engine{
		store:       store,
		synthesizer: synthesizer,
		searcher:    searcher,
		dispatcher:  dispatcher,
		adminChatID: adminChatID,
		inflight:    newInflightSet(),
		now:         time.Now,
	}
}

// SetRecorder enables the cycle audit trail.
func (e *Engine) SetRecorder(rec storage.Recorder) {
	e.recorder = rec
}

func (e *Engine) record(chatID int64, outcome Outcome, query string, productCount int) {
	if e.recorder == nil {
		return
	}
	ev := storage.Event{
		Timestamp: e.now().UTC(),
		ChatID:    chatID,
		Outcome:   outcome.String(),
		Query:     query,
		Products:  productCount,
	}
	if err := e.recorder.AppendCycle(ev); err != nil {
		log.Printf("❌ Failed to record cycle for user %d: %v", chatID, err)
	}
}

// RunCycle executes the pipeline for one user. Steps run strictly in order;
// the top-products write deliberately precedes dispatch and is not rolled
// back when dispatch fails, while the watermark moves only after a
// successful dispatch so the user stays eligible for a retry.
func (e *Engine) RunCycle(ctx context.Context, user model.User) (outcome Outcome) {
	log.Printf("🚀 Starting recommendation cycle for user %d", user.ChatID)

	var query string
	var productCount int
	defer func() { e.record(user.ChatID, outcome, query, productCount) }()

	messages, err := e.store.RecentMessages(ctx, user.ChatID, recentMessageCount)
	if err != nil {
		log.Printf("❌ Failed to load recent messages for user %d: %v", user.ChatID, err)
		return SkippedNoQuery
	}

	query, err = e.synthesizer.Synthesize(ctx, messages)
	if err != nil {
		log.Printf("❌ Synthesis failed for user %d: %v", user.ChatID, err)
		return SkippedNoQuery
	}
	if query == "" {
		log.Printf("⚠️ No query generated for user %d. Skipping recommendation.", user.ChatID)
		return SkippedNoQuery
	}
	log.Printf("🧠 Synthesized query for user %d: %q", user.ChatID, query)

	products, err := e.searcher.Search(ctx, query)
	if err != nil {
		log.Printf("❌ Search failed for user %d: %v", user.ChatID, err)
		return SkippedNoResults
	}
	if len(products) == 0 {
		log.Printf("⚠️ No products found for user %d. Skipping recommendation.", user.ChatID)
		return SkippedNoResults
	}

	top := products
	if len(top) > maxTopProducts {
		top = top[:maxTopProducts]
	}
	productCount = len(top)
	if err := e.store.SaveTopProducts(ctx, user.ChatID, top); err != nil {
		log.Printf("❌ Failed to save top products for user %d: %v", user.ChatID, err)
		return SkippedNoResults
	}
	log.Printf("✅ Saved top %d products for user %d", len(top), user.ChatID)

	text := formatRecommendation(top)
	if err := e.dispatcher.Send(user.ChatID, text); err != nil {
		log.Printf("❌ Failed to send recommendation to user %d: %v", user.ChatID, err)
		return DispatchFailed
	}

	at := e.now().UTC()
	if err := e.store.AdvanceWatermark(ctx, user.ChatID, at); err != nil {
		log.Printf("❌ Failed to advance watermark for user %d: %v", user.ChatID, err)
	}
	log.Printf("✅ Recommendation sent to user %d", user.ChatID)
	return Dispatched
}
