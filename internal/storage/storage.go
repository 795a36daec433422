package storage

import "time"

// Event represents one terminated recommendation cycle. The pipeline never
// surfaces failures to end users, so this audit trail is the operator's
// view of what each sweep actually did.
// Events are expected to be appended in chronological order.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	ChatID    int64     `json:"chat_id"`
	Outcome   string    `json:"outcome"`
	Query     string    `json:"query,omitempty"`
	Products  int       `json:"products,omitempty"`
}

// Recorder abstracts persistence of cycle events.
// Implementations can be file-based, database, etc.
// LoadCycles should return events in chronological order.
// AppendCycle should atomically append a new event.
// Implementations must be safe for concurrent use.
type Recorder interface {
	AppendCycle(event Event) error
	LoadCycles() ([]Event, error)
}
