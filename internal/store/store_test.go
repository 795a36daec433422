package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"sales-assistant/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	return New(db)
}

func TestAppendMessage_CreatesUserWithEpochWatermark(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.AppendMessage(ctx, 42, "alice", "hello"); err != nil {
		t.Fatalf("append: %v", err)
	}

	users, err := s.GetAllUsers(ctx)
	if err != nil {
		t.Fatalf("get all users: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
	u := users[0]
	if u.ChatID != 42 || u.DisplayName != "alice" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if !u.LastRecommendationAt.Equal(time.Unix(0, 0).UTC()) {
		t.Fatalf("watermark not at epoch: %v", u.LastRecommendationAt)
	}
}

func TestAppendMessage_DisplayNameSetOnce(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.AppendMessage(ctx, 42, "alice", "hello"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.AppendMessage(ctx, 42, "renamed", "again"); err != nil {
		t.Fatalf("append: %v", err)
	}

	users, _ := s.GetAllUsers(ctx)
	if users[0].DisplayName != "alice" {
		t.Fatalf("display name overwritten: %q", users[0].DisplayName)
	}

	// But an absent name is filled in later.
	if err := s.AppendMessage(ctx, 7, "", "hi"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.AppendMessage(ctx, 7, "bob", "hi again"); err != nil {
		t.Fatalf("append: %v", err)
	}
	users, _ = s.GetAllUsers(ctx)
	for _, u := range users {
		if u.ChatID == 7 && u.DisplayName != "bob" {
			t.Fatalf("absent display name not filled in: %q", u.DisplayName)
		}
	}
}

func TestListEligibleUsers_StrictlyNewerThanWatermark(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.AppendMessage(ctx, 1, "alice", "I need a pump"); err != nil {
		t.Fatalf("append: %v", err)
	}

	// Fresh user with a message: eligible (watermark at epoch).
	eligible, err := s.ListEligibleUsers(ctx)
	if err != nil {
		t.Fatalf("list eligible: %v", err)
	}
	if len(eligible) != 1 || eligible[0].ChatID != 1 {
		t.Fatalf("expected user 1 eligible, got %+v", eligible)
	}

	// Watermark exactly at the last message time: not eligible.
	msgs, err := s.RecentMessages(ctx, 1, 10)
	if err != nil {
		t.Fatalf("recent messages: %v", err)
	}
	lastAt := msgs[len(msgs)-1].Timestamp
	if err := s.AdvanceWatermark(ctx, 1, lastAt); err != nil {
		t.Fatalf("advance watermark: %v", err)
	}
	eligible, _ = s.ListEligibleUsers(ctx)
	if len(eligible) != 0 {
		t.Fatalf("equal timestamp must not be eligible, got %+v", eligible)
	}

	// New activity after the watermark: eligible again.
	time.Sleep(5 * time.Millisecond)
	if err := s.AppendMessage(ctx, 1, "alice", "any dayliff options?"); err != nil {
		t.Fatalf("append: %v", err)
	}
	eligible, _ = s.ListEligibleUsers(ctx)
	if len(eligible) != 1 {
		t.Fatalf("expected user eligible after new message, got %+v", eligible)
	}
}

func TestListEligibleUsers_UserWithoutMessagesNotListed(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Create a user via a message for chat 1 only; chat 2 never wrote.
	if err := s.AppendMessage(ctx, 1, "alice", "hi"); err != nil {
		t.Fatalf("append: %v", err)
	}

	eligible, err := s.ListEligibleUsers(ctx)
	if err != nil {
		t.Fatalf("list eligible: %v", err)
	}
	for _, u := range eligible {
		if u.ChatID != 1 {
			t.Fatalf("unexpected eligible user: %+v", u)
		}
	}
}

func TestRecentMessages_OrderAndCap(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	texts := []string{"one", "two", "three", "four"}
	for _, txt := range texts {
		if err := s.AppendMessage(ctx, 1, "alice", txt); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	msgs, err := s.RecentMessages(ctx, 1, 3)
	if err != nil {
		t.Fatalf("recent messages: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	want := []string{"two", "three", "four"}
	for i, m := range msgs {
		if m.Text != want[i] {
			t.Fatalf("message %d = %q, want %q", i, m.Text, want[i])
		}
	}
}

func TestSaveTopProducts_ReplacesPreviousList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.AppendMessage(ctx, 1, "alice", "hi"); err != nil {
		t.Fatalf("append: %v", err)
	}

	first := []model.Product{
		{Title: "DDP 60", Link: "https://shop.example/ddp60", Price: "KES 12000"},
		{Title: "DDP 100", Link: "https://shop.example/ddp100", Price: "KES 18000"},
	}
	if err := s.SaveTopProducts(ctx, 1, first); err != nil {
		t.Fatalf("save: %v", err)
	}

	second := []model.Product{
		{Title: "Grundfos SQ", Link: "https://shop.example/sq", Price: "KES 45000"},
	}
	if err := s.SaveTopProducts(ctx, 1, second); err != nil {
		t.Fatalf("save: %v", err)
	}

	users, _ := s.GetAllUsers(ctx)
	if len(users[0].TopProducts) != 1 {
		t.Fatalf("old products not replaced: %+v", users[0].TopProducts)
	}
	if users[0].TopProducts[0].Title != "Grundfos SQ" {
		t.Fatalf("unexpected product: %+v", users[0].TopProducts[0])
	}
}

func TestGetAllUsers_ProductsInRankOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.AppendMessage(ctx, 1, "alice", "hi"); err != nil {
		t.Fatalf("append: %v", err)
	}
	list := []model.Product{
		{Title: "First"},
		{Title: "Second"},
		{Title: "Third"},
	}
	if err := s.SaveTopProducts(ctx, 1, list); err != nil {
		t.Fatalf("save: %v", err)
	}

	users, _ := s.GetAllUsers(ctx)
	got := users[0].TopProducts
	if len(got) != 3 {
		t.Fatalf("expected 3 products, got %d", len(got))
	}
	for i, p := range got {
		if p.Position != i+1 || p.Title != list[i].Title {
			t.Fatalf("product %d out of order: %+v", i, p)
		}
	}
}

func TestAdvanceWatermark_NeverMovesBackwards(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.AppendMessage(ctx, 1, "alice", "hi"); err != nil {
		t.Fatalf("append: %v", err)
	}

	later := time.Now().UTC()
	if err := s.AdvanceWatermark(ctx, 1, later); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if err := s.AdvanceWatermark(ctx, 1, later.Add(-time.Hour)); err != nil {
		t.Fatalf("advance: %v", err)
	}

	users, _ := s.GetAllUsers(ctx)
	if users[0].LastRecommendationAt.Before(later.Add(-time.Second)) {
		t.Fatalf("watermark moved backwards: %v", users[0].LastRecommendationAt)
	}
}
