package recommend

import (
	"context"
	"log"
)

// SweepRecommendations runs one recommendation pass over all eligible
// users. A user whose previous cycle is still in flight is skipped this
// tick; the in-flight marker is taken before the cycle starts and released
// on every terminal outcome, so at most one cycle per user ever runs.
func (e *Engine) SweepRecommendations(ctx context.Context) error {
	log.Println("⏰ Sweep: checking for new user activity...")

	users, err := e.store.ListEligibleUsers(ctx)
	if err != nil {
		log.Printf("❌ Failed to list eligible users: %v", err)
		return err
	}

	for _, user := range users {
		if !e.inflight.TryAcquire(user.ChatID) {
			log.Printf("⏳ Cycle already in flight for user %d. Skipping this tick.", user.ChatID)
			continue
		}
		outcome := e.RunCycle(ctx, user)
		e.inflight.Release(user.ChatID)
		log.Printf("🗂 Cycle finished for user %d: %s", user.ChatID, outcome)
	}
	return nil
}

// SweepDigest sends every user's currently stored top products to the admin
// chat, regardless of watermark state. The same list repeats on every tick
// until the stored products change.
func (e *Engine) SweepDigest(ctx context.Context) error {
	if e.adminChatID == 0 {
		log.Println("⚠️ Admin chat not configured, skipping digest sweep")
		return nil
	}

	log.Println("⏰ Sweep: sending top products digest to admin...")

	users, err := e.store.GetAllUsers(ctx)
	if err != nil {
		log.Printf("❌ Failed to load users for digest: %v", err)
		return err
	}

	for _, user := range users {
		if len(user.TopProducts) == 0 {
			continue
		}
		if err := e.dispatcher.Send(e.adminChatID, formatDigest(user)); err != nil {
			log.Printf("❌ Failed to send digest for user %d: %v", user.ChatID, err)
			continue
		}
		log.Printf("✅ Sent top products digest for user %d", user.ChatID)
	}
	return nil
}
