package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"sales-assistant/internal/model"
)

// Store owns all access to user records. The recommendation engine and the
// sweeps never touch the tables directly; every mutation below is atomic
// with respect to a single user's record.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// AppendMessage upserts the user for chatID and appends one message with the
// current time. DisplayName is set on first contact only and never
// overwritten afterwards.
func (s *Store) AppendMessage(ctx context.Context, chatID int64, displayName, text string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := upsertUser(tx, chatID, displayName)
		if err != nil {
			return err
		}
		msg := model.Message{
			UserID:    user.ID,
			Text:      text,
			Timestamp: time.Now().UTC(),
		}
		if err := tx.Create(&msg).Error; err != nil {
			return fmt.Errorf("append message: %w", err)
		}
		return nil
	})
}

// ListEligibleUsers returns users whose newest message is strictly newer
// than their recommendation watermark. A message timestamp exactly equal to
// the watermark does not qualify, so a completed cycle never re-triggers on
// its own dispatch time.
func (s *Store) ListEligibleUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := s.db.WithContext(ctx).
		Joins("JOIN messages ON messages.user_id = users.id").
		Group("users.id").
		Having("MAX(messages.timestamp) > users.last_recommendation_at").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("list eligible users: %w", err)
	}
	return users, nil
}

// RecentMessages returns up to n newest messages for chatID in arrival order.
func (s *Store) RecentMessages(ctx context.Context, chatID int64, n int) ([]model.Message, error) {
	user, err := s.findUser(ctx, chatID)
	if err != nil {
		return nil, err
	}
	var msgs []model.Message
	err = s.db.WithContext(ctx).
		Where("user_id = ?", user.ID).
		Order("timestamp DESC, id DESC").
		Limit(n).
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("recent messages: %w", err)
	}
	// Newest-first from the query, flip back to chronological order.
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

// SaveTopProducts replaces the user's stored product list. The caller caps
// the list at five entries before saving.
func (s *Store) SaveTopProducts(ctx context.Context, chatID int64, products []model.Product) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.Where("chat_id = ?", chatID).First(&user).Error; err != nil {
			return fmt.Errorf("find user %d: %w", chatID, err)
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&model.Product{}).Error; err != nil {
			return fmt.Errorf("clear products: %w", err)
		}
		for i, p := range products {
			p.ID = 0
			p.UserID = user.ID
			p.Position = i + 1
			if err := tx.Create(&p).Error; err != nil {
				return fmt.Errorf("save product: %w", err)
			}
		}
		return nil
	})
}

// AdvanceWatermark moves lastRecommendationAt forward to at. The watermark
// never moves backwards.
func (s *Store) AdvanceWatermark(ctx context.Context, chatID int64, at time.Time) error {
	err := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("chat_id = ? AND last_recommendation_at < ?", chatID, at).
		Update("last_recommendation_at", at).Error
	if err != nil {
		return fmt.Errorf("advance watermark: %w", err)
	}
	return nil
}

// GetAllUsers returns every user with their stored products loaded in rank
// order, for the admin digest sweep.
func (s *Store) GetAllUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := s.db.WithContext(ctx).
		Preload("TopProducts", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("get all users: %w", err)
	}
	return users, nil
}

func (s *Store) findUser(ctx context.Context, chatID int64) (model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).Where("chat_id = ?", chatID).First(&user).Error; err != nil {
		return model.User{}, fmt.Errorf("find user %d: %w", chatID, err)
	}
	return user, nil
}

func upsertUser(tx *gorm.DB, chatID int64, displayName string) (model.User, error) {
	var user model.User
	err := tx.Where("chat_id = ?", chatID).First(&user).Error
	switch {
	case err == nil:
		if user.DisplayName == "" && displayName != "" {
			if err := tx.Model(&user).Update("display_name", displayName).Error; err != nil {
				return model.User{}, fmt.Errorf("update display name: %w", err)
			}
		}
		return user, nil
	case err == gorm.ErrRecordNotFound:
		user = model.User{
			ChatID:               chatID,
			DisplayName:          displayName,
			LastRecommendationAt: time.Unix(0, 0).UTC(),
		}
		if err := tx.Create(&user).Error; err != nil {
			return model.User{}, fmt.Errorf("create user: %w", err)
		}
		return user, nil
	default:
		return model.User{}, fmt.Errorf("find user: %w", err)
	}
}
