package model

import "time"

// User is one record per Telegram chat identity. Messages are append-only;
// LastRecommendationAt is the watermark the recommendation sweep compares
// against and starts at the Unix epoch for fresh users.
type User struct {
	ID                   uint  `gorm:"primaryKey"`
	ChatID               int64 `gorm:"uniqueIndex"`
	DisplayName          string
	LastRecommendationAt time.Time
	Messages             []Message
	TopProducts          []Product
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
