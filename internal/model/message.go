package model

import "time"

// Message is a single inbound chat message.
type Message struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"index"`
	Text      string
	Timestamp time.Time `gorm:"index"`
}
