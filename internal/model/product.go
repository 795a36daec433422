package model

// Product is one stored shopping result. Position preserves the ranking
// order returned by the search API.
type Product struct {
	ID       uint `gorm:"primaryKey"`
	UserID   uint `gorm:"index"`
	Position int
	Title    string
	Link     string
	Price    string
}
