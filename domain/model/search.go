package model

import "time"

// Search is an append-only audit row written before a search is dispatched.
type Search struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"not null;index"`
	Query        string    `gorm:"size:255;not null"`
	MaxResults   int       `gorm:"not null;default:50"`
	CreationDate time.Time `gorm:"column:creation_date;autoCreateTime"`
}

func (Search) TableName() string {
	return "searches"
}
