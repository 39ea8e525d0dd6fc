package model

import "time"

// Access is one visit of a user. Only the most recent row of a user is
// refreshed by heartbeats.
type Access struct {
	ID            uint      `gorm:"primaryKey"`
	UserID        uint      `gorm:"not null;index"`
	IsActive      bool      `gorm:"default:true;index"`
	LastHeartbeat time.Time `gorm:"not null"`
	CreationDate  time.Time `gorm:"column:creation_date;index"`
}

func (Access) TableName() string {
	return "accesses"
}
