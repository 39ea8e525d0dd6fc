package model

import "time"

// User is an anonymous client identified by its public tag.
type User struct {
	ID           uint      `gorm:"primaryKey"`
	Tag          string    `gorm:"size:50;not null;uniqueIndex"`
	City         string    `gorm:"size:100;not null"`
	Region       string    `gorm:"size:100;not null"`
	Country      string    `gorm:"size:100;not null"`
	CreationDate time.Time `gorm:"column:creation_date;autoCreateTime"`
	UpdateDate   time.Time `gorm:"column:update_date;autoUpdateTime"`

	Accesses []Access `gorm:"constraint:OnDelete:CASCADE"`
	Searches []Search `gorm:"constraint:OnDelete:CASCADE"`
}

func (User) TableName() string {
	return "users"
}
