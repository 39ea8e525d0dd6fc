package model

import "time"

// Video and CartItem are migrated but not read or written yet.
type Video struct {
	ID                uint      `gorm:"primaryKey"`
	Tag               string    `gorm:"size:100;not null"`
	URL               string    `gorm:"column:url;size:500;not null"`
	Title             string    `gorm:"size:255;not null"`
	Duration          int       `gorm:"not null"`
	ViewCount         int       `gorm:"not null"`
	ChannelTag        string    `gorm:"size:100;not null"`
	ChannelURL        string    `gorm:"column:channel_url;size:500;not null"`
	ChannelName       string    `gorm:"size:255;not null"`
	ThumbnailURL      string    `gorm:"column:thumbnail_url;size:500;not null"`
	ChannelIsVerified bool      `gorm:"not null"`
	CreationDate      time.Time `gorm:"column:creation_date;autoCreateTime"`
	UpdateDate        time.Time `gorm:"column:update_date;autoUpdateTime"`
}

func (Video) TableName() string {
	return "videos"
}

type CartItem struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"not null;index"`
	VideoID      uint      `gorm:"not null;index"`
	CreationDate time.Time `gorm:"column:creation_date;autoCreateTime"`

	User  User  `gorm:"constraint:OnDelete:CASCADE"`
	Video Video `gorm:"constraint:OnDelete:CASCADE"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
