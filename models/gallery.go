package models

import "time"

const DefaultGalleryCategory = "Photos"

type GalleryItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Image     string    `gorm:"type:text;not null" json:"image"`
	Category  string    `gorm:"not null;default:'Photos'" json:"category"`
	Date      string    `gorm:"not null" json:"date"`
	IsVisible bool      `gorm:"not null;index" json:"isVisible"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
