package models

import "time"

// HeroSlide is one slide of the landing page carousel.
type HeroSlide struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Date        string    `gorm:"not null" json:"date"` // display text, never parsed
	Image       string    `gorm:"type:text;not null" json:"image"`
	IsActive    bool      `gorm:"not null;index" json:"isActive"`
	Order       int       `gorm:"not null" json:"order"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
