package models

import "time"

type NewsArticle struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"` // short teaser
	Content     string `gorm:"type:text;not null" json:"content"`
	Date        string `gorm:"not null" json:"date"`
	Image       string `gorm:"type:text;not null" json:"image"`
	IsPublished bool   `gorm:"not null;index" json:"isPublished"`

	// PublishAt schedules an unpublished article; the publish job clears it once applied.
	PublishAt *time.Time `gorm:"index" json:"publishAt,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
