package models

import "time"

// SocialInteraction counts likes, dislikes and shares for one piece of content.
// (ContentType, ContentID) is unique; counters only ever grow.
type SocialInteraction struct {
	ID          uint        `gorm:"primaryKey" json:"id,omitempty"`
	ContentType ContentType `gorm:"uniqueIndex:idx_social_content;not null" json:"contentType"`
	ContentID   uint        `gorm:"uniqueIndex:idx_social_content;not null" json:"contentId"`
	Likes       int64       `gorm:"not null;default:0" json:"likes"`
	Dislikes    int64       `gorm:"not null;default:0" json:"dislikes"`
	Shares      int64       `gorm:"not null;default:0" json:"shares"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime" json:"updatedAt,omitempty"`
}

// Comment is a free-text public comment. UserName is whatever the client sent
// and is not tied to a User. Likes and Dislikes are stored but no operation
// increments them.
type Comment struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	ContentType ContentType `gorm:"index:idx_comment_content;not null" json:"contentType"`
	ContentID   uint        `gorm:"index:idx_comment_content;not null" json:"contentId"`
	UserName    string      `gorm:"not null" json:"userName"`
	Text        string      `gorm:"type:text;not null" json:"text"`
	Likes       int64       `gorm:"not null;default:0" json:"likes"`
	Dislikes    int64       `gorm:"not null;default:0" json:"dislikes"`
	CreatedAt   time.Time   `gorm:"autoCreateTime;index" json:"createdAt"`
}
