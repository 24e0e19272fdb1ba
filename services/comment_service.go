package services

import (
	"fmt"

	"cricket-club-site/models"

	"gorm.io/gorm"
)

type CommentService struct {
	DB *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{DB: db}
}

type CommentInput struct {
	ContentType models.ContentType `json:"contentType" validate:"required"`
	ContentID   uint               `json:"contentId" validate:"required"`
	UserName    string             `json:"userName" validate:"required"`
	Text        string             `json:"text" validate:"required"`
}

// List returns every comment on a content item, newest first.
func (s *CommentService) List(contentType models.ContentType, contentID uint) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := s.DB.Where("content_type = ? AND content_id = ?", contentType, contentID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// Create stores a public comment. No auth, no filtering; the content id is not
// checked against any table.
func (s *CommentService) Create(in CommentInput) (*models.Comment, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if !in.ContentType.Valid() {
		return nil, invalid("unknown contentType %q", in.ContentType)
	}

	comment := &models.Comment{
		ContentType: in.ContentType,
		ContentID:   in.ContentID,
		UserName:    in.UserName,
		Text:        in.Text,
	}
	if err := s.DB.Create(comment).Error; err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

func (s *CommentService) Delete(id uint) error {
	return deleteByID(s.DB, &models.Comment{}, id, "comment")
}
