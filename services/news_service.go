package services

import (
	"fmt"
	"log"
	"time"

	"cricket-club-site/models"

	"gorm.io/gorm"
)

type NewsService struct {
	DB  *gorm.DB
	now func() time.Time
}

func NewNewsService(db *gorm.DB) *NewsService {
	return &NewsService{DB: db, now: time.Now}
}

type NewsInput struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description" validate:"required"`
	Content     string     `json:"content" validate:"required"`
	Date        string     `json:"date" validate:"required"`
	Image       string     `json:"image" validate:"required"`
	IsPublished *bool      `json:"isPublished"`
	PublishAt   *time.Time `json:"publishAt"`
}

// applyTo copies the input. A future PublishAt holds the article back until the
// publish job picks it up.
func (in *NewsInput) applyTo(article *models.NewsArticle, now time.Time) {
	article.Title = in.Title
	article.Description = in.Description
	article.Content = in.Content
	article.Date = in.Date
	article.Image = in.Image
	article.IsPublished = boolOr(in.IsPublished, true)
	article.PublishAt = nil

	if in.PublishAt != nil && in.PublishAt.After(now) {
		at := in.PublishAt.UTC()
		article.PublishAt = &at
		article.IsPublished = false
	}
}

// List returns articles newest first.
func (s *NewsService) List(opts ListOptions) ([]models.NewsArticle, error) {
	q := s.DB.Model(&models.NewsArticle{})
	if !opts.IncludeHidden {
		q = q.Where("is_published = ?", true)
	}
	q = q.Order("created_at DESC").Order("id DESC")

	articles := []models.NewsArticle{}
	if err := opts.apply(q).Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	return articles, nil
}

func (s *NewsService) Get(id uint, includeHidden bool) (*models.NewsArticle, error) {
	q := s.DB
	if !includeHidden {
		q = q.Where("is_published = ?", true)
	}
	var article models.NewsArticle
	if err := q.First(&article, id).Error; err != nil {
		return nil, notFound(err, "news article")
	}
	return &article, nil
}

func (s *NewsService) Create(in NewsInput) (*models.NewsArticle, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	article := &models.NewsArticle{}
	in.applyTo(article, s.now())
	if err := s.DB.Create(article).Error; err != nil {
		return nil, fmt.Errorf("failed to create news article: %w", err)
	}
	return article, nil
}

func (s *NewsService) Update(id uint, in NewsInput) (*models.NewsArticle, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	article, err := s.Get(id, true)
	if err != nil {
		return nil, err
	}
	in.applyTo(article, s.now())
	if err := updateByID(s.DB, article, id, "news article"); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *NewsService) Delete(id uint) error {
	return deleteByID(s.DB, &models.NewsArticle{}, id, "news article")
}

// PublishDue publishes every held-back article whose PublishAt has passed.
func (s *NewsService) PublishDue(now time.Time) (int64, error) {
	res := s.DB.Model(&models.NewsArticle{}).
		Where("is_published = ? AND publish_at IS NOT NULL AND publish_at <= ?", false, now.UTC()).
		Updates(map[string]interface{}{"is_published": true, "publish_at": nil})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to publish scheduled news: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		log.Printf("✅ [Scheduler] Published %d scheduled news article(s)", res.RowsAffected)
	}
	return res.RowsAffected, nil
}
