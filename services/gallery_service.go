package services

import (
	"fmt"
	"strings"

	"cricket-club-site/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

type GalleryService struct {
	DB *gorm.DB
}

func NewGalleryService(db *gorm.DB) *GalleryService {
	return &GalleryService{DB: db}
}

type GalleryInput struct {
	Title     string `json:"title" validate:"required"`
	Image     string `json:"image" validate:"required"`
	Category  string `json:"category"`
	Date      string `json:"date" validate:"required"`
	IsVisible *bool  `json:"isVisible"`
}

func (in *GalleryInput) applyTo(item *models.GalleryItem) {
	item.Title = in.Title
	item.Image = in.Image
	item.Category = NormalizeCategory(in.Category)
	item.Date = in.Date
	item.IsVisible = boolOr(in.IsVisible, true)
}

// NormalizeCategory title-cases the label so "photos" and "Photos" group together.
func NormalizeCategory(category string) string {
	category = strings.Join(strings.Fields(category), " ")
	if category == "" {
		return models.DefaultGalleryCategory
	}
	return cases.Title(language.English).String(strings.ToLower(category))
}

// List returns gallery items newest first.
func (s *GalleryService) List(opts ListOptions) ([]models.GalleryItem, error) {
	q := s.DB.Model(&models.GalleryItem{})
	if !opts.IncludeHidden {
		q = q.Where("is_visible = ?", true)
	}
	q = q.Order("created_at DESC").Order("id DESC")

	items := []models.GalleryItem{}
	if err := opts.apply(q).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list gallery: %w", err)
	}
	return items, nil
}

func (s *GalleryService) Get(id uint, includeHidden bool) (*models.GalleryItem, error) {
	q := s.DB
	if !includeHidden {
		q = q.Where("is_visible = ?", true)
	}
	var item models.GalleryItem
	if err := q.First(&item, id).Error; err != nil {
		return nil, notFound(err, "gallery item")
	}
	return &item, nil
}

func (s *GalleryService) Create(in GalleryInput) (*models.GalleryItem, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	item := &models.GalleryItem{}
	in.applyTo(item)
	if err := s.DB.Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to create gallery item: %w", err)
	}
	return item, nil
}

func (s *GalleryService) Update(id uint, in GalleryInput) (*models.GalleryItem, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	item, err := s.Get(id, true)
	if err != nil {
		return nil, err
	}
	in.applyTo(item)
	if err := updateByID(s.DB, item, id, "gallery item"); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *GalleryService) Delete(id uint) error {
	return deleteByID(s.DB, &models.GalleryItem{}, id, "gallery item")
}
