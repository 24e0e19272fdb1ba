package services

import (
	"fmt"

	"cricket-club-site/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HeroSlideService struct {
	DB *gorm.DB
}

func NewHeroSlideService(db *gorm.DB) *HeroSlideService {
	return &HeroSlideService{DB: db}
}

type HeroSlideInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Image       string `json:"image" validate:"required"`
	IsActive    *bool  `json:"isActive"`
	Order       int    `json:"order"`
}

func (in *HeroSlideInput) applyTo(slide *models.HeroSlide) {
	slide.Title = in.Title
	slide.Description = in.Description
	slide.Date = in.Date
	slide.Image = in.Image
	slide.IsActive = boolOr(in.IsActive, true)
	slide.Order = in.Order
}

// List returns slides by display order, oldest first within the same order.
func (s *HeroSlideService) List(opts ListOptions) ([]models.HeroSlide, error) {
	q := s.DB.Model(&models.HeroSlide{})
	if !opts.IncludeHidden {
		q = q.Where("is_active = ?", true)
	}
	q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
		Order("created_at ASC").
		Order("id ASC")

	slides := []models.HeroSlide{}
	if err := opts.apply(q).Find(&slides).Error; err != nil {
		return nil, fmt.Errorf("failed to list hero slides: %w", err)
	}
	return slides, nil
}

func (s *HeroSlideService) Get(id uint, includeHidden bool) (*models.HeroSlide, error) {
	q := s.DB
	if !includeHidden {
		q = q.Where("is_active = ?", true)
	}
	var slide models.HeroSlide
	if err := q.First(&slide, id).Error; err != nil {
		return nil, notFound(err, "hero slide")
	}
	return &slide, nil
}

func (s *HeroSlideService) Create(in HeroSlideInput) (*models.HeroSlide, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	slide := &models.HeroSlide{}
	in.applyTo(slide)
	if err := s.DB.Create(slide).Error; err != nil {
		return nil, fmt.Errorf("failed to create hero slide: %w", err)
	}
	return slide, nil
}

// Update replaces every editable field of the slide.
func (s *HeroSlideService) Update(id uint, in HeroSlideInput) (*models.HeroSlide, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	slide, err := s.Get(id, true)
	if err != nil {
		return nil, err
	}
	in.applyTo(slide)
	if err := updateByID(s.DB, slide, id, "hero slide"); err != nil {
		return nil, err
	}
	return slide, nil
}

func (s *HeroSlideService) Delete(id uint) error {
	return deleteByID(s.DB, &models.HeroSlide{}, id, "hero slide")
}

// updateByID writes every editable column of model to the row with primary key id.
// It never inserts: a row deleted after it was read stays deleted.
func updateByID(db *gorm.DB, model interface{}, id uint, what string) error {
	res := db.Model(model).Where("id = ?", id).Select("*").Omit("id", "created_at").Updates(model)
	if res.Error != nil {
		return fmt.Errorf("failed to update %s %d: %w", what, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return nil
}

// deleteByID hard-deletes one row and reports ErrNotFound when nothing matched.
func deleteByID(db *gorm.DB, model interface{}, id uint, what string) error {
	res := db.Delete(model, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete %s %d: %w", what, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return nil
}
