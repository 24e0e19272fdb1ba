package services

import (
	"errors"
	"fmt"

	"cricket-club-site/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SocialService is the likes/dislikes/shares ledger. Counters only grow.
type SocialService struct {
	DB *gorm.DB
}

func NewSocialService(db *gorm.DB) *SocialService {
	return &SocialService{DB: db}
}

// Get returns the counters for a content item; untouched content reads as zeros.
func (s *SocialService) Get(contentType models.ContentType, contentID uint) (*models.SocialInteraction, error) {
	var row models.SocialInteraction
	err := s.DB.Where("content_type = ? AND content_id = ?", contentType, contentID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.SocialInteraction{ContentType: contentType, ContentID: contentID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load social counters: %w", err)
	}
	return &row, nil
}

func (s *SocialService) IncrementLikes(contentType models.ContentType, contentID uint) (*models.SocialInteraction, error) {
	return s.increment(contentType, contentID, "likes")
}

func (s *SocialService) IncrementDislikes(contentType models.ContentType, contentID uint) (*models.SocialInteraction, error) {
	return s.increment(contentType, contentID, "dislikes")
}

func (s *SocialService) IncrementShares(contentType models.ContentType, contentID uint) (*models.SocialInteraction, error) {
	return s.increment(contentType, contentID, "shares")
}

// increment adds one to column with a single upsert, so the arithmetic happens
// in the store and concurrent calls on the same key cannot lose updates.
// The first call for a key inserts the row with column at 1.
func (s *SocialService) increment(contentType models.ContentType, contentID uint, column string) (*models.SocialInteraction, error) {
	row := models.SocialInteraction{ContentType: contentType, ContentID: contentID}
	switch column {
	case "likes":
		row.Likes = 1
	case "dislikes":
		row.Dislikes = 1
	case "shares":
		row.Shares = 1
	default:
		return nil, fmt.Errorf("unknown social counter %q", column)
	}

	var out models.SocialInteraction
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "content_type"}, {Name: "content_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				column:       gorm.Expr("social_interactions." + column + " + 1"),
				"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
			}),
		}).Create(&row).Error
		if err != nil {
			return err
		}
		return tx.Where("content_type = ? AND content_id = ?", contentType, contentID).First(&out).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to increment %s for %s/%d: %w", column, contentType, contentID, err)
	}
	return &out, nil
}
