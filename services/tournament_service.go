package services

import (
	"fmt"
	"log"
	"time"

	"cricket-club-site/models"

	"gorm.io/gorm"
)

type TournamentService struct {
	DB *gorm.DB
}

func NewTournamentService(db *gorm.DB) *TournamentService {
	return &TournamentService{DB: db}
}

type TournamentInput struct {
	Name      string                  `json:"name" validate:"required"`
	StartDate string                  `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string                  `json:"endDate" validate:"required,datetime=2006-01-02"`
	Venue     string                  `json:"venue" validate:"required"`
	Status    models.TournamentStatus `json:"status" validate:"omitempty,oneof=upcoming ongoing completed"`
}

func (in *TournamentInput) check() error {
	if err := validateInput(in); err != nil {
		return err
	}
	// Same layout on both sides, so string order is date order.
	if in.EndDate < in.StartDate {
		return invalid("endDate must not be before startDate")
	}
	return nil
}

func (in *TournamentInput) applyTo(t *models.Tournament) {
	t.Name = in.Name
	t.StartDate = in.StartDate
	t.EndDate = in.EndDate
	t.Venue = in.Venue
	t.Status = in.Status
	if t.Status == "" {
		t.Status = models.TournamentUpcoming
	}
}

// List returns tournaments by start date. The tournament list has no hidden state.
func (s *TournamentService) List(opts ListOptions) ([]models.Tournament, error) {
	q := s.DB.Model(&models.Tournament{}).Order("start_date ASC").Order("id ASC")

	tournaments := []models.Tournament{}
	if err := opts.apply(q).Find(&tournaments).Error; err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	return tournaments, nil
}

func (s *TournamentService) Get(id uint) (*models.Tournament, error) {
	var t models.Tournament
	if err := s.DB.First(&t, id).Error; err != nil {
		return nil, notFound(err, "tournament")
	}
	return &t, nil
}

func (s *TournamentService) Create(in TournamentInput) (*models.Tournament, error) {
	if err := in.check(); err != nil {
		return nil, err
	}
	t := &models.Tournament{}
	in.applyTo(t)
	if err := s.DB.Create(t).Error; err != nil {
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}
	return t, nil
}

func (s *TournamentService) Update(id uint, in TournamentInput) (*models.Tournament, error) {
	if err := in.check(); err != nil {
		return nil, err
	}
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	in.applyTo(t)
	if err := updateByID(s.DB, t, id, "tournament"); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TournamentService) Delete(id uint) error {
	return deleteByID(s.DB, &models.Tournament{}, id, "tournament")
}

// AdvanceStatuses moves tournaments forward by calendar date:
// upcoming -> ongoing once started, upcoming/ongoing -> completed once ended.
// A status never moves backwards.
func (s *TournamentService) AdvanceStatuses(now time.Time) error {
	today := now.Format(models.TournamentDateLayout)

	return s.DB.Transaction(func(tx *gorm.DB) error {
		completed := tx.Model(&models.Tournament{}).
			Where("status IN ? AND end_date < ?",
				[]models.TournamentStatus{models.TournamentUpcoming, models.TournamentOngoing}, today).
			Update("status", models.TournamentCompleted)
		if completed.Error != nil {
			return fmt.Errorf("failed to complete tournaments: %w", completed.Error)
		}

		started := tx.Model(&models.Tournament{}).
			Where("status = ? AND start_date <= ?", models.TournamentUpcoming, today).
			Update("status", models.TournamentOngoing)
		if started.Error != nil {
			return fmt.Errorf("failed to start tournaments: %w", started.Error)
		}

		if completed.RowsAffected+started.RowsAffected > 0 {
			log.Printf("🏏 [Scheduler] Tournaments started=%d completed=%d", started.RowsAffected, completed.RowsAffected)
		}
		return nil
	})
}
