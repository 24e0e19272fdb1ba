package services

import (
	"fmt"
	"log"

	"cricket-club-site/models"

	"gorm.io/gorm"
)

type RegistrationService struct {
	DB *gorm.DB
}

func NewRegistrationService(db *gorm.DB) *RegistrationService {
	return &RegistrationService{DB: db}
}

type RegistrationInput struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	DateOfBirth string `json:"dateOfBirth" validate:"required"`
	Position    string `json:"position" validate:"required"`

	BattingStyle          *string `json:"battingStyle"`
	BowlingStyle          *string `json:"bowlingStyle"`
	Experience            *string `json:"experience"`
	PreviousTeams         *string `json:"previousTeams"`
	EmergencyContactName  *string `json:"emergencyContactName"`
	EmergencyContactPhone *string `json:"emergencyContactPhone"`
	Motivation            *string `json:"motivation"`
}

// List returns registrations newest first.
func (s *RegistrationService) List() ([]models.PlayerRegistration, error) {
	regs := []models.PlayerRegistration{}
	if err := s.DB.Order("created_at DESC").Order("id DESC").Find(&regs).Error; err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	return regs, nil
}

// Create stores a public application. Applicants cannot choose their status.
func (s *RegistrationService) Create(in RegistrationInput) (*models.PlayerRegistration, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	reg := &models.PlayerRegistration{
		FirstName:             in.FirstName,
		LastName:              in.LastName,
		Email:                 in.Email,
		Phone:                 in.Phone,
		DateOfBirth:           in.DateOfBirth,
		Position:              in.Position,
		BattingStyle:          in.BattingStyle,
		BowlingStyle:          in.BowlingStyle,
		Experience:            in.Experience,
		PreviousTeams:         in.PreviousTeams,
		EmergencyContactName:  in.EmergencyContactName,
		EmergencyContactPhone: in.EmergencyContactPhone,
		Motivation:            in.Motivation,
		Status:                models.RegistrationPending,
	}
	if err := s.DB.Create(reg).Error; err != nil {
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}
	log.Printf("📝 [REGISTRATION] New application #%d from %s %s", reg.ID, reg.FirstName, reg.LastName)
	return reg, nil
}

func (s *RegistrationService) UpdateStatus(id uint, status models.RegistrationStatus) (*models.PlayerRegistration, error) {
	if !status.Valid() {
		return nil, invalid("Invalid status")
	}

	var reg models.PlayerRegistration
	if err := s.DB.First(&reg, id).Error; err != nil {
		return nil, notFound(err, "registration")
	}
	if err := s.DB.Model(&reg).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update registration %d: %w", id, err)
	}
	reg.Status = status
	log.Printf("📝 [REGISTRATION] Application #%d marked %s", id, status)
	return &reg, nil
}
