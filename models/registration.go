package models

import "time"

type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "pending"
	RegistrationApproved RegistrationStatus = "approved"
	RegistrationRejected RegistrationStatus = "rejected"
)

func (s RegistrationStatus) Valid() bool {
	switch s {
	case RegistrationPending, RegistrationApproved, RegistrationRejected:
		return true
	}
	return false
}

// PlayerRegistration is an application submitted through the public form.
// Status only changes through an admin action.
type PlayerRegistration struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	FirstName   string `gorm:"not null" json:"firstName"`
	LastName    string `gorm:"not null" json:"lastName"`
	Email       string `gorm:"not null" json:"email"`
	Phone       string `gorm:"not null" json:"phone"`
	DateOfBirth string `gorm:"not null" json:"dateOfBirth"`
	Position    string `gorm:"not null" json:"position"`

	BattingStyle          *string `json:"battingStyle"`
	BowlingStyle          *string `json:"bowlingStyle"`
	Experience            *string `json:"experience"`
	PreviousTeams         *string `json:"previousTeams"`
	EmergencyContactName  *string `json:"emergencyContactName"`
	EmergencyContactPhone *string `json:"emergencyContactPhone"`
	Motivation            *string `gorm:"type:text" json:"motivation"`

	Status    RegistrationStatus `gorm:"type:varchar(16);not null;default:'pending';index" json:"status"`
	CreatedAt time.Time          `gorm:"autoCreateTime" json:"createdAt"`
}
