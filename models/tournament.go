package models

import (
	"time"
)

const TournamentDateLayout = "2006-01-02"

type TournamentStatus string

const (
	TournamentUpcoming  TournamentStatus = "upcoming"
	TournamentOngoing   TournamentStatus = "ongoing"
	TournamentCompleted TournamentStatus = "completed"
)

func (s TournamentStatus) Valid() bool {
	switch s {
	case TournamentUpcoming, TournamentOngoing, TournamentCompleted:
		return true
	}
	return false
}

// Tournament is a competition the club takes part in.
// StartDate and EndDate use TournamentDateLayout so they sort lexically.
type Tournament struct {
	ID        uint             `json:"id" gorm:"primaryKey"`
	Name      string           `json:"name" gorm:"not null"`
	StartDate string           `json:"startDate" gorm:"type:varchar(10);not null;index"`
	EndDate   string           `json:"endDate" gorm:"type:varchar(10);not null"`
	Venue     string           `json:"venue" gorm:"not null"`
	Status    TournamentStatus `json:"status" gorm:"type:varchar(16);not null;default:'upcoming';index"`
	CreatedAt time.Time        `json:"createdAt" gorm:"autoCreateTime"`
}
