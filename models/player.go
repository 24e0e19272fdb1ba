package models

import "time"

type Player struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Role         string    `gorm:"not null" json:"role"` // position label, e.g. "ALL-ROUNDER"
	JerseyNumber int       `gorm:"not null" json:"jerseyNumber"`
	Image        string    `gorm:"type:text;not null" json:"image"`
	IsCaptain    bool      `gorm:"not null" json:"isCaptain"`
	IsActive     bool      `gorm:"not null;index" json:"isActive"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// PlayerStats holds career counters for one player. PlayerID is unique, so a
// player has at most one row.
type PlayerStats struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PlayerID     uint      `gorm:"uniqueIndex;not null" json:"playerId"`
	Matches      int       `gorm:"not null;default:0" json:"matches"`
	RunsScored   int       `gorm:"not null;default:0" json:"runsScored"`
	BallsFaced   int       `gorm:"not null;default:0" json:"ballsFaced"`
	Fours        int       `gorm:"not null;default:0" json:"fours"`
	Sixes        int       `gorm:"not null;default:0" json:"sixes"`
	WicketsTaken int       `gorm:"not null;default:0" json:"wicketsTaken"`
	BallsBowled  int       `gorm:"not null;default:0" json:"ballsBowled"`
	RunsConceded int       `gorm:"not null;default:0" json:"runsConceded"`
	Catches      int       `gorm:"not null;default:0" json:"catches"`
	RunOuts      int       `gorm:"not null;default:0" json:"runOuts"`
	Stumpings    int       `gorm:"not null;default:0" json:"stumpings"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// PlayerWithStats is a roster row with its optional stats attached.
type PlayerWithStats struct {
	Player
	Stats *PlayerStats `json:"stats,omitempty"`
}
