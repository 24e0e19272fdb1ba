package services

import (
	"fmt"
	"math"

	"cricket-club-site/models"

	"gorm.io/gorm"
)

// assumedWinRate stands in for real match results, which are not tracked yet.
const assumedWinRate = 0.83

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

type TeamStatistics struct {
	MatchesPlayed int `json:"matchesPlayed"`
	MatchesWon    int `json:"matchesWon"`
	TotalRuns     int `json:"totalRuns"`
	TotalWickets  int `json:"totalWickets"`
	WinRate       int `json:"winRate"`
}

// EstimateMatchesWon applies the assumed win rate to the season length.
// Swap this out once match results are recorded.
func EstimateMatchesWon(matchesPlayed int) int {
	return int(math.Floor(float64(matchesPlayed) * assumedWinRate))
}

// TeamStatistics derives team numbers from player stats. Season length is the
// highest single-player match count among active players, not a sum.
func (s *StatsService) TeamStatistics() (*TeamStatistics, error) {
	var totals struct {
		TotalRuns    int
		TotalWickets int
	}
	if err := s.DB.Model(&models.PlayerStats{}).
		Select("COALESCE(SUM(runs_scored), 0) AS total_runs, COALESCE(SUM(wickets_taken), 0) AS total_wickets").
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to sum player stats: %w", err)
	}

	var season struct {
		MatchesPlayed int
	}
	if err := s.DB.Model(&models.PlayerStats{}).
		Select("COALESCE(MAX(player_stats.matches), 0) AS matches_played").
		Joins("JOIN players ON players.id = player_stats.player_id").
		Where("players.is_active = ?", true).
		Scan(&season).Error; err != nil {
		return nil, fmt.Errorf("failed to compute season length: %w", err)
	}

	stats := &TeamStatistics{
		MatchesPlayed: season.MatchesPlayed,
		MatchesWon:    EstimateMatchesWon(season.MatchesPlayed),
		TotalRuns:     totals.TotalRuns,
		TotalWickets:  totals.TotalWickets,
	}
	if stats.MatchesPlayed > 0 {
		stats.WinRate = int(math.Round(float64(stats.MatchesWon) / float64(stats.MatchesPlayed) * 100))
	}
	return stats, nil
}
