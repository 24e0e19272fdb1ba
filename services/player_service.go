package services

import (
	"fmt"
	"time"

	"cricket-club-site/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlayerService struct {
	DB *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{DB: db}
}

type PlayerInput struct {
	Name         string `json:"name" validate:"required"`
	Role         string `json:"role" validate:"required"`
	JerseyNumber *int   `json:"jerseyNumber" validate:"required,min=0"`
	Image        string `json:"image" validate:"required"`
	IsCaptain    bool   `json:"isCaptain"`
	IsActive     *bool  `json:"isActive"`
}

func (in *PlayerInput) applyTo(p *models.Player) {
	p.Name = in.Name
	p.Role = in.Role
	p.JerseyNumber = *in.JerseyNumber
	p.Image = in.Image
	p.IsCaptain = in.IsCaptain
	p.IsActive = boolOr(in.IsActive, true)
}

// StatsInput carries the full set of counters; omitted counters are stored as 0.
type StatsInput struct {
	Matches      int `json:"matches" validate:"min=0"`
	RunsScored   int `json:"runsScored" validate:"min=0"`
	BallsFaced   int `json:"ballsFaced" validate:"min=0"`
	Fours        int `json:"fours" validate:"min=0"`
	Sixes        int `json:"sixes" validate:"min=0"`
	WicketsTaken int `json:"wicketsTaken" validate:"min=0"`
	BallsBowled  int `json:"ballsBowled" validate:"min=0"`
	RunsConceded int `json:"runsConceded" validate:"min=0"`
	Catches      int `json:"catches" validate:"min=0"`
	RunOuts      int `json:"runOuts" validate:"min=0"`
	Stumpings    int `json:"stumpings" validate:"min=0"`
}

var statsColumns = []string{
	"matches", "runs_scored", "balls_faced", "fours", "sixes", "wickets_taken",
	"balls_bowled", "runs_conceded", "catches", "run_outs", "stumpings", "updated_at",
}

// List returns players by jersey number.
func (s *PlayerService) List(opts ListOptions) ([]models.Player, error) {
	q := s.DB.Model(&models.Player{})
	if !opts.IncludeHidden {
		q = q.Where("is_active = ?", true)
	}
	q = q.Order("jersey_number ASC").Order("id ASC")

	players := []models.Player{}
	if err := opts.apply(q).Find(&players).Error; err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

// playerStatsRow is one row of the players LEFT JOIN player_stats query.
type playerStatsRow struct {
	models.Player
	StatsID        *uint
	StatsPlayerID  *uint
	Matches        *int
	RunsScored     *int
	BallsFaced     *int
	Fours          *int
	Sixes          *int
	WicketsTaken   *int
	BallsBowled    *int
	RunsConceded   *int
	Catches        *int
	RunOuts        *int
	Stumpings      *int
	StatsUpdatedAt *time.Time
}

func (r *playerStatsRow) stats() *models.PlayerStats {
	if r.StatsID == nil {
		return nil
	}
	st := &models.PlayerStats{
		ID:           *r.StatsID,
		PlayerID:     r.Player.ID,
		Matches:      deref(r.Matches),
		RunsScored:   deref(r.RunsScored),
		BallsFaced:   deref(r.BallsFaced),
		Fours:        deref(r.Fours),
		Sixes:        deref(r.Sixes),
		WicketsTaken: deref(r.WicketsTaken),
		BallsBowled:  deref(r.BallsBowled),
		RunsConceded: deref(r.RunsConceded),
		Catches:      deref(r.Catches),
		RunOuts:      deref(r.RunOuts),
		Stumpings:    deref(r.Stumpings),
	}
	if r.StatsUpdatedAt != nil {
		st.UpdatedAt = *r.StatsUpdatedAt
	}
	return st
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// ListWithStats left-joins players to their stats. Players without a stats row
// come back with Stats == nil.
func (s *PlayerService) ListWithStats(includeHidden bool) ([]models.PlayerWithStats, error) {
	q := s.DB.Table("players").
		Select(`players.*,
			player_stats.id AS stats_id,
			player_stats.player_id AS stats_player_id,
			player_stats.matches, player_stats.runs_scored, player_stats.balls_faced,
			player_stats.fours, player_stats.sixes, player_stats.wickets_taken,
			player_stats.balls_bowled, player_stats.runs_conceded, player_stats.catches,
			player_stats.run_outs, player_stats.stumpings,
			player_stats.updated_at AS stats_updated_at`).
		Joins("LEFT JOIN player_stats ON player_stats.player_id = players.id")
	if !includeHidden {
		q = q.Where("players.is_active = ?", true)
	}

	var rows []playerStatsRow
	if err := q.Order("players.jersey_number ASC").Order("players.id ASC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list players with stats: %w", err)
	}

	out := make([]models.PlayerWithStats, 0, len(rows))
	for i := range rows {
		out = append(out, models.PlayerWithStats{Player: rows[i].Player, Stats: rows[i].stats()})
	}
	return out, nil
}

func (s *PlayerService) Get(id uint, includeHidden bool) (*models.Player, error) {
	q := s.DB
	if !includeHidden {
		q = q.Where("is_active = ?", true)
	}
	var player models.Player
	if err := q.First(&player, id).Error; err != nil {
		return nil, notFound(err, "player")
	}
	return &player, nil
}

func (s *PlayerService) Create(in PlayerInput) (*models.Player, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	player := &models.Player{}
	in.applyTo(player)
	if err := s.DB.Create(player).Error; err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return player, nil
}

func (s *PlayerService) Update(id uint, in PlayerInput) (*models.Player, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	player, err := s.Get(id, true)
	if err != nil {
		return nil, err
	}
	in.applyTo(player)
	if err := updateByID(s.DB, player, id, "player"); err != nil {
		return nil, err
	}
	return player, nil
}

// Delete removes the player and its stats row.
func (s *PlayerService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("player_id = ?", id).Delete(&models.PlayerStats{}).Error; err != nil {
			return fmt.Errorf("failed to delete stats of player %d: %w", id, err)
		}
		return deleteByID(tx, &models.Player{}, id, "player")
	})
}

// UpsertStats writes the player's counters in one INSERT ... ON CONFLICT
// statement, so a player never ends up with two stats rows.
func (s *PlayerService) UpsertStats(playerID uint, in StatsInput) (*models.PlayerStats, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	var saved models.PlayerStats
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Player{}).Where("id = ?", playerID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check player %d: %w", playerID, err)
		}
		if count == 0 {
			return fmt.Errorf("player %d: %w", playerID, ErrNotFound)
		}

		row := models.PlayerStats{
			PlayerID:     playerID,
			Matches:      in.Matches,
			RunsScored:   in.RunsScored,
			BallsFaced:   in.BallsFaced,
			Fours:        in.Fours,
			Sixes:        in.Sixes,
			WicketsTaken: in.WicketsTaken,
			BallsBowled:  in.BallsBowled,
			RunsConceded: in.RunsConceded,
			Catches:      in.Catches,
			RunOuts:      in.RunOuts,
			Stumpings:    in.Stumpings,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "player_id"}},
			DoUpdates: clause.AssignmentColumns(statsColumns),
		}).Create(&row).Error; err != nil {
			return fmt.Errorf("failed to upsert stats for player %d: %w", playerID, err)
		}

		return tx.Where("player_id = ?", playerID).First(&saved).Error
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
