package main

import (
	"log"
	"os"

	"cricket-club-site/database"
	"cricket-club-site/models"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	db, err := database.Open(dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	if err := seed(db); err != nil {
		log.Fatal("❌ seeding failed: ", err)
	}
	log.Println("✅ Seeding finished")
}

// seed fills each content table that is still empty. Tables that already hold
// rows are left alone so the command is safe to re-run.
func seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedTable(tx, &models.HeroSlide{}, heroSlides()); err != nil {
			return err
		}
		if err := seedTable(tx, &models.NewsArticle{}, newsArticles()); err != nil {
			return err
		}
		if err := seedPlayers(tx); err != nil {
			return err
		}
		return seedTable(tx, &models.GalleryItem{}, galleryItems())
	})
}

func empty(tx *gorm.DB, model interface{}) (bool, error) {
	var n int64
	if err := tx.Model(model).Count(&n).Error; err != nil {
		return false, err
	}
	return n == 0, nil
}

func seedTable[T any](tx *gorm.DB, model interface{}, rows []T) error {
	ok, err := empty(tx, model)
	if err != nil || !ok {
		return err
	}
	if err := tx.Create(&rows).Error; err != nil {
		return err
	}
	log.Printf("✓ %d %T rows created", len(rows), model)
	return nil
}

func seedPlayers(tx *gorm.DB) error {
	ok, err := empty(tx, &models.Player{})
	if err != nil || !ok {
		return err
	}

	roster := players()
	for i := range roster {
		if err := tx.Create(&roster[i].player).Error; err != nil {
			return err
		}
		roster[i].stats.PlayerID = roster[i].player.ID
		if err := tx.Create(&roster[i].stats).Error; err != nil {
			return err
		}
	}
	log.Printf("✓ %d players with stats created", len(roster))
	return nil
}

const unsplash = "https://images.unsplash.com/"

func heroSlides() []models.HeroSlide {
	return []models.HeroSlide{
		{
			Title:       "Championship Victory!",
			Description: "From dominating the league matches to securing the championship trophy - witness our incredible journey to glory...",
			Date:        "15 MAR, 2024",
			Image:       unsplash + "photo-1540747913346-19e32dc3e97e?auto=format&fit=crop&w=1200&h=600",
			Order:       1,
			IsActive:    true,
		},
		{
			Title:       "Training Excellence",
			Description: "Behind every victory lies countless hours of dedication and training. See how our champions prepare for greatness...",
			Date:        "22 MAR, 2024",
			Image:       unsplash + "photo-1578662996442-48f60103fc96?auto=format&fit=crop&w=1200&h=600",
			Order:       2,
			IsActive:    true,
		},
	}
}

func newsArticles() []models.NewsArticle {
	return []models.NewsArticle{
		{
			Title:       "Thank you, #TeamOf2025!",
			Description: "An incredible season comes to an end. Thank you to all our players, coaches, and fans for making this journey unforgettable.",
			Content:     "What a season it has been! From the very first match to lifting the championship trophy, every moment has been filled with passion and team spirit. Thank you for being part of the club family!",
			Date:        "04 JUN, 2025",
			Image:       unsplash + "photo-1531415074968-036ba1b575da?auto=format&fit=crop&w=600&h=400",
			IsPublished: true,
		},
		{
			Title:       "Our bowling unit bowled us over!",
			Description: "Our bowling attack has been phenomenal this season, taking crucial wickets at important moments.",
			Content:     "The bowling unit has been the backbone of our championship victory. From swing bowling in the powerplay to death bowling expertise, our bowlers have mastered every aspect of the game.",
			Date:        "28 MAY, 2025",
			Image:       unsplash + "photo-1578662996442-48f60103fc96?auto=format&fit=crop&w=600&h=400",
			IsPublished: true,
		},
		{
			Title:       "Season Highlights Reel",
			Description: "Relive the best moments from our championship-winning season with this exclusive highlights package.",
			Content:     "Our championship season has been filled with unforgettable moments. From spectacular catches to match-winning performances, every game brought something special.",
			Date:        "15 MAY, 2025",
			Image:       unsplash + "photo-1571019613454-1cb2f99b2d8b?auto=format&fit=crop&w=600&h=400",
			IsPublished: true,
		},
	}
}

type seededPlayer struct {
	player models.Player
	stats  models.PlayerStats
}

func players() []seededPlayer {
	return []seededPlayer{
		{
			player: models.Player{Name: "HARDIK PANDYA", Role: "ALL-ROUNDER", JerseyNumber: 7, IsCaptain: true, IsActive: true,
				Image: unsplash + "photo-1506794778202-cad84cf45f1d?auto=format&fit=crop&w=300&h=400"},
			stats: models.PlayerStats{Matches: 18, RunsScored: 485, BallsFaced: 320, Fours: 45, Sixes: 12,
				WicketsTaken: 23, BallsBowled: 180, RunsConceded: 145, Catches: 8},
		},
		{
			player: models.Player{Name: "AM GHAZANFAR", Role: "BOWLER", JerseyNumber: 23, IsActive: true,
				Image: unsplash + "photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=300&h=400"},
			stats: models.PlayerStats{Matches: 16, RunsScored: 45, BallsFaced: 35, Fours: 3,
				WicketsTaken: 28, BallsBowled: 240, RunsConceded: 180, Catches: 3},
		},
		{
			player: models.Player{Name: "ARJUN TENDULKAR", Role: "BOWLER", JerseyNumber: 18, IsActive: true,
				Image: unsplash + "photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&w=300&h=400"},
			stats: models.PlayerStats{Matches: 15, RunsScored: 78, BallsFaced: 65, Fours: 8, Sixes: 1,
				WicketsTaken: 22, BallsBowled: 200, RunsConceded: 165, Catches: 5},
		},
		{
			player: models.Player{Name: "ASHWANI KUMAR", Role: "BOWLER", JerseyNumber: 11, IsActive: true,
				Image: unsplash + "photo-1500648767791-00dcc994a43e?auto=format&fit=crop&w=300&h=400"},
			stats: models.PlayerStats{Matches: 17, RunsScored: 34, BallsFaced: 28, Fours: 2,
				WicketsTaken: 25, BallsBowled: 220, RunsConceded: 175, Catches: 4},
		},
		{
			player: models.Player{Name: "BEYON JACC", Role: "ALL-ROUNDER", JerseyNumber: 15, IsActive: true,
				Image: unsplash + "photo-1519345182560-3f2917c472ef?auto=format&fit=crop&w=300&h=400"},
			stats: models.PlayerStats{Matches: 14, RunsScored: 189, BallsFaced: 145, Fours: 18, Sixes: 6,
				WicketsTaken: 15, BallsBowled: 120, RunsConceded: 95, Catches: 6},
		},
	}
}

func galleryItems() []models.GalleryItem {
	return []models.GalleryItem{
		{Title: "Moments from the Eagles fixture", Category: models.DefaultGalleryCategory, Date: "07 May, 2025", IsVisible: true,
			Image: unsplash + "photo-1540747913346-19e32dc3e97e?auto=format&fit=crop&w=800&h=600"},
		{Title: "Team Celebration", Category: models.DefaultGalleryCategory, Date: "15 Mar, 2024", IsVisible: true,
			Image: unsplash + "photo-1531415074968-036ba1b575da?auto=format&fit=crop&w=800&h=600"},
	}
}
