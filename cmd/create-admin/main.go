package main

import (
	"flag"
	"log"
	"os"

	"cricket-club-site/database"
	"cricket-club-site/models"
	"cricket-club-site/services"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	username := flag.String("username", os.Getenv("ADMIN_USERNAME"), "admin username")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password (min 8 characters)")
	flag.Parse()

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

	// Only the password hash is needed here, not token signing.
	auth := services.NewAuthService(db, "", 0)
	user, err := auth.CreateUser(*username, *password, models.RoleAdmin)
	if err != nil {
		log.Fatal("❌ ", err)
	}
	log.Printf("✅ Admin user %q created (id %d)", user.Username, user.ID)
}
