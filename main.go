package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"cricket-club-site/config"
	"cricket-club-site/database"
	"cricket-club-site/handlers"
	"cricket-club-site/services"
	"cricket-club-site/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var images utils.ImageStore
	if cfg.R2.Enabled() {
		r2, err := utils.NewR2Store(ctx, cfg.R2)
		if err != nil {
			log.Fatal("failed to initialize R2 client: ", err)
		}
		images = r2
		log.Printf("✅ Uploads go to R2 bucket %s", cfg.R2.Bucket)
	} else {
		local, err := utils.NewLocalStore(cfg.UploadDir)
		if err != nil {
			log.Fatal(err)
		}
		images = local
		log.Printf("✅ Uploads stored locally in %s", cfg.UploadDir)
	}

	news := services.NewNewsService(db)
	tournaments := services.NewTournamentService(db)

	deps := handlers.Deps{
		Auth:          services.NewAuthService(db, cfg.JWTSecret, cfg.TokenTTL),
		HeroSlides:    services.NewHeroSlideService(db),
		News:          news,
		Players:       services.NewPlayerService(db),
		Gallery:       services.NewGalleryService(db),
		Social:        services.NewSocialService(db),
		Comments:      services.NewCommentService(db),
		Registrations: services.NewRegistrationService(db),
		Stats:         services.NewStatsService(db),
		Tournaments:   tournaments,
		Images:        images,
	}

	scheduler := services.NewScheduler(news, tournaments)
	if err := scheduler.Start(cfg.PublishInterval); err != nil {
		log.Fatal(err)
	}
	defer scheduler.Stop()

	appCfg := handlers.AppConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		AccessLog:      true,
	}
	if !cfg.R2.Enabled() {
		appCfg.UploadDir = cfg.UploadDir
	}
	app := handlers.NewApp(deps, appCfg)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", cfg.Port)
	log.Printf("✅ Publish scheduler running (every %s)", cfg.PublishInterval)
	log.Printf("✅ CORS configured for origins: %s", cfg.AllowedOrigins)

	<-ctx.Done()
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
