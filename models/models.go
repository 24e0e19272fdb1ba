package models

// All lists every table for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&User{},
		&HeroSlide{},
		&NewsArticle{},
		&Player{},
		&PlayerStats{},
		&GalleryItem{},
		&SocialInteraction{},
		&Comment{},
		&PlayerRegistration{},
		&Tournament{},
	}
}
