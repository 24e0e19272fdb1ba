package models

// ContentType tags which logical entity a social or comment row points at.
// The (ContentType, ContentID) pair is not a foreign key.
type ContentType string

const (
	ContentTypeHero       ContentType = "hero"
	ContentTypeNews       ContentType = "news"
	ContentTypePlayer     ContentType = "player"
	ContentTypeGallery    ContentType = "gallery"
	ContentTypeTournament ContentType = "tournament"
)

var contentTypes = map[ContentType]bool{
	ContentTypeHero:       true,
	ContentTypeNews:       true,
	ContentTypePlayer:     true,
	ContentTypeGallery:    true,
	ContentTypeTournament: true,
}

// Valid reports whether t belongs to the closed set accepted by the API.
func (t ContentType) Valid() bool {
	return contentTypes[t]
}
