package models

// SocialCounters is the public view of a SocialInteraction.
type SocialCounters struct {
	ContentType ContentType `json:"contentType"`
	ContentID   uint        `json:"contentId"`
	Likes       int64       `json:"likes"`
	Dislikes    int64       `json:"dislikes"`
	Shares      int64       `json:"shares"`
}

func (s *SocialInteraction) Counters() SocialCounters {
	return SocialCounters{
		ContentType: s.ContentType,
		ContentID:   s.ContentID,
		Likes:       s.Likes,
		Dislikes:    s.Dislikes,
		Shares:      s.Shares,
	}
}
