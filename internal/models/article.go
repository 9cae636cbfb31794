package models

import "time"

// Author is the subset of a profile embedded in every article.
type Author struct {
	Username string `json:"username"`
	Image    string `json:"image,omitempty"`
}

// Article as served by the API. Slug is the immutable identifier;
// everything else may change across fetches.
type Article struct {
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Body           string    `json:"body"`
	TagList        []string  `json:"tagList"`
	CreatedAt      time.Time `json:"createdAt"`
	Favorited      bool      `json:"favorited"`
	FavoritesCount int       `json:"favoritesCount"`
	Author         Author    `json:"author"`
}

// Clone returns a deep copy so the paginated list and the focused article
// never alias each other.
func (a *Article) Clone() *Article {
	if a == nil {
		return nil
	}
	c := *a
	if a.TagList != nil {
		c.TagList = append([]string(nil), a.TagList...)
	}
	return &c
}
