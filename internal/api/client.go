package api

import (
	"context"

	"conduit-cli/internal/models"
)

// ArticleDraft is the writable part of an article, sent on create and update.
type ArticleDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	TagList     []string `json:"tagList,omitempty"`
}

// UserPatch is a partial profile update. Nil fields mean "unchanged".
type UserPatch struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Image    *string `json:"image,omitempty"`
}

// ArticlesPage is one window of the paginated article list.
type ArticlesPage struct {
	Articles      []models.Article
	ArticlesCount int
}

// Client is the remote API surface consumed by the stores.
//
// Token is passed per call because the stores own the token lifecycle;
// an empty token makes the request unauthenticated. Validation rejections
// (HTTP 422 with a field error map) surface as *ValidationError, everything
// else that fails as *TransportError.
type Client interface {
	ListArticles(ctx context.Context, token string, limit, offset int) (*ArticlesPage, error)
	GetArticle(ctx context.Context, token, slug string) (*models.Article, error)
	CreateArticle(ctx context.Context, token string, draft ArticleDraft) (*models.Article, error)
	UpdateArticle(ctx context.Context, token, slug string, draft ArticleDraft) (*models.Article, error)
	DeleteArticle(ctx context.Context, token, slug string) error
	FavoriteArticle(ctx context.Context, token, slug string, favorite bool) (*models.Article, error)

	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	CurrentUser(ctx context.Context, token string) (*models.User, error)
	UpdateUser(ctx context.Context, token string, patch UserPatch) (*models.User, error)
}
