package store

import (
	"context"
	"sync"

	"conduit-cli/internal/api"
	"conduit-cli/internal/logging"
	"conduit-cli/internal/models"
)

// PageSize is fixed by the UI contract: every list request asks for five
// articles.
const PageSize = 5

// TokenSource provides the bearer token for article operations.
// UserStore implements it; article requests are anonymous when it returns "".
type TokenSource interface {
	Token() string
}

// PageWindow is a snapshot of the paginated list state.
//
// CurrentPage reflects the last fetch that actually succeeded, not the last
// one requested, so a failed page fetch intentionally leaves it stale.
// PageCount is recomputed whenever TotalCount changes.
type PageWindow struct {
	Items       []models.Article
	TotalCount  int
	CurrentPage int
	PageCount   int
}

// ArticleStore owns the paginated article list and the focused article.
// The two are independent copies: fetching a single article never patches
// the list's copy of it.
type ArticleStore struct {
	mu     sync.Mutex
	client api.Client
	tokens TokenSource
	track  *tracker

	items       []models.Article
	totalCount  int
	pageCount   int
	currentPage int
	focused     *models.Article
}

func NewArticleStore(client api.Client, tokens TokenSource, log logging.Logger) *ArticleStore {
	return &ArticleStore{
		client:      client,
		tokens:      tokens,
		track:       newTracker("articles", log),
		currentPage: 1,
	}
}

// FetchPage loads one page of the article list. Pages are numbered from 1.
func (s *ArticleStore) FetchPage(ctx context.Context, page int) error {
	return s.track.run(ctx, "fetchArticles", func(ctx context.Context) error {
		offset := (page - 1) * PageSize
		res, err := s.client.ListArticles(ctx, s.tokens.Token(), PageSize, offset)
		if err != nil {
			return err
		}

		s.mu.Lock()
		s.items = res.Articles
		s.totalCount = res.ArticlesCount
		s.pageCount = res.ArticlesCount/PageSize + 1
		s.currentPage = page
		s.mu.Unlock()
		return nil
	})
}

// FetchOne loads a single article by slug and makes it the focused article.
func (s *ArticleStore) FetchOne(ctx context.Context, slug string) error {
	return s.track.run(ctx, "fetchArticle", func(ctx context.Context) error {
		art, err := s.client.GetArticle(ctx, s.tokens.Token(), slug)
		if err != nil {
			return err
		}
		s.setFocused(art)
		return nil
	})
}

// Create publishes a new article; on success it becomes the focused article.
func (s *ArticleStore) Create(ctx context.Context, draft api.ArticleDraft) error {
	return s.track.run(ctx, "createArticle", func(ctx context.Context) error {
		art, err := s.client.CreateArticle(ctx, s.tokens.Token(), draft)
		if err != nil {
			return err
		}
		s.setFocused(art)
		return nil
	})
}

// Update rewrites an existing article; on success the result becomes the
// focused article.
func (s *ArticleStore) Update(ctx context.Context, slug string, draft api.ArticleDraft) error {
	return s.track.run(ctx, "updateArticle", func(ctx context.Context) error {
		art, err := s.client.UpdateArticle(ctx, s.tokens.Token(), slug, draft)
		if err != nil {
			return err
		}
		s.setFocused(art)
		return nil
	})
}

// Delete removes an article remotely. The local list is left as is; callers
// re-fetch the page or navigate away afterwards.
func (s *ArticleStore) Delete(ctx context.Context, slug string) error {
	return s.track.run(ctx, "deleteArticle", func(ctx context.Context) error {
		return s.client.DeleteArticle(ctx, s.tokens.Token(), slug)
	})
}

// ToggleFavorite flips the caller's favorite mark on an article.
//
// The locally cached favorited flag may be stale, so the store first
// re-fetches the article to learn the authoritative value (replacing the
// focused article as a side effect), then issues the inverse action. Both
// steps run inside a single tracked operation: failure at either step
// surfaces as one rejection, never as a half-toggled intermediate.
func (s *ArticleStore) ToggleFavorite(ctx context.Context, slug string) error {
	return s.track.run(ctx, "favoriteArticle", func(ctx context.Context) error {
		token := s.tokens.Token()

		current, err := s.client.GetArticle(ctx, token, slug)
		if err != nil {
			return err
		}
		s.setFocused(current)

		updated, err := s.client.FavoriteArticle(ctx, token, slug, !current.Favorited)
		if err != nil {
			return err
		}
		s.setFocused(updated)
		return nil
	})
}

func (s *ArticleStore) setFocused(a *models.Article) {
	s.mu.Lock()
	s.focused = a.Clone()
	s.mu.Unlock()
}

// Page returns a snapshot of the current list window.
func (s *ArticleStore) Page() PageWindow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return PageWindow{
		Items:       append([]models.Article(nil), s.items...),
		TotalCount:  s.totalCount,
		CurrentPage: s.currentPage,
		PageCount:   s.pageCount,
	}
}

// Focused returns a copy of the focused article, or nil when none is loaded.
func (s *ArticleStore) Focused() *models.Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focused.Clone()
}

// Status reports the tracker state of the last article operation.
func (s *ArticleStore) Status() (Status, error) {
	return s.track.snapshot()
}
