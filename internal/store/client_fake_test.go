package store

import (
	"context"
	"sync"

	"conduit-cli/internal/api"
	"conduit-cli/internal/models"
	"conduit-cli/internal/persist"
)

// fakeClient implements api.Client for store tests. Every call appends a
// "METHOD path" record so tests can assert on exact request sequences.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	ListRet    *api.ArticlesPage
	ListErr    error
	LastLimit  int
	LastOffset int

	GetArticleRet *models.Article
	GetArticleErr error

	CreateRet *models.Article
	CreateErr error
	LastDraft api.ArticleDraft

	UpdateRet *models.Article
	UpdateErr error

	DeleteErr error

	FavoriteRet  *models.Article
	FavoriteErr  error
	LastFavorite bool

	RegisterRet *models.User
	RegisterErr error

	LoginRet *models.User
	LoginErr error

	CurrentRet *models.User
	CurrentErr error

	UpdateUserRet *models.User
	UpdateUserErr error
	LastPatch     api.UserPatch

	LastToken string
}

func (f *fakeClient) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) ListArticles(ctx context.Context, token string, limit, offset int) (*api.ArticlesPage, error) {
	f.record("GET /articles")
	f.LastToken = token
	f.LastLimit = limit
	f.LastOffset = offset
	return f.ListRet, f.ListErr
}

func (f *fakeClient) GetArticle(ctx context.Context, token, slug string) (*models.Article, error) {
	f.record("GET /articles/" + slug)
	f.LastToken = token
	if f.GetArticleErr != nil {
		return nil, f.GetArticleErr
	}
	return f.GetArticleRet.Clone(), nil
}

func (f *fakeClient) CreateArticle(ctx context.Context, token string, draft api.ArticleDraft) (*models.Article, error) {
	f.record("POST /articles")
	f.LastToken = token
	f.LastDraft = draft
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) UpdateArticle(ctx context.Context, token, slug string, draft api.ArticleDraft) (*models.Article, error) {
	f.record("PUT /articles/" + slug)
	f.LastToken = token
	f.LastDraft = draft
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) DeleteArticle(ctx context.Context, token, slug string) error {
	f.record("DELETE /articles/" + slug)
	f.LastToken = token
	return f.DeleteErr
}

func (f *fakeClient) FavoriteArticle(ctx context.Context, token, slug string, favorite bool) (*models.Article, error) {
	if favorite {
		f.record("POST /articles/" + slug + "/favorite")
	} else {
		f.record("DELETE /articles/" + slug + "/favorite")
	}
	f.LastToken = token
	f.LastFavorite = favorite
	if f.FavoriteErr != nil {
		return nil, f.FavoriteErr
	}
	return f.FavoriteRet.Clone(), nil
}

func (f *fakeClient) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	f.record("POST /users")
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.User, error) {
	f.record("POST /users/login")
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	f.record("GET /user")
	f.LastToken = token
	return f.CurrentRet, f.CurrentErr
}

func (f *fakeClient) UpdateUser(ctx context.Context, token string, patch api.UserPatch) (*models.User, error) {
	f.record("PUT /user")
	f.LastToken = token
	f.LastPatch = patch
	return f.UpdateUserRet, f.UpdateUserErr
}

var _ api.Client = (*fakeClient)(nil)

// fakePersister records every saved state in order.
type fakePersister struct {
	mu      sync.Mutex
	Saved   []*persist.State
	LoadRet *persist.State
	LoadErr error
	SaveErr error
}

func (f *fakePersister) Load(ctx context.Context) (*persist.State, error) {
	return f.LoadRet, f.LoadErr
}

func (f *fakePersister) Save(ctx context.Context, state *persist.State) error {
	f.mu.Lock()
	f.Saved = append(f.Saved, state)
	f.mu.Unlock()
	return f.SaveErr
}

func (f *fakePersister) Close() error { return nil }

func (f *fakePersister) LastSaved() *persist.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Saved) == 0 {
		return nil
	}
	return f.Saved[len(f.Saved)-1]
}
