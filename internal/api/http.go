package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"conduit-cli/internal/models"
)

// DefaultBaseURL points at the public demo backend.
const DefaultBaseURL = "https://api.realworld.io/api"

const contentTypeJSON = "application/json;charset=utf-8"

// HTTPClient talks to the blogging API over REST/JSON.
//
// The adapter performs no retries, no caching and sets no timeout of its
// own; callers bound requests through the context or the injected
// http.Client.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds an adapter for the given base URL. An empty baseURL
// selects DefaultBaseURL; a nil httpClient selects http.DefaultClient.
func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// do performs one request. A 2xx status or a 422 decodes the body into out;
// 422 carries the field error map the caller classifies via the envelope.
// Any other status, a network failure, or an undecodable body yields
// *TransportError.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Err: fmt.Errorf("encode request: %w", err)}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &TransportError{Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if !ok && resp.StatusCode != http.StatusUnprocessableEntity {
		io.Copy(io.Discard, resp.Body)
		return &TransportError{Status: resp.StatusCode}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (c *HTTPClient) ListArticles(ctx context.Context, token string, limit, offset int) (*ArticlesPage, error) {
	path := fmt.Sprintf("/articles?limit=%d&offset=%d", limit, offset)

	var env articlesEnvelope
	if err := c.do(ctx, http.MethodGet, path, token, nil, &env); err != nil {
		return nil, err
	}
	if err := env.validationError(); err != nil {
		return nil, err
	}
	return &ArticlesPage{Articles: env.Articles, ArticlesCount: env.ArticlesCount}, nil
}

func (c *HTTPClient) GetArticle(ctx context.Context, token, slug string) (*models.Article, error) {
	var env articleEnvelope
	if err := c.do(ctx, http.MethodGet, "/articles/"+url.PathEscape(slug), token, nil, &env); err != nil {
		return nil, err
	}
	if err := env.validationError(); err != nil {
		return nil, err
	}
	return &env.Article, nil
}

func (c *HTTPClient) CreateArticle(ctx context.Context, token string, draft ArticleDraft) (*models.Article, error) {
	var env articleEnvelope
	if err := c.do(ctx, http.MethodPost, "/articles", token, articleRequest{Article: draft}, &env); err != nil {
		return nil, err
	}
	if err := env.validationError(); err != nil {
		return nil, err
	}
	return &env.Article, nil
}

func (c *HTTPClient) UpdateArticle(ctx context.Context, token, slug string, draft ArticleDraft) (*models.Article, error) {
	var env articleEnvelope
	if err := c.do(ctx, http.MethodPut, "/articles/"+url.PathEscape(slug), token, articleRequest{Article: draft}, &env); err != nil {
		return nil, err
	}
	if err := env.validationError(); err != nil {
		return nil, err
	}
	return &env.Article, nil
}

func (c *HTTPClient) DeleteArticle(ctx context.Context, token, slug string) error {
	return c.do(ctx, http.MethodDelete, "/articles/"+url.PathEscape(slug), token, nil, nil)
}

// FavoriteArticle adds (favorite=true) or removes (favorite=false) the
// caller's favorite mark and returns the updated article.
func (c *HTTPClient) FavoriteArticle(ctx context.Context, token, slug string, favorite bool) (*models.Article, error) {
	method := http.MethodPost
	if !favorite {
		method = http.MethodDelete
	}

	var env articleEnvelope
	if err := c.do(ctx, method, "/articles/"+url.PathEscape(slug)+"/favorite", token, nil, &env); err != nil {
		return nil, err
	}
	if err := env.validationError(); err != nil {
		return nil, err
	}
	return &env.Article, nil
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	var req registerRequest
	req.User.Username = username
	req.User.Email = email
	req.User.Password = password

	var env userEnvelope
	if err := c.do(ctx, http.MethodPost, "/users", "", req, &env); err != nil {
		return nil, err
	}
	if err := env.validationError(); err != nil {
		return nil, err
	}
	return &env.User, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.User, error) {
	var req loginRequest
	req.User.Email = email
	req.User.Password = password

	var env userEnvelope
	if err := c.do(ctx, http.MethodPost, "/users/login", "", req, &env); err != nil {
		return nil, err
	}
	if err := env.validationError(); err != nil {
		return nil, err
	}
	return &env.User, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	var env userEnvelope
	if err := c.do(ctx, http.MethodGet, "/user", token, nil, &env); err != nil {
		return nil, err
	}
	if err := env.validationError(); err != nil {
		return nil, err
	}
	return &env.User, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, token string, patch UserPatch) (*models.User, error) {
	var env userEnvelope
	if err := c.do(ctx, http.MethodPut, "/user", token, updateUserRequest{User: patch}, &env); err != nil {
		return nil, err
	}
	if err := env.validationError(); err != nil {
		return nil, err
	}
	return &env.User, nil
}

var _ Client = (*HTTPClient)(nil)
