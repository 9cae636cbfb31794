package api

import "conduit-cli/internal/models"

// errorBody is embedded in every response envelope. The server reports
// domain validation failures as {"errors": {"field": ["message", ...]}}
// with status 422, and the adapter decodes those bodies instead of failing.
type errorBody struct {
	Errors map[string][]string `json:"errors"`
}

func (b *errorBody) validationError() error {
	if len(b.Errors) == 0 {
		return nil
	}
	return &ValidationError{Fields: b.Errors}
}

type userEnvelope struct {
	errorBody
	User models.User `json:"user"`
}

type articleEnvelope struct {
	errorBody
	Article models.Article `json:"article"`
}

type articlesEnvelope struct {
	errorBody
	Articles      []models.Article `json:"articles"`
	ArticlesCount int              `json:"articlesCount"`
}

type registerRequest struct {
	User struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"user"`
}

type loginRequest struct {
	User struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"user"`
}

type updateUserRequest struct {
	User UserPatch `json:"user"`
}

type articleRequest struct {
	Article ArticleDraft `json:"article"`
}
