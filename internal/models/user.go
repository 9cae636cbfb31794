package models

// User is the authenticated account as returned by the API.
// Token is the bearer token issued on register/login and refreshed on
// profile updates; it is empty exactly when no user is signed in.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Image    string `json:"image,omitempty"`
	Token    string `json:"token"`
}
