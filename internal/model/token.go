package model

import "time"

// TokenManager generates and validates access/refresh tokens.
type TokenManager interface {
	GenerateAccessToken(userID int64, email string) (string, error)
	GenerateRefreshToken(userID int64) (token string, jti string, err error)
	ParseAccessToken(token string) (TokenPayload, error)
	ParseRefreshToken(token string) (TokenPayload, error)
}

// TokenPayload is the decoded claim set of a verified token. It is
// ephemeral and never persisted.
type TokenPayload struct {
	UserID    int64
	Email     string
	JTI       string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Identity is the per-request artifact produced by the authentication
// middleware: the decoded token payload plus the resolved user. Handlers
// read it from the request context instead of re-parsing the token.
type Identity struct {
	Payload TokenPayload
	User    User
}
