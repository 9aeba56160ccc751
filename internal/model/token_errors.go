package model

import "errors"

var (
	ErrTokenInvalid          = errors.New("token invalid")
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenIssuerMismatch   = errors.New("token issuer mismatch")
	ErrTokenAudienceMismatch = errors.New("token audience mismatch")
	ErrTokenTypeMismatch     = errors.New("token type mismatch")
)
