package middleware

import "errors"

var (
	ErrNotConfigured    = errors.New("secret not configured")
	ErrMissingSignature = errors.New("missing signature")
	ErrInvalidSignature = errors.New("signature verification failed")
	ErrStaleTimestamp   = errors.New("timestamp outside the allowed window")
	ErrMissingToken     = errors.New("missing bearer token")
	ErrInvalidToken     = errors.New("invalid token")
)
