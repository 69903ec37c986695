package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	HeaderSignature = "X-Signature-256"
	HeaderTimestamp = "X-Signature-Timestamp"

	signaturePrefix = "sha256="
	bearerPrefix    = "Bearer "
)

// Sign returns the signature header value for a payload sent at timestamp (unix seconds).
// The MAC covers the timestamp followed by the raw body.
func Sign(secret, timestamp string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write(payload)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

// verifySignature checks a "sha256=<hex>" signature and the freshness of its timestamp.
func verifySignature(secret string, payload []byte, timestamp, signature string, now time.Time, maxSkew time.Duration) error {
	if secret == "" {
		return ErrNotConfigured
	}
	if signature == "" || timestamp == "" {
		return ErrMissingSignature
	}
	if !strings.HasPrefix(signature, signaturePrefix) {
		return fmt.Errorf("%w: invalid signature format", ErrInvalidSignature)
	}

	sent, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: invalid timestamp", ErrInvalidSignature)
	}
	if skew := now.Sub(time.Unix(sent, 0)); skew > maxSkew || skew < -maxSkew {
		return ErrStaleTimestamp
	}

	expected, err := hex.DecodeString(signature[len(signaturePrefix):])
	if err != nil {
		return fmt.Errorf("%w: invalid signature hex encoding", ErrInvalidSignature)
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write(payload)

	// Constant-time comparison on raw bytes
	if !hmac.Equal(expected, mac.Sum(nil)) {
		return ErrInvalidSignature
	}
	return nil
}

// verifyToken checks an "Authorization: Bearer <token>" header value.
func verifyToken(expected, header string) error {
	if expected == "" {
		return ErrNotConfigured
	}
	if !strings.HasPrefix(header, bearerPrefix) {
		return ErrMissingToken
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	if !hmac.Equal([]byte(token), []byte(expected)) {
		return ErrInvalidToken
	}
	return nil
}
