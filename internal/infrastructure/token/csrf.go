package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"

	"storefront-gateway/internal/domain"
)

// HMACCSRFGenerator generates CSRF tokens using HMAC-SHA256 bound to the
// authenticated user id. Implements domain.CSRFTokenGenerator.
type HMACCSRFGenerator struct {
	secret []byte
}

// NewHMACCSRFGenerator creates a new CSRF token generator.
func NewHMACCSRFGenerator(secret string) *HMACCSRFGenerator {
	return &HMACCSRFGenerator{secret: []byte(secret)}
}

// Generate creates a deterministic CSRF token for a user id.
func (g *HMACCSRFGenerator) Generate(userID string) (string, error) {
	if len(g.secret) == 0 {
		return "", domain.ErrCSRFSecretMissing
	}

	mac := hmac.New(sha256.New, g.secret)
	mac.Write([]byte(userID))
	return base64.URLEncoding.EncodeToString(mac.Sum(nil)), nil
}

// Verify checks a presented token against the expected value for userID
// in constant time.
func (g *HMACCSRFGenerator) Verify(userID, presented string) error {
	expected, err := g.Generate(userID)
	if err != nil {
		return err
	}
	if !hmac.Equal([]byte(expected), []byte(presented)) {
		return domain.ErrCSRFInvalid
	}
	return nil
}
