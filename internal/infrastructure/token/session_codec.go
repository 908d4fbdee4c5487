package token

import (
	"fmt"
	"time"

	"storefront-gateway/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// CodecConfig holds session cookie signing configuration.
type CodecConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// sessionClaims is the signed cookie artifact. The claim names mirror the
// session contract: sub carries the user id, tokenRes the opaque upstream
// token and userRes the mirrored profile.
type sessionClaims struct {
	TokenRes string      `json:"tokenRes"`
	UserRes  domain.User `json:"userRes"`
	jwt.RegisteredClaims
}

// SessionCodec signs and decodes session cookies.
// Implements domain.SessionCodec.
type SessionCodec struct {
	cfg CodecConfig
}

// NewSessionCodec creates a new session codec. The signing secret must be
// at least 32 bytes.
func NewSessionCodec(cfg CodecConfig) (*SessionCodec, error) {
	if len(cfg.Secret) < 32 {
		return nil, domain.ErrSessionSecretWeak
	}
	return &SessionCodec{cfg: cfg}, nil
}

// Issue signs a session into a cookie value. Re-issuing for the same
// verified user yields an equivalent record modulo timestamps.
func (c *SessionCodec) Issue(session *domain.Session) (string, error) {
	if !session.Authenticated() {
		return "", domain.ErrUnauthenticated
	}

	now := time.Now()
	claims := sessionClaims{
		TokenRes: session.Token,
		UserRes:  session.User,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.cfg.Issuer,
			Subject:   session.User.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.cfg.TTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(c.cfg.Secret))
}

// Decode verifies a cookie value and projects it back into a session.
// It exposes only the user profile and the opaque token.
func (c *SessionCodec) Decode(cookie string) (*domain.Session, error) {
	parsed, err := jwt.ParseWithClaims(cookie, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(c.cfg.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSessionInvalid, err)
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return nil, domain.ErrSessionInvalid
	}
	if claims.TokenRes == "" {
		return nil, fmt.Errorf("%w: missing upstream token", domain.ErrSessionInvalid)
	}

	user := claims.UserRes
	if user.ID == "" {
		user.ID = claims.Subject
	}

	return &domain.Session{User: user, Token: claims.TokenRes}, nil
}
