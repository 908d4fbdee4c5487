package token

import (
	"errors"
	"testing"
	"time"

	"storefront-gateway/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-session-secret-of-32-bytes!"

func testCodec(t *testing.T, ttl time.Duration) *SessionCodec {
	t.Helper()
	codec, err := NewSessionCodec(CodecConfig{
		Secret: testSecret,
		Issuer: "storefront-gateway",
		TTL:    ttl,
	})
	require.NoError(t, err)
	return codec
}

func testSession() *domain.Session {
	return &domain.Session{
		User:  domain.User{ID: "u1", Name: "A", Email: "user@test.com", Role: "user"},
		Token: "tok123",
	}
}

func TestNewSessionCodec_WeakSecret(t *testing.T) {
	codec, err := NewSessionCodec(CodecConfig{Secret: "short", TTL: time.Hour})

	assert.Nil(t, codec)
	assert.True(t, errors.Is(err, domain.ErrSessionSecretWeak))
}

func TestSessionCodec_RoundTrip(t *testing.T) {
	codec := testCodec(t, time.Hour)

	cookie, err := codec.Issue(testSession())
	require.NoError(t, err)
	require.NotEmpty(t, cookie)

	decoded, err := codec.Decode(cookie)
	require.NoError(t, err)
	assert.Equal(t, "u1", decoded.User.ID)
	assert.Equal(t, "A", decoded.User.Name)
	assert.Equal(t, "user@test.com", decoded.User.Email)
	assert.Equal(t, "user", decoded.User.Role)
	assert.Equal(t, "tok123", decoded.Token)
}

func TestSessionCodec_IssueIsIdempotent(t *testing.T) {
	codec := testCodec(t, time.Hour)

	first, err := codec.Issue(testSession())
	require.NoError(t, err)
	second, err := codec.Issue(testSession())
	require.NoError(t, err)

	decodedFirst, err := codec.Decode(first)
	require.NoError(t, err)
	decodedSecond, err := codec.Decode(second)
	require.NoError(t, err)
	assert.Equal(t, decodedFirst, decodedSecond)
}

func TestSessionCodec_IssueWithoutToken(t *testing.T) {
	codec := testCodec(t, time.Hour)

	cookie, err := codec.Issue(&domain.Session{User: domain.User{ID: "u1"}})

	assert.Empty(t, cookie)
	assert.True(t, errors.Is(err, domain.ErrUnauthenticated))
}

func TestSessionCodec_DecodeTamperedCookie(t *testing.T) {
	codec := testCodec(t, time.Hour)

	cookie, err := codec.Issue(testSession())
	require.NoError(t, err)

	decoded, err := codec.Decode(cookie + "x")
	assert.Nil(t, decoded)
	assert.True(t, errors.Is(err, domain.ErrSessionInvalid))
}

func TestSessionCodec_DecodeWrongSecret(t *testing.T) {
	codec := testCodec(t, time.Hour)
	other, err := NewSessionCodec(CodecConfig{
		Secret: "another-session-secret-32-bytes!",
		TTL:    time.Hour,
	})
	require.NoError(t, err)

	cookie, err := codec.Issue(testSession())
	require.NoError(t, err)

	decoded, err := other.Decode(cookie)
	assert.Nil(t, decoded)
	assert.True(t, errors.Is(err, domain.ErrSessionInvalid))
}

func TestSessionCodec_DecodeExpired(t *testing.T) {
	codec := testCodec(t, -time.Minute)

	cookie, err := codec.Issue(testSession())
	require.NoError(t, err)

	decoded, err := codec.Decode(cookie)
	assert.Nil(t, decoded)
	assert.True(t, errors.Is(err, domain.ErrSessionInvalid))
}

func TestSessionCodec_DecodeGarbage(t *testing.T) {
	codec := testCodec(t, time.Hour)

	decoded, err := codec.Decode("not-a-jwt")
	assert.Nil(t, decoded)
	assert.True(t, errors.Is(err, domain.ErrSessionInvalid))
}
