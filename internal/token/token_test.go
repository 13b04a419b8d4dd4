package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestIssueAndParse(t *testing.T) {
	m := NewManager(testSecret)

	signed, expiresAt, err := m.Issue(7, "user")
	require.NoError(t, err)
	require.NotEmpty(t, signed)
	require.WithinDuration(t, time.Now().Add(TTL), expiresAt, 5*time.Second)

	claims, err := m.Parse(signed)
	require.NoError(t, err)
	require.Equal(t, int64(7), claims.ID)
	require.Equal(t, "user", claims.Role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	signed, _, err := NewManager(testSecret).Issue(7, "user")
	require.NoError(t, err)

	_, err = NewManager("other-secret").Parse(signed)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestParseRejectsTamperedToken(t *testing.T) {
	m := NewManager(testSecret)
	signed, _, err := m.Issue(7, "user")
	require.NoError(t, err)

	// Flip a character in the payload segment.
	parts := strings.Split(signed, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = m.Parse(tampered)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	claims := &Claims{
		ID:   7,
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-3 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = NewManager(testSecret).Parse(signed)
	require.ErrorIs(t, err, ErrExpired)
}

func TestParseRejectsMissingID(t *testing.T) {
	claims := &Claims{
		Role: "user",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = NewManager(testSecret).Parse(signed)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestParseRejectsUnsignedToken(t *testing.T) {
	claims := jwt.MapClaims{"id": 7, "role": "admin"}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewManager(testSecret).Parse(signed)
	require.ErrorIs(t, err, ErrInvalid)
}
