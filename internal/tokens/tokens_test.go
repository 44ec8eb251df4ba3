package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-jwt-secret")

func TestIssueAndParse_RoundTrip(t *testing.T) {
	token, err := Issue("alice@test.com", testSecret, 0)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := Parse(token, testSecret)
	require.NoError(t, err)
	require.Equal(t, "alice@test.com", subject)
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := Issue("alice@test.com", testSecret, 0)
	require.NoError(t, err)

	_, err = Parse(token, []byte("rotated-away-secret"))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Malformed(t *testing.T) {
	for _, bad := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := Parse(bad, testSecret)
		require.ErrorIs(t, err, ErrInvalidToken, "input %q", bad)
	}
}

func TestParse_TruncatedToken(t *testing.T) {
	token, err := Issue("alice@test.com", testSecret, 0)
	require.NoError(t, err)

	_, err = Parse(token[:len(token)-1], testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_MissingSubject(t *testing.T) {
	token, err := Issue("", testSecret, 0)
	require.NoError(t, err)

	_, err = Parse(token, testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_UnexpectedSigningMethod(t *testing.T) {
	claims := jwt.RegisteredClaims{Subject: "alice@test.com"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = Parse(token, testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_ExpiredToken(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "alice@test.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = Parse(token, testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssue_NoExpiryByDefault(t *testing.T) {
	token, err := Issue("alice@test.com", testSecret, 0)
	require.NoError(t, err)

	var claims Claims
	_, err = jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) { return testSecret, nil })
	require.NoError(t, err)
	require.Nil(t, claims.ExpiresAt)
}

func TestIssue_WithTTL(t *testing.T) {
	token, err := Issue("alice@test.com", testSecret, time.Hour)
	require.NoError(t, err)

	var claims Claims
	_, err = jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) { return testSecret, nil })
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}
