package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 30*time.Minute)

	token, err := issuer.Issue("alice@example.com", "alice")
	require.NoError(t, err)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", claims.Subject)
	require.Equal(t, "alice", claims.Username)
}

func TestTokenExpires(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 30*time.Minute)
	start := time.Now()
	issuer.nowFunc = func() time.Time { return start }

	token, err := issuer.Issue("alice@example.com", "alice")
	require.NoError(t, err)

	issuer.nowFunc = func() time.Time { return start.Add(29 * time.Minute) }
	_, err = issuer.Verify(token)
	require.NoError(t, err)

	issuer.nowFunc = func() time.Time { return start.Add(31 * time.Minute) }
	_, err = issuer.Verify(token)
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestTokenTampered(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 30*time.Minute)

	token, err := issuer.Issue("alice@example.com", "alice")
	require.NoError(t, err)

	_, err = issuer.Verify(token + "x")
	require.ErrorIs(t, err, ErrUnauthenticated)

	_, err = issuer.Verify("not-a-token")
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 30*time.Minute)
	other := NewTokenIssuer("other-secret", 30*time.Minute)

	token, err := other.Issue("alice@example.com", "alice")
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	require.ErrorIs(t, err, ErrUnauthenticated)
}
