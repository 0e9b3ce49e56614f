package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticAuthenticator(t *testing.T) {
	authenticator := NewStaticAuthenticator("admin", "secret-pass", "signing-key", 60)

	t.Run("valid credentials", func(t *testing.T) {
		session, err := authenticator.Authenticate(Credentials{Username: "admin", Password: "secret-pass"})
		require.NoError(t, err)
		assert.NotEmpty(t, session.Token)
		assert.True(t, session.ExpiresAt.After(time.Now()))

		subject, err := VerifyToken("signing-key", session.Token)
		require.NoError(t, err)
		assert.Equal(t, "admin", subject)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := authenticator.Authenticate(Credentials{Username: "admin", Password: "wrong"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong username", func(t *testing.T) {
		_, err := authenticator.Authenticate(Credentials{Username: "root", Password: "secret-pass"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestVerifyToken(t *testing.T) {
	authenticator := NewStaticAuthenticator("admin", "secret-pass", "signing-key", 60)

	session, err := authenticator.Authenticate(Credentials{Username: "admin", Password: "secret-pass"})
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := VerifyToken("other-key", session.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := VerifyToken("signing-key", "not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewStaticAuthenticator("admin", "secret-pass", "signing-key", -1)
		session, err := expired.Authenticate(Credentials{Username: "admin", Password: "secret-pass"})
		require.NoError(t, err)

		_, err = VerifyToken("signing-key", session.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
