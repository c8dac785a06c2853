package auth

import (
	"testing"
	"time"

	"cabby/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Session = config.SessionConfig{Secret: secret, TTL: ttl}

	return cfg
}

func TestCookieSession_IssueAndVerify(t *testing.T) {
	svc, err := NewCookieSession(newTestSessionConfig("test-secret", time.Hour))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.Issue(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestCookieSession_RejectsTamperedToken(t *testing.T) {
	svc, err := NewCookieSession(newTestSessionConfig("test-secret", time.Hour))
	require.NoError(t, err)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.Verify(tampered)
	assert.Error(t, err)
}

func TestCookieSession_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	issuer, err := NewCookieSession(newTestSessionConfig("secret-a", time.Hour))
	require.NoError(t, err)
	verifier, err := NewCookieSession(newTestSessionConfig("secret-b", time.Hour))
	require.NoError(t, err)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestCookieSession_RejectsExpiredToken(t *testing.T) {
	svc, err := NewCookieSession(newTestSessionConfig("test-secret", -time.Minute))
	require.NoError(t, err)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestCookieSession_RequiresSecret(t *testing.T) {
	_, err := NewCookieSession(newTestSessionConfig("", time.Hour))
	assert.Error(t, err)
}
