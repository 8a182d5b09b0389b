package pasetotoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := New(Config{
		Mode:       ModeLocal,
		Issuer:     "praxis-test",
		Audience:   "praxis-api",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	}, NewLocalKeys())
	require.NoError(t, err)
	return m
}

func TestIssueAndVerifyAccess(t *testing.T) {
	m := newTestManager(t)

	uid := uuid.New()
	sid := uuid.New()

	tok, err := m.IssueAccess(Identity{UserID: uid, SessionID: &sid, Role: "therapist"})
	require.NoError(t, err)

	claims, err := m.Verify(tok)
	require.NoError(t, err)

	assert.Equal(t, TokenTypeAccess, claims.Type)
	assert.Equal(t, uid, claims.UserID)
	require.NotNil(t, claims.SessionID)
	assert.Equal(t, sid, *claims.SessionID)
	assert.Equal(t, "therapist", claims.Role)
	assert.False(t, claims.IsExpired())
}

// Tokens are issued over the whole lifetime of the process, long after the
// manager was constructed. The parser must judge validity at verification
// time, not at construction time.
func TestVerifyAcceptsTokenIssuedAfterConstruction(t *testing.T) {
	m := newTestManager(t)

	time.Sleep(2 * time.Second)

	tok, err := m.IssueAccess(Identity{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = m.Verify(tok)
	require.NoError(t, err)
}

func TestRefreshTokenCarriesType(t *testing.T) {
	m := newTestManager(t)

	tok, err := m.IssueRefresh(Identity{UserID: uuid.New()})
	require.NoError(t, err)

	claims, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.Type)
	assert.Nil(t, claims.SessionID)
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	issuer := newTestManager(t)
	verifier := newTestManager(t) // different symmetric key

	tok, err := issuer.IssueAccess(Identity{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	require.Error(t, err)
	assert.ErrorAs(t, err, &ErrInvalidToken{})
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := newTestManager(t)
	_, err := m.Verify("v4.local.not-a-real-token")
	require.Error(t, err)
}

func TestNewRejectsModeMismatch(t *testing.T) {
	_, err := New(Config{
		Mode:     ModePublic,
		Issuer:   "praxis-test",
		Audience: "praxis-api",
	}, NewLocalKeys())
	require.Error(t, err)
}
