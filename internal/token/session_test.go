package token

import (
	"testing"
	"time"

	apperrors "social-network-backend/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerifySession(t *testing.T) {
	t.Parallel()

	m := NewManager("super-secret", time.Hour)
	subjectID := uuid.New()

	tok, err := m.IssueSession(subjectID)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	got, err := m.VerifySession(tok)
	require.NoError(t, err)
	assert.Equal(t, subjectID, got)
}

func TestVerifySession_Expired(t *testing.T) {
	t.Parallel()

	m := NewManager("super-secret", -time.Second)

	tok, err := m.IssueSession(uuid.New())
	require.NoError(t, err)

	_, err = m.VerifySession(tok)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestVerifySession_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewManager("right-secret", time.Hour)
	verifier := NewManager("wrong-secret", time.Hour)

	tok, err := issuer.IssueSession(uuid.New())
	require.NoError(t, err)

	_, err = verifier.VerifySession(tok)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestVerifySession_Malformed(t *testing.T) {
	t.Parallel()

	m := NewManager("k", time.Hour)

	for _, tok := range []string{"", "not.a.jwt", "aaaa.bbbb"} {
		_, err := m.VerifySession(tok)
		assert.ErrorIs(t, err, apperrors.ErrTokenInvalid, "token %q", tok)
	}
}

func TestVerifySession_BadSubject(t *testing.T) {
	t.Parallel()

	// A token signed with the right secret but carrying a non-UUID subject
	// must be rejected rather than resolved to an identity.
	m := NewManager("super-secret", time.Hour)

	claims := jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("super-secret"))
	require.NoError(t, err)

	_, err = m.VerifySession(tok)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}
