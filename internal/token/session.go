package token

import (
	"errors"
	"time"

	apperrors "social-network-backend/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Manager issues and verifies session tokens. The signing secret and
// expiry are fixed at construction time.
type Manager struct {
	secret     []byte
	sessionTTL time.Duration
}

func NewManager(secret string, sessionTTL time.Duration) *Manager {
	return &Manager{
		secret:     []byte(secret),
		sessionTTL: sessionTTL,
	}
}

func (m *Manager) SessionTTL() time.Duration {
	return m.sessionTTL
}

// IssueSession signs a JWT binding the subject id with the configured expiry.
func (m *Manager) IssueSession(subjectID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subjectID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.sessionTTL)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// VerifySession returns the subject id carried by a valid token. Expired
// tokens surface as ErrTokenExpired, everything else wrong with the token
// (bad signature, malformed payload, unexpected algorithm) as ErrTokenInvalid.
func (m *Manager) VerifySession(tokenString string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrTokenInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, apperrors.ErrTokenExpired
		}
		return uuid.Nil, apperrors.ErrTokenInvalid
	}

	if !token.Valid {
		return uuid.Nil, apperrors.ErrTokenInvalid
	}

	subjectID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, apperrors.ErrTokenInvalid
	}

	return subjectID, nil
}
