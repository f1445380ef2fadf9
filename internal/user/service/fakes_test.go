package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"social-network-backend/internal/user/model"
	apperrors "social-network-backend/pkg/errors"

	"github.com/google/uuid"
)

// fakeRepo is an in-memory credential store used by the lifecycle tests.
type fakeRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*model.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[uuid.UUID]*model.User)}
}

func (f *fakeRepo) clone(u *model.User) *model.User {
	c := *u
	c.Friends = append([]*model.User(nil), u.Friends...)
	return &c
}

func (f *fakeRepo) Create(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	email := strings.ToLower(user.Email)
	for _, u := range f.users {
		if u.Email == email {
			return apperrors.ErrEmailTaken
		}
	}

	user.ID = uuid.New()
	user.Email = email
	user.CreatedAt = time.Now()
	f.users[user.ID] = f.clone(user)
	return nil
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string, withPassword bool) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Email == strings.ToLower(email) {
			c := f.clone(u)
			if !withPassword {
				c.Password = ""
			}
			return c, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeRepo) GetByID(_ context.Context, userID uuid.UUID) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[userID]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return f.clone(u), nil
}

func (f *fakeRepo) GetByActivationString(_ context.Context, activationString string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if !u.Active && u.ActivationString != nil && *u.ActivationString == activationString {
			return f.clone(u), nil
		}
	}
	return nil, apperrors.ErrActivationNotFound
}

func (f *fakeRepo) GetByResetTokenHash(_ context.Context, tokenHash string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.PasswordResetToken != nil && *u.PasswordResetToken == tokenHash {
			return f.clone(u), nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeRepo) GetAll(_ context.Context) ([]*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	users := make([]*model.User, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, f.clone(u))
	}
	return users, nil
}

func (f *fakeRepo) UpdateProfile(_ context.Context, userID uuid.UUID, fields map[string]interface{}) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[userID]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}

	if email, ok := fields["email"].(string); ok {
		email = strings.ToLower(email)
		for id, other := range f.users {
			if id != userID && other.Email == email {
				return nil, apperrors.ErrEmailTaken
			}
		}
		u.Email = email
	}
	if v, ok := fields["first_name"].(string); ok {
		u.FirstName = v
	}
	if v, ok := fields["last_name"].(string); ok {
		u.LastName = v
	}
	if v, ok := fields["image"].(string); ok {
		u.Image = v
	}
	if v, ok := fields["location"].(string); ok {
		u.Location = v
	}
	if v, ok := fields["occupation"].(string); ok {
		u.Occupation = v
	}
	return f.clone(u), nil
}

func (f *fakeRepo) Activate(_ context.Context, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.Active = true
	u.ActivationString = nil
	return nil
}

func (f *fakeRepo) SetResetToken(_ context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.PasswordResetToken = &tokenHash
	u.PasswordResetExpires = &expiresAt
	return nil
}

func (f *fakeRepo) ClearResetToken(_ context.Context, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.PasswordResetToken = nil
	u.PasswordResetExpires = nil
	return nil
}

func (f *fakeRepo) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string, changedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.Password = passwordHash
	u.ChangedPasswordAt = &changedAt
	u.PasswordResetToken = nil
	u.PasswordResetExpires = nil
	return nil
}

func (f *fakeRepo) AddFriend(_ context.Context, userID, friendID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	friend, ok := f.users[friendID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.Friends = append(u.Friends, friend)
	return nil
}

func (f *fakeRepo) RemoveFriend(_ context.Context, userID, friendID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}

	friends := u.Friends[:0]
	for _, fr := range u.Friends {
		if fr.ID != friendID {
			friends = append(friends, fr)
		}
	}
	u.Friends = friends
	return nil
}

// setExpiry rewrites the reset window directly, for expiry tests.
func (f *fakeRepo) setExpiry(userID uuid.UUID, at time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[userID].PasswordResetExpires = &at
}

func (f *fakeRepo) stored(userID uuid.UUID) *model.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.clone(f.users[userID])
}

// fakeMailer records sent messages and can be told to fail.
type fakeMailer struct {
	mu       sync.Mutex
	sent     []sentMail
	failWith error
}

type sentMail struct {
	to      string
	subject string
	body    string
}

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return f.failWith
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func (f *fakeMailer) lastSent() (sentMail, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.sent) == 0 {
		return sentMail{}, false
	}
	return f.sent[len(f.sent)-1], true
}

var errSMTPDown = errors.New("smtp relay unreachable")
