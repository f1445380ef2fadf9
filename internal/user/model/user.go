package model

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record. The password hash and single-use token
// fields are never serialized into responses.
type User struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	FirstName  string    `json:"first_name" gorm:"not null"`
	LastName   string    `json:"last_name" gorm:"not null"`
	Email      string    `json:"email" gorm:"uniqueIndex;not null"`
	Password   string    `json:"-" gorm:"not null"`
	Image      string    `json:"image" gorm:"not null"`
	Location   string    `json:"location" gorm:"not null"`
	Occupation string    `json:"occupation"`

	Friends []*User `json:"friends,omitempty" gorm:"many2many:user_friends"`

	// Active is false until the account is verified. Only active
	// identities may authenticate.
	Active bool `json:"active"`

	// ActivationString exists only while the account is unverified and is
	// cleared on successful verification. Stored in plaintext.
	ActivationString *string `json:"-"`

	// PasswordResetToken holds the sha256 hash of an outstanding reset
	// token; the plaintext only ever travels by email. Both reset fields
	// exist only during an open reset window.
	PasswordResetToken   *string    `json:"-"`
	PasswordResetExpires *time.Time `json:"-"`

	// ChangedPasswordAt is set whenever the password is modified after
	// creation, never on initial sign-up.
	ChangedPasswordAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FriendSummary is the reduced shape friends are rendered with when an
// identity is fetched.
type FriendSummary struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Image      string    `json:"image"`
	Location   string    `json:"location"`
	Occupation string    `json:"occupation"`
}

func (u *User) HasFriend(friendID uuid.UUID) bool {
	for _, f := range u.Friends {
		if f.ID == friendID {
			return true
		}
	}
	return false
}
