package model

import (
	"time"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID         uuid.UUID        `json:"id"`
	FirstName  string           `json:"first_name"`
	LastName   string           `json:"last_name"`
	Email      string           `json:"email"`
	Image      string           `json:"image"`
	Location   string           `json:"location"`
	Occupation string           `json:"occupation"`
	Friends    []*FriendSummary `json:"friends"`
	Active     bool             `json:"active"`
	CreatedAt  time.Time        `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	friends := make([]*FriendSummary, 0, len(u.Friends))
	for _, f := range u.Friends {
		friends = append(friends, &FriendSummary{
			ID:         f.ID,
			FirstName:  f.FirstName,
			LastName:   f.LastName,
			Image:      f.Image,
			Location:   f.Location,
			Occupation: f.Occupation,
		})
	}

	return &UserResponse{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		Image:      u.Image,
		Location:   u.Location,
		Occupation: u.Occupation,
		Friends:    friends,
		Active:     u.Active,
		CreatedAt:  u.CreatedAt,
	}
}
