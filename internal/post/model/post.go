package model

import (
	"time"

	commentmodel "social-network-backend/internal/comment/model"
	usermodel "social-network-backend/internal/user/model"

	"github.com/google/uuid"
)

type Post struct {
	ID          uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index"`
	User        *usermodel.User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Image       string          `json:"image"`
	Description string          `json:"description" gorm:"not null"`
	Likes       int             `json:"likes" gorm:"not null;default:0"`

	Comments []*commentmodel.Comment `json:"comments,omitempty" gorm:"foreignKey:PostID"`

	CreatedAt time.Time `json:"created_at"`
}

type CreatePostRequest struct {
	Description string `json:"description"`
	Image       string `json:"image"`
}

// PostResponse renders a post with its author reduced to display fields.
type PostResponse struct {
	ID          uuid.UUID                       `json:"id"`
	User        *AuthorSummary                  `json:"user"`
	Image       string                          `json:"image"`
	Description string                          `json:"description"`
	Likes       int                             `json:"likes"`
	Comments    []*commentmodel.CommentResponse `json:"comments"`
	CreatedAt   time.Time                       `json:"created_at"`
}

type AuthorSummary struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Image     string    `json:"image"`
}

func (p *Post) ToResponse() *PostResponse {
	resp := &PostResponse{
		ID:          p.ID,
		Image:       p.Image,
		Description: p.Description,
		Likes:       p.Likes,
		Comments:    make([]*commentmodel.CommentResponse, 0, len(p.Comments)),
		CreatedAt:   p.CreatedAt,
	}

	if p.User != nil {
		resp.User = &AuthorSummary{
			ID:        p.User.ID,
			FirstName: p.User.FirstName,
			LastName:  p.User.LastName,
			Image:     p.User.Image,
		}
	}

	for _, c := range p.Comments {
		resp.Comments = append(resp.Comments, c.ToResponse())
	}

	return resp
}
