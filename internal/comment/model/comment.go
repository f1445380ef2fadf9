package model

import (
	"time"

	usermodel "social-network-backend/internal/user/model"

	"github.com/google/uuid"
)

type Comment struct {
	ID     uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	PostID uuid.UUID       `json:"post_id" gorm:"type:uuid;not null;index"`
	UserID uuid.UUID       `json:"user_id" gorm:"type:uuid;not null"`
	User   *usermodel.User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Body   string          `json:"comment" gorm:"column:comment;not null"`

	CreatedAt time.Time `json:"created_at"`
}

type CreateCommentRequest struct {
	Body string `json:"comment"`
}

type CommentResponse struct {
	ID        uuid.UUID         `json:"id"`
	User      *CommenterSummary `json:"user"`
	Body      string            `json:"comment"`
	CreatedAt time.Time         `json:"created_at"`
}

type CommenterSummary struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Image     string    `json:"image"`
}

func (c *Comment) ToResponse() *CommentResponse {
	resp := &CommentResponse{
		ID:        c.ID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
	}

	if c.User != nil {
		resp.User = &CommenterSummary{
			ID:        c.User.ID,
			FirstName: c.User.FirstName,
			LastName:  c.User.LastName,
			Image:     c.User.Image,
		}
	}

	return resp
}
