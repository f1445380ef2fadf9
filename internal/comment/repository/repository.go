package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"social-network-backend/internal/comment/model"
	"social-network-backend/internal/database"
	apperrors "social-network-backend/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentRepository struct {
	db *database.Database
}

func NewRepository(db *database.Database) *CommentRepository {
	return &CommentRepository{db: db}
}

func commenterFields(db *gorm.DB) *gorm.DB {
	return db.Select("id", "first_name", "last_name", "image")
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	comment.ID = uuid.New()
	comment.CreatedAt = time.Now()

	if err := r.db.DB.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, commentID uuid.UUID) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.DB.WithContext(ctx).
		Preload("User", commenterFields).
		First(&comment, "id = ?", commentID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return &comment, nil
}

func (r *CommentRepository) GetForPost(ctx context.Context, postID uuid.UUID) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.db.DB.WithContext(ctx).
		Preload("User", commenterFields).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}
