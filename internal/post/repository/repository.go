package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"social-network-backend/internal/database"
	"social-network-backend/internal/post/model"
	apperrors "social-network-backend/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostRepository struct {
	db *database.Database
}

func NewRepository(db *database.Database) *PostRepository {
	return &PostRepository{db: db}
}

func authorFields(db *gorm.DB) *gorm.DB {
	return db.Select("id", "first_name", "last_name", "image")
}

func (r *PostRepository) withAssociations(ctx context.Context) *gorm.DB {
	return r.db.DB.WithContext(ctx).
		Preload("User", authorFields).
		Preload("Comments").
		Preload("Comments.User", authorFields)
}

func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	post.ID = uuid.New()
	post.CreatedAt = time.Now()

	if err := r.db.DB.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, postID uuid.UUID) (*model.Post, error) {
	var post model.Post
	err := r.withAssociations(ctx).First(&post, "id = ?", postID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &post, nil
}

func (r *PostRepository) GetAll(ctx context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	err := r.withAssociations(ctx).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]*model.Post, error) {
	var posts []*model.Post
	err := r.withAssociations(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list user posts: %w", err)
	}
	return posts, nil
}

// IncrementLikes bumps the like counter atomically in the store; the
// updated post is re-read afterwards.
func (r *PostRepository) IncrementLikes(ctx context.Context, postID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", postID).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1))

	if result.Error != nil {
		return fmt.Errorf("failed to like post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrPostNotFound
	}
	return nil
}
