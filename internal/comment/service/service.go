package service

import (
	"context"
	"strings"

	"social-network-backend/internal/comment/model"
	postmodel "social-network-backend/internal/post/model"
	apperrors "social-network-backend/pkg/errors"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, commentID uuid.UUID) (*model.Comment, error)
	GetForPost(ctx context.Context, postID uuid.UUID) ([]*model.Comment, error)
}

// PostFinder checks that the commented post exists.
type PostFinder interface {
	GetByID(ctx context.Context, postID uuid.UUID) (*postmodel.Post, error)
}

type CommentService struct {
	repo  Repository
	posts PostFinder
}

func NewService(repo Repository, posts PostFinder) *CommentService {
	return &CommentService{repo: repo, posts: posts}
}

func (s *CommentService) ListForPost(ctx context.Context, postID uuid.UUID) ([]*model.CommentResponse, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := s.repo.GetForPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	responses := make([]*model.CommentResponse, len(comments))
	for i, c := range comments {
		responses[i] = c.ToResponse()
	}
	return responses, nil
}

func (s *CommentService) Create(ctx context.Context, userID, postID uuid.UUID, request *model.CreateCommentRequest) (*model.CommentResponse, error) {
	if strings.TrimSpace(request.Body) == "" {
		return nil, apperrors.Validation("please leave a comment", nil)
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		PostID: postID,
		UserID: userID,
		Body:   request.Body,
	}

	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	created, err := s.repo.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, err
	}
	return created.ToResponse(), nil
}
