package service

import (
	"context"
	"strings"

	"social-network-backend/internal/post/model"
	apperrors "social-network-backend/pkg/errors"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, postID uuid.UUID) (*model.Post, error)
	GetAll(ctx context.Context) ([]*model.Post, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]*model.Post, error)
	IncrementLikes(ctx context.Context, postID uuid.UUID) error
}

type PostService struct {
	repo Repository
}

func NewService(repo Repository) *PostService {
	return &PostService{repo: repo}
}

func (s *PostService) Create(ctx context.Context, userID uuid.UUID, request *model.CreatePostRequest) (*model.PostResponse, error) {
	if strings.TrimSpace(request.Description) == "" {
		return nil, apperrors.Validation("a post needs a text input", nil)
	}

	post := &model.Post{
		UserID:      userID,
		Description: request.Description,
		Image:       request.Image,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	created, err := s.repo.GetByID(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	return created.ToResponse(), nil
}

func (s *PostService) List(ctx context.Context) ([]*model.PostResponse, error) {
	posts, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return toResponses(posts), nil
}

func (s *PostService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.PostResponse, error) {
	posts, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return toResponses(posts), nil
}

// Like bumps the like counter and returns the updated post.
func (s *PostService) Like(ctx context.Context, postID uuid.UUID) (*model.PostResponse, error) {
	if err := s.repo.IncrementLikes(ctx, postID); err != nil {
		return nil, err
	}

	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return post.ToResponse(), nil
}

func toResponses(posts []*model.Post) []*model.PostResponse {
	responses := make([]*model.PostResponse, len(posts))
	for i, p := range posts {
		responses[i] = p.ToResponse()
	}
	return responses
}
