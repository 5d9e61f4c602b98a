package repository

import (
	"context"

	"blogstore/internal/domain/entity"
)

// PostRepository persists posts with the same conventions as AuthorRepository.
type PostRepository interface {
	Get(ctx context.Context, id int64) (*entity.Post, error)
	List(ctx context.Context) ([]*entity.Post, error)
	ListByCategory(ctx context.Context, category string) ([]*entity.Post, error)
	Create(ctx context.Context, post *entity.Post) error
	Update(ctx context.Context, post *entity.Post) error
}
