// Package repository declares the storage interfaces the use cases depend on.
package repository

import (
	"context"

	"blogstore/internal/domain/entity"
)

// AuthorRepository persists authors.
// Get and GetByName return (nil, nil) when nothing matches.
// Create assigns ID, CreatedAt and UpdatedAt; Update refreshes UpdatedAt.
// Both return ErrDuplicate when the name is already taken.
type AuthorRepository interface {
	Get(ctx context.Context, id int64) (*entity.Author, error)
	GetByName(ctx context.Context, name string) (*entity.Author, error)
	List(ctx context.Context) ([]*entity.Author, error)
	Create(ctx context.Context, author *entity.Author) error
	Update(ctx context.Context, author *entity.Author) error
}
