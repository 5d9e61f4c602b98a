package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"blogstore/internal/domain/entity"
	"blogstore/internal/infra/db"
	"blogstore/internal/repository"
)

type PostRepo struct{ db db.Querier }

func NewPostRepo(q db.Querier) repository.PostRepository {
	return &PostRepo{db: q}
}

func scanPost(s db.RowScanner) (*entity.Post, error) {
	var post entity.Post
	if err := s.Scan(
		&post.ID, &post.Title, &post.Content, &post.Summary, &post.Category,
		&post.CreatedAt, &post.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &post, nil
}

func (repo *PostRepo) Get(ctx context.Context, id int64) (*entity.Post, error) {
	const query = `
SELECT id, title, content, summary, category, created_at, updated_at
FROM posts
WHERE id = $1
LIMIT 1`
	post, err := scanPost(db.QueryRow(ctx, repo.db, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return post, nil
}

func (repo *PostRepo) List(ctx context.Context) ([]*entity.Post, error) {
	const query = `
SELECT id, title, content, summary, category, created_at, updated_at
FROM posts
ORDER BY id ASC`
	posts, err := repo.query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return posts, nil
}

func (repo *PostRepo) ListByCategory(ctx context.Context, category string) ([]*entity.Post, error) {
	const query = `
SELECT id, title, content, summary, category, created_at, updated_at
FROM posts
WHERE category = $1
ORDER BY id ASC`
	posts, err := repo.query(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("ListByCategory: %w", err)
	}
	return posts, nil
}

func (repo *PostRepo) query(ctx context.Context, query string, args ...interface{}) ([]*entity.Post, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	posts := make([]*entity.Post, 0, 50)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (repo *PostRepo) Create(ctx context.Context, post *entity.Post) error {
	const query = `
INSERT INTO posts (title, content, summary, category)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at, updated_at`
	err := db.QueryRow(ctx, repo.db, query,
		post.Title, post.Content, post.Summary, post.Category,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *PostRepo) Update(ctx context.Context, post *entity.Post) error {
	const query = `
UPDATE posts
SET title = $1,
    content = $2,
    summary = $3,
    category = $4,
    updated_at = now()
WHERE id = $5
RETURNING updated_at`
	err := db.QueryRow(ctx, repo.db, query,
		post.Title, post.Content, post.Summary, post.Category, post.ID,
	).Scan(&post.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("Update: %w", repository.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return nil
}
