package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

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
	var createdAt, updatedAt int64
	if err := s.Scan(
		&post.ID, &post.Title, &post.Content, &post.Summary, &post.Category,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	post.CreatedAt = fromMillis(createdAt)
	post.UpdatedAt = fromMillis(updatedAt)
	return &post, nil
}

func (repo *PostRepo) Get(ctx context.Context, id int64) (*entity.Post, error) {
	const query = `
SELECT id, title, content, summary, category, created_at, updated_at
FROM posts
WHERE id = ?
LIMIT 1`
	post, err := scanPost(db.QueryRow(ctx, repo.db, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: QueryRow: %w", err)
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
WHERE category = ?
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
		return nil, fmt.Errorf("QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	posts := make([]*entity.Post, 0, 50)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("Scan: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}
	return posts, nil
}

func (repo *PostRepo) Create(ctx context.Context, post *entity.Post) error {
	const query = `
INSERT INTO posts (title, content, summary, category, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`
	now := toMillis(time.Now())
	res, err := repo.db.ExecContext(ctx, query,
		post.Title, post.Content, post.Summary, post.Category, now, now)
	if err != nil {
		return fmt.Errorf("Create: ExecContext: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}
	post.ID = id
	post.CreatedAt = fromMillis(now)
	post.UpdatedAt = post.CreatedAt
	return nil
}

func (repo *PostRepo) Update(ctx context.Context, post *entity.Post) error {
	const query = `
UPDATE posts
SET title = ?,
    content = ?,
    summary = ?,
    category = ?,
    updated_at = ?
WHERE id = ?`
	now := toMillis(time.Now())
	res, err := repo.db.ExecContext(ctx, query,
		post.Title, post.Content, post.Summary, post.Category, now, post.ID)
	if err != nil {
		return fmt.Errorf("Update: ExecContext: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: RowsAffected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("Update: %w", repository.ErrNotFound)
	}
	post.UpdatedAt = fromMillis(now)
	return nil
}
