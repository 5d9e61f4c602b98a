// Package sqlite implements the repository interfaces on SQLite through
// modernc.org/sqlite. Timestamps are stored as unix milliseconds.
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

type AuthorRepo struct{ db db.Querier }

func NewAuthorRepo(q db.Querier) repository.AuthorRepository {
	return &AuthorRepo{db: q}
}

func scanAuthor(s db.RowScanner) (*entity.Author, error) {
	var author entity.Author
	var createdAt, updatedAt int64
	if err := s.Scan(
		&author.ID, &author.Name, &author.PhoneNumber, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	author.CreatedAt = fromMillis(createdAt)
	author.UpdatedAt = fromMillis(updatedAt)
	return &author, nil
}

func (repo *AuthorRepo) Get(ctx context.Context, id int64) (*entity.Author, error) {
	const query = `
SELECT id, name, phone_number, created_at, updated_at
FROM authors
WHERE id = ?
LIMIT 1`
	author, err := scanAuthor(db.QueryRow(ctx, repo.db, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: QueryRow: %w", err)
	}
	return author, nil
}

func (repo *AuthorRepo) GetByName(ctx context.Context, name string) (*entity.Author, error) {
	const query = `
SELECT id, name, phone_number, created_at, updated_at
FROM authors
WHERE name = ?
LIMIT 1`
	author, err := scanAuthor(db.QueryRow(ctx, repo.db, query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByName: QueryRow: %w", err)
	}
	return author, nil
}

func (repo *AuthorRepo) List(ctx context.Context) ([]*entity.Author, error) {
	const query = `
SELECT
    id,
    name,
    phone_number,
    created_at,
    updated_at
FROM authors
ORDER BY id ASC
`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	authors := make([]*entity.Author, 0, 50)
	for rows.Next() {
		author, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		authors = append(authors, author)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: rows.Err: %w", err)
	}

	return authors, nil
}

func (repo *AuthorRepo) Create(ctx context.Context, author *entity.Author) error {
	const query = `
INSERT INTO authors (name, phone_number, created_at, updated_at)
VALUES (?, ?, ?, ?)`
	now := toMillis(time.Now())
	res, err := repo.db.ExecContext(ctx, query, author.Name, author.PhoneNumber, now, now)
	if IsUniqueViolation(err) {
		return fmt.Errorf("Create: %w", repository.ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("Create: ExecContext: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}
	author.ID = id
	author.CreatedAt = fromMillis(now)
	author.UpdatedAt = author.CreatedAt
	return nil
}

func (repo *AuthorRepo) Update(ctx context.Context, author *entity.Author) error {
	const query = `
UPDATE authors
SET name = ?,
    phone_number = ?,
    updated_at = ?
WHERE id = ?`
	now := toMillis(time.Now())
	res, err := repo.db.ExecContext(ctx, query, author.Name, author.PhoneNumber, now, author.ID)
	if IsUniqueViolation(err) {
		return fmt.Errorf("Update: %w", repository.ErrDuplicate)
	}
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
	author.UpdatedAt = fromMillis(now)
	return nil
}
