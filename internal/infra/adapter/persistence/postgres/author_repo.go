// Package postgres implements the repository interfaces on PostgreSQL through pgx.
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

type AuthorRepo struct{ db db.Querier }

func NewAuthorRepo(q db.Querier) repository.AuthorRepository {
	return &AuthorRepo{db: q}
}

func scanAuthor(s db.RowScanner) (*entity.Author, error) {
	var author entity.Author
	if err := s.Scan(
		&author.ID, &author.Name, &author.PhoneNumber, &author.CreatedAt, &author.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &author, nil
}

func (repo *AuthorRepo) Get(ctx context.Context, id int64) (*entity.Author, error) {
	const query = `
SELECT id, name, phone_number, created_at, updated_at
FROM authors
WHERE id = $1
LIMIT 1`
	author, err := scanAuthor(db.QueryRow(ctx, repo.db, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return author, nil
}

func (repo *AuthorRepo) GetByName(ctx context.Context, name string) (*entity.Author, error) {
	const query = `
SELECT id, name, phone_number, created_at, updated_at
FROM authors
WHERE name = $1
LIMIT 1`
	author, err := scanAuthor(db.QueryRow(ctx, repo.db, query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByName: %w", err)
	}
	return author, nil
}

func (repo *AuthorRepo) List(ctx context.Context) ([]*entity.Author, error) {
	const query = `
SELECT id, name, phone_number, created_at, updated_at
FROM authors
ORDER BY id ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	authors := make([]*entity.Author, 0, 50)
	for rows.Next() {
		author, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("List: %w", err)
		}
		authors = append(authors, author)
	}
	return authors, rows.Err()
}

func (repo *AuthorRepo) Create(ctx context.Context, author *entity.Author) error {
	const query = `
INSERT INTO authors (name, phone_number)
VALUES ($1, $2)
RETURNING id, created_at, updated_at`
	err := db.QueryRow(ctx, repo.db, query, author.Name, author.PhoneNumber).
		Scan(&author.ID, &author.CreatedAt, &author.UpdatedAt)
	if IsUniqueViolation(err) {
		return fmt.Errorf("Create: %w", repository.ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *AuthorRepo) Update(ctx context.Context, author *entity.Author) error {
	const query = `
UPDATE authors
SET name = $1,
    phone_number = $2,
    updated_at = now()
WHERE id = $3
RETURNING updated_at`
	err := db.QueryRow(ctx, repo.db, query, author.Name, author.PhoneNumber, author.ID).
		Scan(&author.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("Update: %w", repository.ErrNotFound)
	}
	if IsUniqueViolation(err) {
		return fmt.Errorf("Update: %w", repository.ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return nil
}
