package author

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"blogstore/internal/domain/entity"
	"blogstore/internal/observability/logging"
	"blogstore/internal/observability/metrics"
	"blogstore/internal/observability/tracing"
	"blogstore/internal/repository"
)

// CreateInput represents the input parameters for creating a new author.
type CreateInput struct {
	Name        string
	PhoneNumber *string
}

// UpdateInput represents the input parameters for updating an existing author.
// nil fields are left unchanged. ClearPhone removes the phone number and
// takes precedence over PhoneNumber.
type UpdateInput struct {
	ID          int64
	Name        *string
	PhoneNumber *string
	ClearPhone  bool
}

// Service provides author management use cases.
// It handles business logic for author operations and delegates persistence to the repository.
type Service struct {
	Repo repository.AuthorRepository
}

// Get returns the author with the given ID, or ErrAuthorNotFound.
func (s *Service) Get(ctx context.Context, id int64) (_ *entity.Author, err error) {
	ctx, span := tracing.StartOperation(ctx, "author.Get", attribute.Int64("author.id", id))
	defer tracing.EndOperation(span, &err)

	if id <= 0 {
		return nil, rejected(ctx, entity.InvalidIDError())
	}

	defer metrics.TrackDBQuery("author_get")()
	a, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	if a == nil {
		return nil, ErrAuthorNotFound
	}
	return a, nil
}

// List retrieves all authors ordered by ID.
func (s *Service) List(ctx context.Context) (_ []*entity.Author, err error) {
	ctx, span := tracing.StartOperation(ctx, "author.List")
	defer tracing.EndOperation(span, &err)

	defer metrics.TrackDBQuery("author_list")()
	authors, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	metrics.UpdateEntitiesTotal(metrics.EntityAuthor, len(authors))
	return authors, nil
}

// Create validates the input, checks that no other author holds the name and
// persists a new author. Validation failures are returned as *entity.ValidationError.
func (s *Service) Create(ctx context.Context, in CreateInput) (_ *entity.Author, err error) {
	ctx, span := tracing.StartOperation(ctx, "author.Create")
	defer tracing.EndOperation(span, &err)

	a, err := entity.NewAuthor(in.Name, in.PhoneNumber)
	if err != nil {
		return nil, rejected(ctx, err)
	}
	if err := s.ensureNameAvailable(ctx, a.Name, 0); err != nil {
		return nil, err
	}

	done := metrics.TrackDBQuery("author_create")
	err = s.Repo.Create(ctx, a)
	done()
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, rejected(ctx, entity.NameNotUniqueError())
	}
	if err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}

	metrics.RecordWrite(metrics.EntityAuthor, metrics.OpCreate)
	logging.FromContext(ctx).Info("author created",
		slog.Int64("author_id", a.ID),
		slog.String("name", a.Name))
	return a, nil
}

// Update applies the provided fields to an existing author. Each field goes
// through its setter, so a rejected value leaves the stored author untouched.
// Returns ErrAuthorNotFound if the author does not exist.
func (s *Service) Update(ctx context.Context, in UpdateInput) (_ *entity.Author, err error) {
	ctx, span := tracing.StartOperation(ctx, "author.Update", attribute.Int64("author.id", in.ID))
	defer tracing.EndOperation(span, &err)

	if in.ID <= 0 {
		return nil, rejected(ctx, entity.InvalidIDError())
	}

	done := metrics.TrackDBQuery("author_get")
	a, err := s.Repo.Get(ctx, in.ID)
	done()
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	if a == nil {
		return nil, ErrAuthorNotFound
	}

	if in.Name != nil {
		if err := a.SetName(*in.Name); err != nil {
			return nil, rejected(ctx, err)
		}
		if err := s.ensureNameAvailable(ctx, a.Name, a.ID); err != nil {
			return nil, err
		}
	}
	switch {
	case in.ClearPhone:
		_ = a.SetPhoneNumber(nil)
	case in.PhoneNumber != nil:
		if err := a.SetPhoneNumber(in.PhoneNumber); err != nil {
			return nil, rejected(ctx, err)
		}
	}

	done = metrics.TrackDBQuery("author_update")
	err = s.Repo.Update(ctx, a)
	done()
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return nil, rejected(ctx, entity.NameNotUniqueError())
	case errors.Is(err, repository.ErrNotFound):
		return nil, ErrAuthorNotFound
	case err != nil:
		return nil, fmt.Errorf("update author: %w", err)
	}

	metrics.RecordWrite(metrics.EntityAuthor, metrics.OpUpdate)
	logging.FromContext(ctx).Info("author updated", slog.Int64("author_id", a.ID))
	return a, nil
}

// ensureNameAvailable rejects name when an author other than selfID holds it.
// The unique index on authors.name backs this check under concurrent writes.
func (s *Service) ensureNameAvailable(ctx context.Context, name string, selfID int64) error {
	defer metrics.TrackDBQuery("author_get_by_name")()
	existing, err := s.Repo.GetByName(ctx, name)
	if err != nil {
		return fmt.Errorf("lookup author name: %w", err)
	}
	if existing != nil && existing.ID != selfID {
		return rejected(ctx, entity.NameNotUniqueError())
	}
	return nil
}

// rejected records a validation failure and returns err unchanged.
func rejected(ctx context.Context, err error) error {
	if ve, ok := entity.AsValidationError(err); ok {
		metrics.RecordValidationFailure(metrics.EntityAuthor, ve.Field, string(ve.Code))
		logging.FromContext(ctx).Debug("author rejected",
			slog.String("field", ve.Field),
			slog.String("code", string(ve.Code)),
			slog.String("reason", ve.Message))
	}
	return err
}
