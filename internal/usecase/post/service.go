package post

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

// CreateInput represents the input parameters for creating a new post.
// Content and Summary are optional.
type CreateInput struct {
	Title    string
	Content  *string
	Summary  *string
	Category string
}

// UpdateInput represents the input parameters for updating an existing post.
// nil fields are left unchanged. ClearContent and ClearSummary remove the
// field and take precedence over Content and Summary.
type UpdateInput struct {
	ID           int64
	Title        *string
	Content      *string
	Summary      *string
	Category     *string
	ClearContent bool
	ClearSummary bool
}

// Service provides post management use cases.
type Service struct {
	Repo repository.PostRepository
}

// Get returns the post with the given ID, or ErrPostNotFound.
func (s *Service) Get(ctx context.Context, id int64) (_ *entity.Post, err error) {
	ctx, span := tracing.StartOperation(ctx, "post.Get", attribute.Int64("post.id", id))
	defer tracing.EndOperation(span, &err)

	if id <= 0 {
		return nil, rejected(ctx, entity.InvalidIDError())
	}

	defer metrics.TrackDBQuery("post_get")()
	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if p == nil {
		return nil, ErrPostNotFound
	}
	return p, nil
}

// List retrieves all posts ordered by ID.
func (s *Service) List(ctx context.Context) (_ []*entity.Post, err error) {
	ctx, span := tracing.StartOperation(ctx, "post.List")
	defer tracing.EndOperation(span, &err)

	defer metrics.TrackDBQuery("post_list")()
	posts, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	metrics.UpdateEntitiesTotal(metrics.EntityPost, len(posts))
	return posts, nil
}

// ListByCategory retrieves the posts of one category.
// The category must be one the post validators accept.
func (s *Service) ListByCategory(ctx context.Context, category string) (_ []*entity.Post, err error) {
	ctx, span := tracing.StartOperation(ctx, "post.ListByCategory", attribute.String("post.category", category))
	defer tracing.EndOperation(span, &err)

	if err := entity.ValidatePostCategory(category); err != nil {
		return nil, rejected(ctx, err)
	}

	defer metrics.TrackDBQuery("post_list_by_category")()
	posts, err := s.Repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list posts by category: %w", err)
	}
	return posts, nil
}

// Create validates every field and persists a new post.
// Validation failures are returned as *entity.ValidationError.
func (s *Service) Create(ctx context.Context, in CreateInput) (_ *entity.Post, err error) {
	ctx, span := tracing.StartOperation(ctx, "post.Create", attribute.String("post.category", in.Category))
	defer tracing.EndOperation(span, &err)

	p, err := entity.NewPost(in.Title, in.Content, in.Summary, in.Category)
	if err != nil {
		return nil, rejected(ctx, err)
	}

	done := metrics.TrackDBQuery("post_create")
	err = s.Repo.Create(ctx, p)
	done()
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	metrics.RecordWrite(metrics.EntityPost, metrics.OpCreate)
	logging.FromContext(ctx).Info("post created",
		slog.Int64("post_id", p.ID),
		slog.String("category", p.Category))
	return p, nil
}

// Update applies the provided fields to an existing post through its setters.
// Returns ErrPostNotFound if the post does not exist.
func (s *Service) Update(ctx context.Context, in UpdateInput) (_ *entity.Post, err error) {
	ctx, span := tracing.StartOperation(ctx, "post.Update", attribute.Int64("post.id", in.ID))
	defer tracing.EndOperation(span, &err)

	if in.ID <= 0 {
		return nil, rejected(ctx, entity.InvalidIDError())
	}

	done := metrics.TrackDBQuery("post_get")
	p, err := s.Repo.Get(ctx, in.ID)
	done()
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if p == nil {
		return nil, ErrPostNotFound
	}

	if err := apply(p, in); err != nil {
		return nil, rejected(ctx, err)
	}

	done = metrics.TrackDBQuery("post_update")
	err = s.Repo.Update(ctx, p)
	done()
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	metrics.RecordWrite(metrics.EntityPost, metrics.OpUpdate)
	logging.FromContext(ctx).Info("post updated", slog.Int64("post_id", p.ID))
	return p, nil
}

// apply runs the setter of every provided field, stopping at the first rejection.
func apply(p *entity.Post, in UpdateInput) error {
	if in.Title != nil {
		if err := p.SetTitle(*in.Title); err != nil {
			return err
		}
	}
	switch {
	case in.ClearContent:
		if err := p.SetContent(nil); err != nil {
			return err
		}
	case in.Content != nil:
		if err := p.SetContent(in.Content); err != nil {
			return err
		}
	}
	switch {
	case in.ClearSummary:
		if err := p.SetSummary(nil); err != nil {
			return err
		}
	case in.Summary != nil:
		if err := p.SetSummary(in.Summary); err != nil {
			return err
		}
	}
	if in.Category != nil {
		if err := p.SetCategory(*in.Category); err != nil {
			return err
		}
	}
	return nil
}

// rejected records a validation failure and returns err unchanged.
func rejected(ctx context.Context, err error) error {
	if ve, ok := entity.AsValidationError(err); ok {
		metrics.RecordValidationFailure(metrics.EntityPost, ve.Field, string(ve.Code))
		logging.FromContext(ctx).Debug("post rejected",
			slog.String("field", ve.Field),
			slog.String("code", string(ve.Code)),
			slog.String("reason", ve.Message))
	}
	return err
}
